// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database URL
//	-c/-config json file path with configs
//	-jwt-secret token signing secret
//	-jwt-expires-in token lifetime (e.g., "7d", "12h")
//	-cors-origin comma separated list of allowed origins
//	-env runtime environment (development, production, test)
//	-log-level minimal log level
//
// Unset flags leave the corresponding fields zero so that they never mask
// values from other sources during merging.
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseURL string
	var jsonConfigPath string
	var jwtSecret string
	var jwtExpiresIn Duration
	var corsOrigin string
	var environment string
	var logLevel string

	fs := flag.NewFlagSet("go-shop-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseURL, "d", "", "Database URL")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&jwtSecret, "jwt-secret", "", "JWT signing secret")
	fs.Var(&jwtExpiresIn, "jwt-expires-in", "Token lifetime (e.g., 7d, 12h)")
	fs.StringVar(&corsOrigin, "cors-origin", "", "Allowed CORS origins, comma separated")
	fs.StringVar(&environment, "env", "", "Runtime environment")
	fs.StringVar(&logLevel, "log-level", "", "Minimal log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{
		App: App{
			Environment: environment,
			LogLevel:    logLevel,
		},
		Auth: Auth{
			JWTSecret:    jwtSecret,
			JWTExpiresIn: jwtExpiresIn,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseURL,
			},
		},
		Server: Server{
			Host: serverAddress.Host,
			Port: serverAddress.Port,
		},
		JSONFilePath: jsonConfigPath,
	}

	if corsOrigin != "" {
		cfg.Server.CORSOrigins = splitList(corsOrigin)
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
