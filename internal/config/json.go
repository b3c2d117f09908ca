// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys.
type StructuredJSONConfig struct {
	App struct {
		Environment string `json:"environment"`
		LogLevel    string `json:"log_level"`
	} `json:"app,omitempty"`

	Auth struct {
		JWTSecret    string   `json:"jwt_secret"`
		JWTExpiresIn Duration `json:"jwt_expires_in"`
		JWTIssuer    string   `json:"jwt_issuer"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN             string   `json:"dsn"`
			MaxOpenConns    int      `json:"max_open_conns"`
			ConnMaxIdleTime Duration `json:"conn_max_idle_time"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Host           string   `json:"host"`
		Port           int      `json:"port"`
		CORSOrigins    []string `json:"cors_origins"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxBodyBytes   int64    `json:"max_body_bytes"`
	} `json:"server,omitempty"`

	RateLimit struct {
		APIRequests  int      `json:"api_requests"`
		AuthRequests int      `json:"auth_requests"`
		Window       Duration `json:"window"`
		RedisURL     string   `json:"redis_url"`
	} `json:"rate_limit,omitempty"`

	Workers struct {
		LimiterCleanupInterval Duration `json:"limiter_cleanup_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Environment: jsonCfg.App.Environment,
			LogLevel:    jsonCfg.App.LogLevel,
		},
		Auth: Auth{
			JWTSecret:    jsonCfg.Auth.JWTSecret,
			JWTExpiresIn: jsonCfg.Auth.JWTExpiresIn,
			JWTIssuer:    jsonCfg.Auth.JWTIssuer,
		},
		Storage: Storage{
			DB: DB{
				DSN:             jsonCfg.Storage.DB.DSN,
				MaxOpenConns:    jsonCfg.Storage.DB.MaxOpenConns,
				ConnMaxIdleTime: time.Duration(jsonCfg.Storage.DB.ConnMaxIdleTime),
			},
		},
		Server: Server{
			Host:           jsonCfg.Server.Host,
			Port:           jsonCfg.Server.Port,
			CORSOrigins:    jsonCfg.Server.CORSOrigins,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxBodyBytes:   jsonCfg.Server.MaxBodyBytes,
		},
		RateLimit: RateLimit{
			APIRequests:  jsonCfg.RateLimit.APIRequests,
			AuthRequests: jsonCfg.RateLimit.AuthRequests,
			Window:       time.Duration(jsonCfg.RateLimit.Window),
			RedisURL:     jsonCfg.RateLimit.RedisURL,
		},
		Workers: Workers{
			LimiterCleanupInterval: time.Duration(jsonCfg.Workers.LimiterCleanupInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that additionally accepts a
// whole number of days with a "d" suffix ("7d"). It can be read from JSON,
// environment variables and flags.
type Duration time.Duration

// ParseDuration parses s as a [time.Duration], also accepting "<n>d".
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	return time.ParseDuration(s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Set implements flag.Value.
func (d *Duration) Set(s string) error {
	return d.UnmarshalText([]byte(s))
}

func (d *Duration) String() string {
	if d == nil || *d == 0 {
		return ""
	}
	return time.Duration(*d).String()
}

// Std returns d as a [time.Duration].
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
