package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"dario.cat/mergo"
)

// Probe configures cmd/healthcheck, the container health probe.
type Probe struct {
	// Address is the base URL of the server to probe. When empty the probe
	// targets localhost on Port.
	// Env: HEALTHCHECK_ADDRESS
	Address string `env:"HEALTHCHECK_ADDRESS"`

	// Port is the server port, shared with the server configuration.
	// Env: PORT
	Port int `env:"PORT" envDefault:"3000"`

	// Timeout bounds the whole probe.
	// Env: HEALTHCHECK_TIMEOUT
	Timeout time.Duration `env:"HEALTHCHECK_TIMEOUT" envDefault:"3s"`

	// Ready additionally requires GET /health/ready to succeed.
	// Env: HEALTHCHECK_READY
	Ready bool `env:"HEALTHCHECK_READY"`
}

// ServerURL returns Address, or http://localhost:<Port> when it is empty.
func (p Probe) ServerURL() string {
	if p.Address != "" {
		return p.Address
	}
	return "http://localhost:" + strconv.Itoa(p.Port)
}

// GetProbeConfig reads the probe configuration from the environment and
// then from args. Flags win over environment variables.
//
// Flags:
//
//	-a server base URL or host:port
//	-t probe timeout
//	-ready also check database readiness
func GetProbeConfig(args []string) (*Probe, error) {
	cfg := new(Probe)
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	var fromFlags Probe
	fs := flag.NewFlagSet("healthcheck", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&fromFlags.Address, "a", "", "Server base URL")
	fs.DurationVar(&fromFlags.Timeout, "t", 0, "Probe timeout")
	fs.BoolVar(&fromFlags.Ready, "ready", false, "Also check database readiness")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing healthcheck flags: %w", err)
	}

	if err := mergo.Merge(cfg, fromFlags, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("%w: healthcheck timeout must be positive", ErrInvalidProbeConfigs)
	}

	return cfg, nil
}
