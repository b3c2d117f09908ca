package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-keeper/internal/adapter"
	"github.com/MKhiriev/go-shop-keeper/internal/config"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
)

// Probe checks that a server is alive and, optionally, that its database is
// reachable.
type Probe struct {
	server  adapter.ServerAdapter
	timeout time.Duration
	ready   bool

	logger *logger.Logger
}

var _ Client = (*Probe)(nil)

func NewProbe(server adapter.ServerAdapter, cfg config.Probe, logger *logger.Logger) *Probe {
	return &Probe{
		server:  server,
		timeout: cfg.Timeout,
		ready:   cfg.Ready,
		logger:  logger,
	}
}

// Run returns nil when the server reports itself healthy.
func (p *Probe) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	health, err := p.server.Health(ctx)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	if p.ready {
		if err = p.server.Ready(ctx); err != nil {
			return fmt.Errorf("readiness check failed: %w", err)
		}
	}

	p.logger.Debug().
		Str("func", "*Probe.Run").
		Float64("uptime", health.Uptime).
		Bool("ready_checked", p.ready).
		Msg("server is healthy")

	return nil
}
