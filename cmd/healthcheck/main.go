// Command healthcheck probes a running go-shop-keeper server. It exits with
// status 0 when the server is healthy and 1 otherwise, which makes it usable
// as a container HEALTHCHECK.
package main

import (
	"os"

	"github.com/MKhiriev/go-shop-keeper/internal/adapter"
	"github.com/MKhiriev/go-shop-keeper/internal/client"
	"github.com/MKhiriev/go-shop-keeper/internal/config"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
)

func main() {
	log := logger.NewLogger("healthcheck")

	cfg, err := config.GetProbeConfig(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		os.Exit(1)
	}

	server, err := adapter.NewHTTPServerAdapter(cfg.ServerURL(), cfg.Timeout, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server adapter")
		os.Exit(1)
	}

	if err = client.NewProbe(server, *cfg, log).Run(); err != nil {
		log.Error().Err(err).Str("server", cfg.ServerURL()).Msg("server is unhealthy")
		os.Exit(1)
	}
}
