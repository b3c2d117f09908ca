package handler

import (
	"github.com/MKhiriev/go-shop-keeper/internal/config"
	"github.com/MKhiriev/go-shop-keeper/internal/handler/http"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/metrics"
	"github.com/MKhiriev/go-shop-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-shop-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. limiters and metrics may be nil,
// which disables rate limiting and metrics respectively.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, limiters *ratelimit.Set, metrics *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServicesProvided
	}

	var httpLimiters http.Limiters
	if limiters != nil {
		httpLimiters = http.Limiters{
			API:      limiters.API,
			Auth:     limiters.Auth,
			Products: limiters.Products,
		}
	}

	return &Handlers{
		HTTP: http.NewHandler(services, http.NewSettings(cfg), httpLimiters, metrics, logger),
	}, nil
}
