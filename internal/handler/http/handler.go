package http

import (
	"github.com/MKhiriev/go-shop-keeper/internal/config"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/metrics"
	"github.com/MKhiriev/go-shop-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-shop-keeper/internal/service"
	"github.com/MKhiriev/go-shop-keeper/internal/validators"
)

// Settings carries the transport options taken from the server config.
type Settings struct {
	// Production hides internal error details and enables HSTS.
	Production bool

	// CORSOrigins lists the allowed origins; "*" allows any.
	CORSOrigins []string

	// MaxBodyBytes caps request bodies. Zero disables the cap.
	MaxBodyBytes int64

	// TrustProxy rewrites RemoteAddr from the forwarding headers.
	TrustProxy bool
}

// NewSettings extracts the HTTP settings from cfg.
func NewSettings(cfg config.StructuredConfig) Settings {
	return Settings{
		Production:   cfg.App.IsProduction(),
		CORSOrigins:  cfg.Server.CORSOrigins,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		TrustProxy:   cfg.RateLimit.TrustProxy,
	}
}

// Limiters groups the rate limiters applied to the API. A nil limiter
// disables its quota.
type Limiters struct {
	// API is applied per client IP to every /api route.
	API ratelimit.Limiter

	// Auth is applied per client IP to register and login.
	Auth ratelimit.Limiter

	// Products is applied per authenticated user to product routes.
	Products ratelimit.Limiter
}

type Handler struct {
	services  *service.Services
	validator validators.Validator
	limiters  Limiters
	metrics   *metrics.Metrics
	settings  Settings

	logger *logger.Logger
}

func NewHandler(services *service.Services, settings Settings, limiters Limiters, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		limiters:  limiters,
		metrics:   metrics,
		settings:  settings,
		logger:    logger,
	}
}
