package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop-keeper/internal/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	if h.settings.TrustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withRecover,
		h.withMetrics,
		h.withSecurityHeaders,
		h.withCORS,
		h.withGZip,
		h.withMaxBodySize,
	)

	router.Get("/health", h.health)
	router.Get("/health/ready", h.ready)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		r.Use(h.rateLimit(ratelimit.NameAPI, h.limiters.API, clientIPKey))

		r.Route("/users", func(r chi.Router) {
			// routes without authorization
			r.Group(func(r chi.Router) {
				r.Use(h.rateLimit(ratelimit.NameAuth, h.limiters.Auth, clientIPKey))
				r.With(h.validateBody(registerRules)).Post("/register", h.register)
				r.With(h.validateBody(loginRules)).Post("/login", h.login)
			})

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/profile", h.profile)
				r.Get("/", h.listUsers)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Use(h.auth, h.rateLimit(ratelimit.NameProducts, h.limiters.Products, userKey))

			r.With(h.validateBody(createProductRules)).Post("/", h.createProduct)
			r.With(h.validateProductQuery).Get("/", h.listProducts)
			r.Get("/{id}", h.getProduct)
			r.With(h.validateBody(updateProductRules)).Put("/{id}", h.updateProduct)
			r.Delete("/{id}", h.deleteProduct)
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(h.notFound))

	return router
}
