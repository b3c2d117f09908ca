package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-keeper/internal/config"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-shop-keeper/internal/service"
	"github.com/MKhiriev/go-shop-keeper/internal/utils"
	"github.com/MKhiriev/go-shop-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service stubs
// ─────────────────────────────────────────────

// stubAuthService implements service.AuthService. Each method field can be
// overridden per test case.
type stubAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Claims, error)
}

func (s *stubAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return s.registerUserFn(ctx, req)
}

func (s *stubAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return s.loginFn(ctx, req)
}

func (s *stubAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return s.createTokenFn(ctx, user)
}

func (s *stubAuthService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	if s.parseTokenFn == nil {
		return models.Claims{}, service.ErrTokenIsInvalid
	}
	return s.parseTokenFn(ctx, tokenString)
}

type stubUserService struct {
	getUserFn   func(ctx context.Context, id string) (models.User, error)
	listUsersFn func(ctx context.Context) ([]models.User, error)
}

func (s *stubUserService) GetUser(ctx context.Context, id string) (models.User, error) {
	return s.getUserFn(ctx, id)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.listUsersFn(ctx)
}

type stubProductService struct {
	createProductFn func(ctx context.Context, userID string, req models.CreateProductRequest) (models.Product, error)
	getProductFn    func(ctx context.Context, id string) (models.Product, error)
	listProductsFn  func(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	updateProductFn func(ctx context.Context, userID, id string, req models.UpdateProductRequest) (models.Product, error)
	deleteProductFn func(ctx context.Context, userID, id string) error
}

func (s *stubProductService) CreateProduct(ctx context.Context, userID string, req models.CreateProductRequest) (models.Product, error) {
	return s.createProductFn(ctx, userID, req)
}

func (s *stubProductService) GetProduct(ctx context.Context, id string) (models.Product, error) {
	return s.getProductFn(ctx, id)
}

func (s *stubProductService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return s.listProductsFn(ctx, filter)
}

func (s *stubProductService) UpdateProduct(ctx context.Context, userID, id string, req models.UpdateProductRequest) (models.Product, error) {
	return s.updateProductFn(ctx, userID, id, req)
}

func (s *stubProductService) DeleteProduct(ctx context.Context, userID, id string) error {
	return s.deleteProductFn(ctx, userID, id)
}

type stubAppInfoService struct {
	uptime  time.Duration
	readyFn func(ctx context.Context) error
}

func (s *stubAppInfoService) StartedAt() time.Time {
	return time.Now().Add(-s.uptime)
}

func (s *stubAppInfoService) Uptime() time.Duration {
	return s.uptime
}

func (s *stubAppInfoService) Ready(ctx context.Context) error {
	if s.readyFn == nil {
		return nil
	}
	return s.readyFn(ctx)
}

// stubLimiter returns a fixed result, or err when set.
type stubLimiter struct {
	result ratelimit.Result
	err    error
	keys   []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (ratelimit.Result, error) {
	s.keys = append(s.keys, key)
	return s.result, s.err
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testUserID    = "0190c6a0-0000-7000-8000-000000000001"
	otherUserID   = "0190c6a0-0000-7000-8000-000000000002"
	testProductID = "0190c6a0-0000-7000-8000-0000000000aa"
	testToken     = "signed.jwt.token"
)

// newTestHandler builds a Handler around services with development settings
// and no limiters or metrics.
func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &stubAppInfoService{}
	}
	if services.AuthService == nil {
		services.AuthService = &stubAuthService{}
	}
	return NewHandler(services, Settings{CORSOrigins: []string{"*"}, MaxBodyBytes: 1 << 20}, Limiters{}, nil, logger.Nop())
}

// injectNopLogger attaches a nop logger to the request context, as
// withTraceID would.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().Logger.WithContext(r.Context()))
}

// withCaller attaches the claims of userID, as the auth middleware would.
func withCaller(r *http.Request, userID string) *http.Request {
	return r.WithContext(utils.WithClaims(r.Context(), models.Claims{UserID: userID, Email: "alice@example.com", Role: models.RoleUser}))
}

func newJSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return injectNopLogger(req)
}

// envelope mirrors models.Response with the data payload left raw.
type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Count   *int                `json:"count"`
	Errors  []models.FieldError `json:"errors"`
	Stack   string              `json:"stack"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, Settings{}, Limiters{}, nil, logger.Nop())

	require.NotNil(t, h)
	assert.NotNil(t, h.validator)
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	limiter := &stubLimiter{}
	settings := Settings{Production: true, CORSOrigins: []string{"https://shop.example"}, MaxBodyBytes: 42}

	h := NewHandler(svc, settings, Limiters{API: limiter}, nil, log)

	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, settings, h.settings)
	assert.Equal(t, limiter, h.limiters.API)
}

func TestNewSettings(t *testing.T) {
	cfg := config.StructuredConfig{
		App:       config.App{Environment: config.EnvProduction},
		Server:    config.Server{CORSOrigins: []string{"https://a.example", "https://b.example"}, MaxBodyBytes: 1024},
		RateLimit: config.RateLimit{TrustProxy: true},
	}

	s := NewSettings(cfg)

	assert.True(t, s.Production)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, s.CORSOrigins)
	assert.Equal(t, int64(1024), s.MaxBodyBytes)
	assert.True(t, s.TrustProxy)
}
