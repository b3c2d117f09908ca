package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/utils"
	"github.com/MKhiriev/go-shop-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// envelope is the response wrapper of every API endpoint except GET /health.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Count   *int   `json:"count"`
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. address may omit the scheme, in which case http is
// assumed. A zero timeout disables the per-request deadline.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Health implements [ServerAdapter]. The health body is not wrapped in the
// usual envelope.
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}
	if !health.Success {
		return health, fmt.Errorf("%w: %s", ErrServiceUnavailable, health.Message)
	}

	return health, nil
}

func (h *httpServerAdapter) Ready(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/health/ready")
	if err != nil {
		return fmt.Errorf("readiness request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/users/register")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("register request: %w", err)
	}

	return decodeData[models.UserResponse](resp)
}

// Login implements [ServerAdapter]. The returned token is stored for the
// following authenticated calls.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/users/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}

	login, err := decodeData[models.LoginResponse](resp)
	if err != nil {
		return models.LoginResponse{}, err
	}
	if login.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("%w: login response has no token", ErrUnexpectedResponse)
	}

	h.SetToken(login.Token)
	h.logger.Debug().Str("func", "*httpServerAdapter.Login").Str("user_id", login.User.ID).Msg("logged in")

	return login, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.UserResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/users/profile")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("profile request: %w", err)
	}

	return decodeData[models.UserResponse](resp)
}

func (h *httpServerAdapter) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(productFilterQuery(filter)).
		Get("/api/products")
	if err != nil {
		return nil, fmt.Errorf("list products request: %w", err)
	}

	return decodeData[[]models.Product](resp)
}

func (h *httpServerAdapter) CreateProduct(ctx context.Context, req models.CreateProductRequest) (models.Product, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/products")
	if err != nil {
		return models.Product{}, fmt.Errorf("create product request: %w", err)
	}

	return decodeData[models.Product](resp)
}

func (h *httpServerAdapter) GetProduct(ctx context.Context, id string) (models.Product, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Get("/api/products/{id}")
	if err != nil {
		return models.Product{}, fmt.Errorf("get product request: %w", err)
	}

	return decodeData[models.Product](resp)
}

// UpdateProduct implements [ServerAdapter]. req.ClearDescription is sent as
// an explicit "description": null.
func (h *httpServerAdapter) UpdateProduct(ctx context.Context, id string, req models.UpdateProductRequest) (models.Product, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(updateProductBody(req)).
		Put("/api/products/{id}")
	if err != nil {
		return models.Product{}, fmt.Errorf("update product request: %w", err)
	}

	return decodeData[models.Product](resp)
}

func (h *httpServerAdapter) DeleteProduct(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/products/{id}")
	if err != nil {
		return fmt.Errorf("delete product request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func decodeData[T any](resp *resty.Response) (T, error) {
	var env envelope[T]
	if err := mapHTTPError(resp); err != nil {
		return env.Data, err
	}

	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return env.Data, fmt.Errorf("%w: decode response: %w", ErrUnexpectedResponse, err)
	}
	if !env.Success {
		return env.Data, fmt.Errorf("%w: %s", ErrUnexpectedResponse, env.Message)
	}

	return env.Data, nil
}

func productFilterQuery(filter models.ProductFilter) url.Values {
	query := url.Values{}
	if filter.UserID != "" {
		query.Set("userId", filter.UserID)
	}
	if filter.MinPrice != nil {
		query.Set("minPrice", strconv.FormatFloat(*filter.MinPrice, 'f', -1, 64))
	}
	if filter.MaxPrice != nil {
		query.Set("maxPrice", strconv.FormatFloat(*filter.MaxPrice, 'f', -1, 64))
	}
	return query
}

func updateProductBody(req models.UpdateProductRequest) map[string]any {
	body := make(map[string]any, 4)
	if req.Name != nil {
		body["name"] = *req.Name
	}
	if req.Description != nil {
		body["description"] = *req.Description
	} else if req.ClearDescription {
		body["description"] = nil
	}
	if req.Price != nil {
		body["price"] = *req.Price
	}
	if req.Stock != nil {
		body["stock"] = *req.Stock
	}
	return body
}
