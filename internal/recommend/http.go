package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/abhisek/skinfinder/internal/catalog"
)

const (
	predictPath  = "/predict"
	productsPath = "/filter-products"

	// maxBodyBytes caps how much of a response is read.
	maxBodyBytes = 1 << 20

	// maxErrorBody caps how much of a failed response is kept on ServiceError.
	maxErrorBody = 512
)

// HTTPService is the Service backed by the remote prediction endpoint.
type HTTPService struct {
	baseURL     string
	client      *http.Client
	timeout     time.Duration
	flavor      catalog.Flavor
	productType string
}

var _ Service = (*HTTPService)(nil)

// Option configures an HTTPService.
type Option func(*HTTPService)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *HTTPService) { s.client = c }
}

// WithTimeout overrides the per-request timeout from Config.
func WithTimeout(d time.Duration) Option {
	return func(s *HTTPService) { s.timeout = d }
}

// NewHTTPService creates an HTTPService from cfg.
func NewHTTPService(cfg Config, opts ...Option) *HTTPService {
	s := &HTTPService{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		client:      &http.Client{},
		timeout:     cfg.Timeout,
		flavor:      cfg.Flavor,
		productType: cfg.ProductType,
	}
	if s.productType == "" {
		s.productType = catalog.ProductType
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Recommend posts the filtered concerns to /predict.
func (s *HTTPService) Recommend(ctx context.Context, concerns []string) (*Recommendation, error) {
	ctx, id := ensureRequestID(ctx)
	payload := buildPredictRequest(s.flavor, s.productType, concerns)

	body, err := s.post(ctx, "predict", predictPath, payload, predictSchema)
	if err != nil {
		return nil, err
	}

	rec := parsePrediction(body)
	rec.RequestID = id
	return rec, nil
}

// Products posts the ingredient names to /filter-products.
func (s *HTTPService) Products(ctx context.Context, ingredients []string) (*ProductList, error) {
	ctx, id := ensureRequestID(ctx)
	if ingredients == nil {
		ingredients = []string{}
	}

	body, err := s.post(ctx, "filter-products", productsPath, productsRequest{Ingredients: ingredients}, productsSchema)
	if err != nil {
		return nil, err
	}

	list := parseProducts(body)
	list.RequestID = id
	return list, nil
}

// post sends payload as JSON and returns the validated response body.
func (s *HTTPService) post(ctx context.Context, op, path string, payload any, schema *responseSchema) ([]byte, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: encode request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id := RequestIDFrom(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &NetworkError{Op: op, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ServiceError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(body), maxErrorBody),
		}
	}

	if err := schema.validate(body); err != nil {
		return nil, &ServiceError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(body), maxErrorBody),
			Err:        err,
		}
	}

	return body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
