package recommend

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/skinfinder/internal/catalog"
)

func TestMockService_FIFOThenDefault(t *testing.T) {
	boom := errors.New("boom")
	m := NewMockService(
		MockRecommendation{Result: &Recommendation{Ingredients: []Ingredient{{Name: "retinol", Recommended: true}}}},
		MockRecommendation{Err: boom},
	)

	rec, err := m.Recommend(context.Background(), []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, "retinol", rec.Ingredients[0].Name)

	_, err = m.Recommend(context.Background(), []string{"b"})
	assert.ErrorIs(t, err, boom)

	_, err = m.Recommend(context.Background(), nil)
	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.ErrorIs(t, err, ErrNoCannedResponse)

	assert.Equal(t, 3, m.CallCount())
	assert.Equal(t, []string{"a"}, m.RecommendCalls[0])
}

func TestMockService_ResultsAreCopies(t *testing.T) {
	m := NewDemoService(catalog.FlavorCatalog)

	first, err := m.Recommend(context.Background(), []string{"acne"})
	require.NoError(t, err)
	first.Ingredients[0].Name = "mutated"

	second, err := m.Recommend(context.Background(), []string{"acne"})
	require.NoError(t, err)
	assert.Equal(t, "hyaluronic", second.Ingredients[0].Name)
}

func TestDemoService_Products(t *testing.T) {
	m := NewDemoService(catalog.FlavorClassic)
	list, err := m.Products(context.Background(), []string{"hyaluronic"})
	require.NoError(t, err)
	assert.NotEmpty(t, list.Products)
	assert.Equal(t, [][]string{{"hyaluronic"}}, m.ProductCalls)
}

func TestMockService_EmptyCannedOutcome(t *testing.T) {
	m := NewMockService(MockRecommendation{})
	m.AddProducts(MockProducts{})

	rec, err := m.Recommend(context.Background(), []string{"acne"})
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Empty(t, rec.Ingredients)

	list, err := m.Products(context.Background(), []string{"hyaluronic"})
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Empty(t, list.Products)
}

func TestMockService_DropsUnknownConcerns(t *testing.T) {
	m := NewDemoService(catalog.FlavorCatalog)

	_, err := m.Recommend(context.Background(), []string{"glow", "acne", "acne", "redness"})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"acne", "redness"}}, m.RecommendCalls)
}

func TestWithLogging_RecordsOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	inner := NewMockService(
		MockRecommendation{Result: &Recommendation{Ingredients: []Ingredient{{Name: "retinol", Recommended: true}}}},
		MockRecommendation{Err: &ServiceError{Op: "predict", StatusCode: 502}},
	)
	svc := WithLogging(inner, logger)

	ctx := WithRequestID(context.Background(), "req-42")
	rec, err := svc.Recommend(ctx, []string{"hydrating"})
	require.NoError(t, err)
	assert.Equal(t, "req-42", rec.RequestID)
	assert.Contains(t, buf.String(), "msg=recommend")
	assert.Contains(t, buf.String(), "request_id=req-42")
	assert.Contains(t, buf.String(), "recommended=1")

	buf.Reset()
	_, err = svc.Recommend(context.Background(), []string{"hydrating"})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "HTTP 502")
}

func TestNew(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	svc, err := New(cfg, nil)
	require.NoError(t, err)
	_, ok := svc.(*LoggingService)
	assert.True(t, ok)

	cfg.Provider = "carrier-pigeon"
	_, err = New(cfg, nil)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"mock needs no url", func(c *Config) { c.Provider = "mock"; c.BaseURL = "" }, false},
		{"ftp url", func(c *Config) { c.BaseURL = "ftp://example.com" }, true},
		{"no host", func(c *Config) { c.BaseURL = "http://" }, true},
		{"bad flavor", func(c *Config) { c.Flavor = "fancy" }, true},
		{"negative timeout", func(c *Config) { c.Timeout = -1 }, true},
		{"empty product type", func(c *Config) { c.ProductType = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
