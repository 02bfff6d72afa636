package recommend

import (
	"context"
	"errors"
	"sync"

	"github.com/abhisek/skinfinder/internal/catalog"
)

// ErrNoCannedResponse is returned by MockService when its queue is empty
// and no default is set.
var ErrNoCannedResponse = errors.New("no canned response")

// MockRecommendation is a canned Recommend outcome.
type MockRecommendation struct {
	Result *Recommendation
	Err    error
}

// MockProducts is a canned Products outcome.
type MockProducts struct {
	Result *ProductList
	Err    error
}

// MockService is a deterministic Service for tests and offline runs.
// It returns canned outcomes in FIFO order and records all calls. Once a
// queue is drained it falls back to the matching Default field. A canned
// outcome with neither Result nor Err answers with an empty result.
type MockService struct {
	mu              sync.Mutex
	recommendations []MockRecommendation
	products        []MockProducts

	// Flavor, when set, filters Recommend's concern ids against the
	// flavor's vocabulary before they are recorded.
	Flavor catalog.Flavor

	DefaultRecommendation *Recommendation
	DefaultProducts       *ProductList

	RecommendCalls [][]string
	ProductCalls   [][]string
}

var _ Service = (*MockService)(nil)

// NewMockService creates a MockService with the given canned recommendations.
func NewMockService(recs ...MockRecommendation) *MockService {
	return &MockService{recommendations: recs}
}

// AddRecommendation appends a canned Recommend outcome.
func (m *MockService) AddRecommendation(r MockRecommendation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recommendations = append(m.recommendations, r)
}

// AddProducts appends a canned Products outcome.
func (m *MockService) AddProducts(p MockProducts) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = append(m.products, p)
}

func (m *MockService) Recommend(ctx context.Context, concerns []string) (*Recommendation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Flavor != "" {
		concerns = FilterConcerns(m.Flavor, concerns)
	}
	m.RecommendCalls = append(m.RecommendCalls, append([]string(nil), concerns...))

	var next MockRecommendation
	switch {
	case len(m.recommendations) > 0:
		next = m.recommendations[0]
		m.recommendations = m.recommendations[1:]
	case m.DefaultRecommendation != nil:
		next.Result = m.DefaultRecommendation
	default:
		return nil, &NetworkError{Op: "predict", Err: ErrNoCannedResponse}
	}

	if next.Err != nil {
		return nil, next.Err
	}
	if next.Result == nil {
		return &Recommendation{RequestID: RequestIDFrom(ctx)}, nil
	}
	out := *next.Result
	out.Ingredients = append([]Ingredient(nil), next.Result.Ingredients...)
	out.RequestID = RequestIDFrom(ctx)
	return &out, nil
}

func (m *MockService) Products(ctx context.Context, ingredients []string) (*ProductList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ProductCalls = append(m.ProductCalls, append([]string(nil), ingredients...))

	var next MockProducts
	switch {
	case len(m.products) > 0:
		next = m.products[0]
		m.products = m.products[1:]
	case m.DefaultProducts != nil:
		next.Result = m.DefaultProducts
	default:
		return nil, &NetworkError{Op: "filter-products", Err: ErrNoCannedResponse}
	}

	if next.Err != nil {
		return nil, next.Err
	}
	if next.Result == nil {
		return &ProductList{RequestID: RequestIDFrom(ctx)}, nil
	}
	out := *next.Result
	out.Products = append([]Product(nil), next.Result.Products...)
	out.RequestID = RequestIDFrom(ctx)
	return &out, nil
}

// CallCount returns the number of Recommend calls made.
func (m *MockService) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.RecommendCalls)
}

// NewDemoService returns a MockService that answers every call with a
// fixed sample, shaped like the flavor's real responses.
func NewDemoService(flavor catalog.Flavor) *MockService {
	m := &MockService{Flavor: flavor}
	if flavor == catalog.FlavorCatalog {
		m.DefaultRecommendation = &Recommendation{Ingredients: []Ingredient{
			{Name: "hyaluronic", Recommended: true},
			{Name: "niacinamide", Recommended: true},
			{Name: "ceramides", Recommended: true},
			{Name: "aha_bha", Recommended: false},
			{Name: "fragrance", Recommended: false},
			{Name: "alcohol", Recommended: false},
		}}
	} else {
		m.DefaultRecommendation = &Recommendation{Ingredients: []Ingredient{
			{Name: "hyaluronic_acid", Recommended: true},
			{Name: "niacinamide", Recommended: true},
			{Name: "glycerin", Recommended: true},
			{Name: "squalane", Recommended: true},
		}}
	}
	m.DefaultProducts = &ProductList{Products: []Product{
		{Name: "Hydra Boost Serum", Brand: "Dewlab", Flags: []Flag{
			{Ingredient: "hyaluronic", Present: true},
			{Ingredient: "niacinamide", Present: false},
			{Ingredient: "ceramides", Present: true},
			{Ingredient: "fragrance", Present: false},
		}},
		{Name: "Barrier Repair Drops", Brand: "Calm Theory", Flags: []Flag{
			{Ingredient: "hyaluronic", Present: true},
			{Ingredient: "niacinamide", Present: true},
			{Ingredient: "ceramides", Present: true},
		}},
		{Name: "Glow Tonic", Brand: "Sunday Fields", Flags: []Flag{
			{Ingredient: "aha_bha", Present: true},
			{Ingredient: "niacinamide", Present: true},
		}},
	}}
	return m
}
