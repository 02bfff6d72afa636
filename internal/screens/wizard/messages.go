package wizard

import "github.com/abhisek/skinfinder/internal/recommend"

// recommendationsMsg carries the outcome of a prediction call. SessionID is
// the session that issued it.
type recommendationsMsg struct {
	SessionID string
	Result    *recommend.Recommendation
	Err       error
}

// productsMsg carries the outcome of a product lookup.
type productsMsg struct {
	SessionID string
	Result    *recommend.ProductList
	Err       error
}
