package wizard

import (
	"github.com/abhisek/skinfinder/internal/catalog"
	"github.com/abhisek/skinfinder/internal/recommend"
)

// Action is a discrete input to Reduce.
type Action interface {
	isAction()
}

// ToggleConcern flips one concern.
type ToggleConcern struct{ ID string }

// SetSkinType chooses the skin type.
type SetSkinType struct{ Type catalog.SkinType }

// SetHistoryAnswer answers one history question.
type SetHistoryAnswer struct {
	ID  string
	Yes bool
}

// Advance moves to the next step.
type Advance struct{}

// Retreat moves to the previous step.
type Retreat struct{}

// Restart discards the session and starts over under SessionID.
type Restart struct{ SessionID string }

// RecommendationsRequested marks a prediction call as in flight.
type RecommendationsRequested struct{}

// RecommendationsLoaded delivers a successful prediction.
type RecommendationsLoaded struct {
	SessionID string
	Result    *recommend.Recommendation
}

// RecommendationsFailed delivers a failed prediction.
type RecommendationsFailed struct {
	SessionID string
	Err       error
}

// ProductsRequested marks a product lookup as in flight.
type ProductsRequested struct{}

// ProductsLoaded delivers a successful product lookup.
type ProductsLoaded struct {
	SessionID string
	Result    *recommend.ProductList
}

// ProductsFailed delivers a failed product lookup.
type ProductsFailed struct {
	SessionID string
	Err       error
}

func (ToggleConcern) isAction()            {}
func (SetSkinType) isAction()              {}
func (SetHistoryAnswer) isAction()         {}
func (Advance) isAction()                  {}
func (Retreat) isAction()                  {}
func (Restart) isAction()                  {}
func (RecommendationsRequested) isAction() {}
func (RecommendationsLoaded) isAction()    {}
func (RecommendationsFailed) isAction()    {}
func (ProductsRequested) isAction()        {}
func (ProductsLoaded) isAction()           {}
func (ProductsFailed) isAction()           {}
