// Package wizard holds the questionnaire's state and the pure transition
// function that drives it. Nothing here performs I/O: screens dispatch
// actions, run service calls themselves, and feed the outcome back in.
package wizard

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/skinfinder/internal/catalog"
	"github.com/abhisek/skinfinder/internal/recommend"
)

// State is the complete session state of one questionnaire run.
type State struct {
	// Flavor fixes the flow and the concern vocabulary.
	Flavor catalog.Flavor

	// SessionID identifies this run. Responses tagged with another id
	// are dropped.
	SessionID string

	// Step is the 1-based position in the flow.
	Step int

	// Selection is the user's input so far.
	Selection Selection

	// Recommendation is the last successful prediction (nil until then).
	Recommendation *recommend.Recommendation

	// Products is the last successful product lookup (nil until then).
	Products *recommend.ProductList

	// Err is the inline error message from the last failed call.
	Err string

	// RecommendPending is true while a prediction call is in flight.
	RecommendPending bool

	// ProductsPending is true while a product lookup is in flight.
	ProductsPending bool

	// Steps the pending requests were issued from.
	recommendFrom int
	productsFrom  int
}

// NewSessionID mints a fresh session id.
func NewSessionID() string {
	return uuid.NewString()
}

// New creates the initial state for a flavor.
func New(flavor catalog.Flavor, sessionID string) State {
	if sessionID == "" {
		sessionID = NewSessionID()
	}
	return State{
		Flavor:    flavor,
		SessionID: sessionID,
		Step:      1,
		Selection: NewSelection(flavor),
	}
}

// Flow returns the step sequence for the state's flavor.
func (s State) Flow() Flow {
	return FlowFor(s.Flavor)
}

// Kind returns the kind of the current step.
func (s State) Kind() StepKind {
	return s.Flow().At(s.Step)
}

// IsTerminal reports whether the current step is the last one.
func (s State) IsTerminal() bool {
	return s.Step >= s.Flow().Len()
}

// Pending reports whether any request is in flight.
func (s State) Pending() bool {
	return s.RecommendPending || s.ProductsPending
}

// CheckAdvance returns nil when Advance would succeed.
func (s State) CheckAdvance() error {
	if s.IsTerminal() {
		return ErrTerminalStep
	}
	switch s.Kind() {
	case StepSkinType:
		if s.Selection.SkinType() == catalog.SkinTypeUnset {
			return fmt.Errorf("%w: choose a skin type", ErrStepIncomplete)
		}
	case StepConcerns:
		if !s.Selection.HasConcerns() {
			return fmt.Errorf("%w: select at least one concern", ErrStepIncomplete)
		}
	case StepIngredients:
		if s.Recommendation == nil {
			return fmt.Errorf("%w: get ingredient recommendations first", ErrStepIncomplete)
		}
	}
	return nil
}

// CanAdvance reports whether Advance would succeed.
func (s State) CanAdvance() bool {
	return s.CheckAdvance() == nil
}

// CanRetreat reports whether Retreat would succeed.
func (s State) CanRetreat() bool {
	return s.Step > 1
}

// CheckRecommend returns nil when a prediction call may be issued.
func (s State) CheckRecommend() error {
	if s.RecommendPending {
		return ErrRequestInFlight
	}
	if !s.Selection.HasConcerns() {
		return fmt.Errorf("%w: select at least one concern", ErrStepIncomplete)
	}
	return nil
}

// CheckProducts returns nil when a product lookup may be issued.
func (s State) CheckProducts() error {
	if s.ProductsPending {
		return ErrRequestInFlight
	}
	if s.Recommendation == nil {
		return fmt.Errorf("%w: get ingredient recommendations first", ErrStepIncomplete)
	}
	return nil
}

// Reduce applies a to s and returns the resulting state. s itself is never
// modified. On error the returned state equals s.
func Reduce(s State, a Action) (State, error) {
	next := s
	next.Selection = s.Selection.Clone()

	switch a := a.(type) {
	case ToggleConcern:
		if !next.Selection.ToggleConcern(a.ID) {
			return s, fmt.Errorf("%w: %q", ErrUnknownConcern, a.ID)
		}

	case SetSkinType:
		if err := next.Selection.SetSkinType(a.Type); err != nil {
			return s, err
		}

	case SetHistoryAnswer:
		if err := next.Selection.SetHistoryAnswer(a.ID, a.Yes); err != nil {
			return s, fmt.Errorf("%w: %q", err, a.ID)
		}

	case Advance:
		if err := s.CheckAdvance(); err != nil {
			return s, err
		}
		next.Step++

	case Retreat:
		if !s.CanRetreat() {
			return s, ErrInitialStep
		}
		next.Step--

	case Restart:
		return New(s.Flavor, a.SessionID), nil

	case RecommendationsRequested:
		if err := s.CheckRecommend(); err != nil {
			return s, err
		}
		next.RecommendPending = true
		next.recommendFrom = s.Step
		next.Err = ""
		// A product lookup for the previous result is now superseded.
		next.ProductsPending = false
		next.productsFrom = 0

	case RecommendationsLoaded:
		if a.SessionID != s.SessionID {
			return s, ErrStaleResponse
		}
		next.RecommendPending = false
		next.Recommendation = a.Result
		next.Products = nil
		next.ProductsPending = false
		next.productsFrom = 0
		next.Err = ""
		next.advanceFrom(s.recommendFrom)
		next.recommendFrom = 0

	case RecommendationsFailed:
		if a.SessionID != s.SessionID {
			return s, ErrStaleResponse
		}
		next.RecommendPending = false
		next.recommendFrom = 0
		next.Err = recommend.UserMessage(a.Err)

	case ProductsRequested:
		if err := s.CheckProducts(); err != nil {
			return s, err
		}
		next.ProductsPending = true
		next.productsFrom = s.Step
		next.Err = ""

	case ProductsLoaded:
		if a.SessionID != s.SessionID || !s.ProductsPending {
			return s, ErrStaleResponse
		}
		next.ProductsPending = false
		next.Products = a.Result
		next.Err = ""
		next.advanceFrom(s.productsFrom)
		next.productsFrom = 0

	case ProductsFailed:
		if a.SessionID != s.SessionID || !s.ProductsPending {
			return s, ErrStaleResponse
		}
		next.ProductsPending = false
		next.productsFrom = 0
		next.Err = recommend.UserMessage(a.Err)

	default:
		return s, fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}

	return next, nil
}

// advanceFrom moves one step forward after a successful call, provided
// the user is still on the step that issued it and it is not the last.
func (s *State) advanceFrom(step int) {
	if s.Step == step && !s.IsTerminal() {
		s.Step++
	}
}
