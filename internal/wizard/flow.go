package wizard

import "github.com/abhisek/skinfinder/internal/catalog"

// StepKind identifies what a wizard step asks for or shows.
type StepKind int

const (
	StepSkinType StepKind = iota + 1
	StepConcerns
	StepHistory
	StepIngredients
	StepProducts
	StepResults
)

// Title returns the short label used in the progress header.
func (k StepKind) Title() string {
	switch k {
	case StepSkinType:
		return "Skin Type"
	case StepConcerns:
		return "Concerns"
	case StepHistory:
		return "History"
	case StepIngredients:
		return "Ingredients"
	case StepProducts:
		return "Products"
	case StepResults:
		return "Results"
	default:
		return ""
	}
}

// Flow is the fixed, ordered list of steps for a flavor.
type Flow []StepKind

var (
	classicFlow = Flow{StepSkinType, StepConcerns, StepHistory, StepResults}
	catalogFlow = Flow{StepConcerns, StepIngredients, StepProducts}
)

// FlowFor returns the step sequence for the flavor.
func FlowFor(f catalog.Flavor) Flow {
	if f == catalog.FlavorCatalog {
		return catalogFlow
	}
	return classicFlow
}

// Len returns N, the number of steps.
func (f Flow) Len() int {
	return len(f)
}

// At returns the kind of the 1-based step, or 0 when out of range.
func (f Flow) At(step int) StepKind {
	if step < 1 || step > len(f) {
		return 0
	}
	return f[step-1]
}
