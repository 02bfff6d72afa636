// Package catalog holds the fixed vocabularies the questionnaire is built
// from: skin types, concern lists, skin-history questions and the static
// ingredient descriptions shown next to recommendations.
package catalog

import "fmt"

// Flavor selects which questionnaire and service contract is used.
type Flavor string

const (
	// FlavorClassic asks skin type, concerns and history, and sends the
	// selected concern ids as a list.
	FlavorClassic Flavor = "classic"

	// FlavorCatalog asks concerns only, sends a fixed-order feature vector
	// and follows up with a product lookup.
	FlavorCatalog Flavor = "catalog"
)

// ParseFlavor converts a config value into a Flavor.
func ParseFlavor(s string) (Flavor, error) {
	switch Flavor(s) {
	case FlavorClassic, FlavorCatalog:
		return Flavor(s), nil
	case "":
		return FlavorClassic, nil
	default:
		return "", fmt.Errorf("unknown flavor: %q", s)
	}
}

// ProductType is the product tag sent with every prediction request.
const ProductType = "serum"

// SkinType is the user's self-reported skin type.
type SkinType string

const (
	SkinTypeUnset SkinType = ""
	SkinTypeOily  SkinType = "oily"
	SkinTypeDry   SkinType = "dry"
)

// Valid reports whether t is one of the selectable skin types.
func (t SkinType) Valid() bool {
	return t == SkinTypeOily || t == SkinTypeDry
}

// SkinTypeOption describes a selectable skin type.
type SkinTypeOption struct {
	Type    SkinType
	Label   string
	Summary string
}

// SkinTypes lists the selectable skin types in display order.
func SkinTypes() []SkinTypeOption {
	return []SkinTypeOption{
		{Type: SkinTypeOily, Label: "Oily Skin", Summary: "Shiny, excess sebum"},
		{Type: SkinTypeDry, Label: "Dry Skin", Summary: "Flaky, tight feeling"},
	}
}

// Concern is a named skin condition or goal the user may select.
type Concern struct {
	ID    string
	Label string
}

var classicConcerns = []Concern{
	{ID: "anti-aging", Label: "Anti-Aging"},
	{ID: "brightening", Label: "Brightening"},
	{ID: "dark-spots", Label: "Dark Spots"},
	{ID: "drying", Label: "Drying"},
	{ID: "good-for-oily-skin", Label: "Good For Oily Skin"},
	{ID: "hydrating", Label: "Hydrating"},
	{ID: "may-worsen-oily-skin", Label: "May Worsen Oily Skin"},
	{ID: "redness-reducing", Label: "Redness Reducing"},
	{ID: "reduces-irritation", Label: "Reduces Irritation"},
	{ID: "reduces-large-pores", Label: "Reduces Large Pores"},
	{ID: "scar-healing", Label: "Scar Healing"},
	{ID: "skin-texture", Label: "Skin Texture"},
}

// The order of catalogConcerns is the feature-vector order expected by the
// prediction service. Do not reorder.
var catalogConcerns = []Concern{
	{ID: "acne", Label: "Acne"},
	{ID: "anti_aging", Label: "Anti-Aging"},
	{ID: "brightening", Label: "Brightening"},
	{ID: "dark_spots", Label: "Dark Spots"},
	{ID: "dryness", Label: "Dryness"},
	{ID: "hydrating", Label: "Hydrating"},
	{ID: "oil_control", Label: "Oil Control"},
	{ID: "pores", Label: "Large Pores"},
	{ID: "redness", Label: "Redness"},
	{ID: "sensitivity", Label: "Sensitivity"},
	{ID: "texture", Label: "Uneven Texture"},
	{ID: "uneven_tone", Label: "Uneven Tone"},
}

// Concerns returns the concern vocabulary for the flavor, in display order.
// The returned slice is a copy.
func Concerns(f Flavor) []Concern {
	src := classicConcerns
	if f == FlavorCatalog {
		src = catalogConcerns
	}
	out := make([]Concern, len(src))
	copy(out, src)
	return out
}

// ConcernIDs returns just the ids of Concerns(f).
func ConcernIDs(f Flavor) []string {
	concerns := Concerns(f)
	ids := make([]string, len(concerns))
	for i, c := range concerns {
		ids[i] = c.ID
	}
	return ids
}

// HistoryQuestion is a yes/no skin-history question.
type HistoryQuestion struct {
	ID    string
	Label string
}

// HistoryQuestions lists the skin-history questions in display order.
func HistoryQuestions() []HistoryQuestion {
	return []HistoryQuestion{
		{ID: "acne", Label: "Acne or acne-triggered breakouts"},
		{ID: "dryness", Label: "Persistent dryness"},
		{ID: "irritation", Label: "Irritation or sensitivity"},
		{ID: "oiliness", Label: "Excess oiliness"},
		{ID: "eczema", Label: "Eczema flare-ups"},
		{ID: "rosacea", Label: "Rosacea symptoms"},
	}
}
