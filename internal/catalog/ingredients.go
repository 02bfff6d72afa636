package catalog

import "strings"

// FallbackDescription is shown for ingredients missing from the table.
const FallbackDescription = "A skincare ingredient matched to your skin profile."

// ingredientDescriptions is keyed by normalized ingredient id (see
// NormalizeIngredient).
var ingredientDescriptions = map[string]string{
	"aha_bha":          "Exfoliating acids that clear pores and smooth texture.",
	"alcohol":          "Can be drying and irritating on sensitive skin.",
	"allantoin":        "Soothes irritation and supports skin repair.",
	"azelaic_acid":     "Calms redness and fades post-acne marks.",
	"benzoyl_peroxide": "Kills acne-causing bacteria; can be drying.",
	"centella":         "Calming botanical that helps redness and healing.",
	"ceramides":        "Lipids that restore and protect the skin barrier.",
	"fragrance":        "Adds scent; a frequent cause of sensitivity.",
	"glycerin":         "Humectant that draws moisture into the skin.",
	"glycolic_acid":    "AHA that exfoliates the surface for brighter skin.",
	"hyaluronic":       "Holds many times its weight in water for deep hydration.",
	"hyaluronic_acid":  "Holds many times its weight in water for deep hydration.",
	"kojic_acid":       "Brightens dark spots by slowing pigment production.",
	"lactic_acid":      "Gentle AHA that exfoliates and hydrates.",
	"niacinamide":      "Vitamin B3; refines pores and evens tone.",
	"peptides":         "Signal collagen production for firmer skin.",
	"retinol":          "Vitamin A derivative that speeds cell turnover.",
	"salicylic_acid":   "Oil-soluble BHA that unclogs pores.",
	"shea_butter":      "Rich emollient that softens dry skin.",
	"squalane":         "Lightweight oil that mimics skin's own sebum.",
	"tea_tree":         "Botanical with antibacterial properties for blemishes.",
	"vitamin_c":        "Antioxidant that brightens and protects from damage.",
	"vitamin_e":        "Antioxidant that nourishes and protects the barrier.",
	"zinc_oxide":       "Mineral that soothes and shields the skin.",
}

// NormalizeIngredient lower-cases an ingredient id and folds spaces and
// hyphens into underscores.
func NormalizeIngredient(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	return strings.Join(strings.FieldsFunc(id, isWordSeparator), "_")
}

// DescribeIngredient returns the static description for id, or
// FallbackDescription when id is not in the table.
func DescribeIngredient(id string) string {
	if d, ok := ingredientDescriptions[NormalizeIngredient(id)]; ok {
		return d
	}
	return FallbackDescription
}

func isWordSeparator(r rune) bool {
	switch r {
	case '_', '-', ' ', '\t', '\n':
		return true
	}
	return false
}
