// Package results derives display-ready groupings from recommendation and
// product responses. Everything here is pure.
package results

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abhisek/skinfinder/internal/catalog"
	"github.com/abhisek/skinfinder/internal/recommend"
)

// MaxBadges is how many key-ingredient badges a product row shows before
// collapsing the rest into "+N more".
const MaxBadges = 3

// Partition splits ingredients into recommended and not-recommended,
// preserving response order within each group.
func Partition(rec *recommend.Recommendation) (recommended, notRecommended []recommend.Ingredient) {
	if rec == nil {
		return nil, nil
	}
	for _, ing := range rec.Ingredients {
		if ing.Recommended {
			recommended = append(recommended, ing)
		} else {
			notRecommended = append(notRecommended, ing)
		}
	}
	return recommended, notRecommended
}

// Label turns an ingredient id into a human-readable label by splitting on
// word separators and capitalizing each segment: "aha_bha" -> "Aha Bha".
func Label(id string) string {
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '\t'
	})
	// A Caser is stateful, so each call gets its own.
	caser := cases.Title(language.English)
	for i, p := range parts {
		parts[i] = caser.String(p)
	}
	return strings.Join(parts, " ")
}

// Describe returns the static short description for an ingredient id.
func Describe(id string) string {
	return catalog.DescribeIngredient(id)
}

// KeyIngredients returns the recommended names whose flag on p is truthy,
// in the order of recommended.
func KeyIngredients(p recommend.Product, recommended []string) []string {
	var keys []string
	for _, name := range recommended {
		if p.Has(name) {
			keys = append(keys, name)
		}
	}
	return keys
}

// Badges returns up to max labels for keys, plus a "+N more" entry when
// keys does not fit. max <= 0 means no cap.
func Badges(keys []string, max int) []string {
	if max <= 0 || len(keys) <= max {
		out := make([]string, len(keys))
		for i, k := range keys {
			out[i] = Label(k)
		}
		return out
	}
	out := make([]string, 0, max+1)
	for _, k := range keys[:max] {
		out = append(out, Label(k))
	}
	return append(out, fmt.Sprintf("+%d more", len(keys)-max))
}

// MatchPercent returns matches/total as a rounded percentage. ok is false
// when total is zero, in which case the percentage is undefined.
func MatchPercent(matches, total int) (percent int, ok bool) {
	if total <= 0 {
		return 0, false
	}
	return int(math.Round(float64(matches) * 100 / float64(total))), true
}

// ProductMatch is a product together with its key ingredients.
type ProductMatch struct {
	Product recommend.Product
	Keys    []string
	Percent int
	// HasPercent is false when there were no recommended ingredients.
	HasPercent bool
}

// RankProducts pairs each product with its key ingredients and orders the
// result by match count, highest first. Ties keep response order.
func RankProducts(products []recommend.Product, recommended []string) []ProductMatch {
	matches := make([]ProductMatch, len(products))
	for i, p := range products {
		keys := KeyIngredients(p, recommended)
		pct, ok := MatchPercent(len(keys), len(recommended))
		matches[i] = ProductMatch{Product: p, Keys: keys, Percent: pct, HasPercent: ok}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return len(matches[i].Keys) > len(matches[j].Keys)
	})
	return matches
}

// ProductTitle returns "Brand Name", falling back to whichever is set.
func ProductTitle(p recommend.Product) string {
	name := strings.TrimSpace(p.Name)
	brand := strings.TrimSpace(p.Brand)
	switch {
	case name == "" && brand == "":
		return "Unnamed product"
	case brand == "":
		return name
	case name == "":
		return brand
	default:
		return brand + " " + name
	}
}
