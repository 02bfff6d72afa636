// Package recommend talks to the remote prediction service. Both observed
// response shapes are normalized here, so the rest of the program only ever
// sees the ordered canonical types below.
package recommend

import "context"

// Service is the core abstraction over the prediction service.
type Service interface {
	// Recommend sends the selected concern ids and returns the ingredient
	// verdicts. Ids outside the active vocabulary are dropped before the
	// request is sent.
	Recommend(ctx context.Context, concerns []string) (*Recommendation, error)

	// Products looks up products that contain the given ingredients.
	Products(ctx context.Context, ingredients []string) (*ProductList, error)
}

// Ingredient is one ingredient verdict, in the order the service returned it.
type Ingredient struct {
	Name        string
	Recommended bool
}

// Recommendation is the canonical result of a prediction call.
type Recommendation struct {
	Ingredients []Ingredient
	RequestID   string
}

// RecommendedNames returns the names flagged as recommended, in order.
func (r *Recommendation) RecommendedNames() []string {
	if r == nil {
		return nil
	}
	var names []string
	for _, ing := range r.Ingredients {
		if ing.Recommended {
			names = append(names, ing.Name)
		}
	}
	return names
}

// Len returns the number of ingredient verdicts.
func (r *Recommendation) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Ingredients)
}

// Flag is a per-product ingredient flag, in response order.
type Flag struct {
	Ingredient string
	Present    bool
}

// Product is a single product record.
type Product struct {
	Name  string
	Brand string
	Flags []Flag
}

// Has reports whether the product's flag for ingredient is truthy.
// Matching is exact on the ingredient name.
func (p Product) Has(ingredient string) bool {
	for _, f := range p.Flags {
		if f.Ingredient == ingredient {
			return f.Present
		}
	}
	return false
}

// ProductList is the canonical result of a product lookup.
type ProductList struct {
	Products  []Product
	RequestID string
}
