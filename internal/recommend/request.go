package recommend

import "github.com/abhisek/skinfinder/internal/catalog"

// listPredictRequest is the classic POST /predict body.
type listPredictRequest struct {
	AfterUse    []string `json:"after_use"`
	ProductType string   `json:"product_type"`
}

// vectorPredictRequest is the catalog POST /predict body.
type vectorPredictRequest struct {
	Features    []int  `json:"features"`
	ProductType string `json:"product_type"`
}

type productsRequest struct {
	Ingredients []string `json:"ingredients"`
}

// FilterConcerns keeps only ids from the flavor's vocabulary, preserving
// input order and dropping duplicates. Unknown ids are dropped silently.
func FilterConcerns(flavor catalog.Flavor, ids []string) []string {
	allowed := make(map[string]bool)
	for _, id := range catalog.ConcernIDs(flavor) {
		allowed[id] = true
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if allowed[id] {
			out = append(out, id)
			delete(allowed, id)
		}
	}
	return out
}

// FeatureVector builds the fixed-order 0/1 vector over the flavor's
// vocabulary.
func FeatureVector(flavor catalog.Flavor, ids []string) []int {
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}
	vocab := catalog.ConcernIDs(flavor)
	vec := make([]int, len(vocab))
	for i, id := range vocab {
		if selected[id] {
			vec[i] = 1
		}
	}
	return vec
}

func buildPredictRequest(flavor catalog.Flavor, productType string, concerns []string) any {
	if flavor == catalog.FlavorCatalog {
		return vectorPredictRequest{
			Features:    FeatureVector(flavor, concerns),
			ProductType: productType,
		}
	}
	return listPredictRequest{
		AfterUse:    FilterConcerns(flavor, concerns),
		ProductType: productType,
	}
}
