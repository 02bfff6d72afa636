package recommend

import (
	"strings"

	"github.com/tidwall/gjson"
)

// parsePrediction converts a validated prediction body into a
// Recommendation. gjson is used instead of decoding into a map so that
// the service's key order survives.
func parsePrediction(raw []byte) *Recommendation {
	root := gjson.ParseBytes(raw)
	rec := &Recommendation{}
	seen := make(map[string]bool)

	add := func(name string, recommended bool) {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		rec.Ingredients = append(rec.Ingredients, Ingredient{Name: name, Recommended: recommended})
	}

	if list := root.Get("ingredients"); list.IsArray() {
		// List shape: everything listed is recommended.
		for _, v := range list.Array() {
			add(v.String(), true)
		}
		return rec
	}

	root.ForEach(func(key, value gjson.Result) bool {
		if flag, ok := parseFlag(value); ok {
			add(key.String(), flag)
		}
		return true
	})
	return rec
}

// parseProducts converts a validated filter-products body into a
// ProductList. Keys other than name and brand are ingredient flags.
func parseProducts(raw []byte) *ProductList {
	list := &ProductList{}
	for _, item := range gjson.GetBytes(raw, "products").Array() {
		if !item.IsObject() {
			continue
		}
		var p Product
		item.ForEach(func(key, value gjson.Result) bool {
			switch k := key.String(); k {
			case "name":
				p.Name = value.String()
			case "brand":
				p.Brand = value.String()
			default:
				if flag, ok := parseFlag(value); ok {
					p.Flags = append(p.Flags, Flag{Ingredient: k, Present: flag})
				}
			}
			return true
		})
		list.Products = append(list.Products, p)
	}
	return list
}

// parseFlag interprets a flag value. Numbers are truthy when non-zero;
// strings accept yes/no style words. ok is false for anything else.
func parseFlag(v gjson.Result) (flag bool, ok bool) {
	switch v.Type {
	case gjson.True:
		return true, true
	case gjson.False:
		return false, true
	case gjson.Number:
		return v.Float() != 0, true
	case gjson.String:
		switch strings.ToLower(strings.TrimSpace(v.Str)) {
		case "yes", "y", "true", "1":
			return true, true
		case "no", "n", "false", "0", "":
			return false, true
		}
	}
	return false, false
}
