package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"

	"github.com/abhisek/skinfinder/internal/catalog"
	"github.com/abhisek/skinfinder/internal/recommend"
	"github.com/abhisek/skinfinder/internal/results"
)

// maxSuggestDistance bounds how far a typo may be from a known concern id
// for a suggestion to be offered.
const maxSuggestDistance = 3

func newPredictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Get ingredient recommendations without the questionnaire",
		Example: "  skinfinder predict --concern hydrating --concern dark-spots\n" +
			"  skinfinder predict --flavor catalog --concern acne,pores --json",
		RunE: runPredict,
	}
	cmd.Flags().StringSlice("concern", nil, "Concern id (repeatable or comma-separated)")
	cmd.Flags().String("skin-type", "", "Skin type: oily or dry (echoed in the report only; the service does not take it)")
	cmd.Flags().Bool("json", false, "Print JSON instead of text")
	return cmd
}

type ingredientJSON struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type predictJSON struct {
	RequestID      string           `json:"request_id,omitempty"`
	Flavor         string           `json:"flavor"`
	SkinType       string           `json:"skin_type,omitempty"`
	Concerns       []string         `json:"concerns"`
	Recommended    []ingredientJSON `json:"recommended"`
	NotRecommended []ingredientJSON `json:"not_recommended"`
}

func runPredict(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	flavor, err := cfg.FlavorValue()
	if err != nil {
		return err
	}

	raw, _ := cmd.Flags().GetStringSlice("concern")
	asJSON, _ := cmd.Flags().GetBool("json")
	skinFlag, _ := cmd.Flags().GetString("skin-type")

	skinType := catalog.SkinType(strings.ToLower(skinFlag))
	if skinFlag != "" && !skinType.Valid() {
		return fmt.Errorf("unknown skin type %q (want oily or dry)", skinFlag)
	}

	concerns := recommend.FilterConcerns(flavor, raw)
	warnUnknownConcerns(cmd.ErrOrStderr(), flavor, raw)
	if len(concerns) == 0 {
		return fmt.Errorf("no known concerns given; run 'skinfinder concerns' to list them")
	}

	svc, err := newService(cfg, headlessLogger(cmd, cfg))
	if err != nil {
		return err
	}

	rec, err := svc.Recommend(cmd.Context(), concerns)
	if err != nil {
		return fmt.Errorf("%s: %w", recommend.UserMessage(err), err)
	}

	recommended, avoid := results.Partition(rec)
	out := cmd.OutOrStdout()

	if asJSON {
		payload := predictJSON{
			RequestID:      rec.RequestID,
			Flavor:         string(flavor),
			SkinType:       string(skinType),
			Concerns:       concerns,
			Recommended:    toIngredientJSON(recommended),
			NotRecommended: toIngredientJSON(avoid),
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	if skinType != catalog.SkinTypeUnset {
		fmt.Fprintf(out, "Skin type: %s\n", skinType)
	}
	fmt.Fprintf(out, "Concerns: %s\n\n", strings.Join(concerns, ", "))

	if len(recommended) == 0 && len(avoid) == 0 {
		fmt.Fprintln(out, "No ingredients matched your concerns.")
		return nil
	}
	printIngredients(out, "Recommended", recommended)
	if len(avoid) > 0 {
		fmt.Fprintln(out)
		printIngredients(out, "Avoid", avoid)
	}
	return nil
}

func toIngredientJSON(items []recommend.Ingredient) []ingredientJSON {
	out := make([]ingredientJSON, 0, len(items))
	for _, ing := range items {
		out = append(out, ingredientJSON{
			Name:        ing.Name,
			Label:       results.Label(ing.Name),
			Description: results.Describe(ing.Name),
		})
	}
	return out
}

func printIngredients(w io.Writer, heading string, items []recommend.Ingredient) {
	fmt.Fprintf(w, "%s:\n", heading)
	for _, ing := range items {
		fmt.Fprintf(w, "  • %s\n    %s\n", results.Label(ing.Name), results.Describe(ing.Name))
	}
}

// warnUnknownConcerns writes a note for every id outside the flavor's
// vocabulary, with a suggestion when one is close.
func warnUnknownConcerns(w io.Writer, flavor catalog.Flavor, ids []string) {
	known := catalog.ConcernIDs(flavor)
	valid := make(map[string]bool, len(known))
	for _, id := range known {
		valid[id] = true
	}

	for _, id := range ids {
		if valid[id] {
			continue
		}
		if s := suggestConcern(id, known); s != "" {
			fmt.Fprintf(w, "ignoring unknown concern %q (did you mean %q?)\n", id, s)
		} else {
			fmt.Fprintf(w, "ignoring unknown concern %q\n", id)
		}
	}
}

// suggestConcern returns the known id closest to id, or "" when none is
// within maxSuggestDistance.
func suggestConcern(id string, known []string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, k := range known {
		if d := levenshtein.ComputeDistance(strings.ToLower(id), k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
