package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/skinfinder/internal/catalog"
	"github.com/abhisek/skinfinder/internal/recommend"
	"github.com/abhisek/skinfinder/internal/results"
)

func newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Short:   "List products containing the given ingredients",
		Example: "  skinfinder products --ingredient hyaluronic --ingredient niacinamide",
		RunE:    runProducts,
	}
	cmd.Flags().StringSlice("ingredient", nil, "Ingredient name (repeatable or comma-separated)")
	return cmd
}

func runProducts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	raw, _ := cmd.Flags().GetStringSlice("ingredient")
	ingredients := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, r := range raw {
		name := catalog.NormalizeIngredient(r)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		ingredients = append(ingredients, name)
	}
	if len(ingredients) == 0 {
		return fmt.Errorf("at least one --ingredient is required")
	}

	svc, err := newService(cfg, headlessLogger(cmd, cfg))
	if err != nil {
		return err
	}

	list, err := svc.Products(cmd.Context(), ingredients)
	if err != nil {
		return fmt.Errorf("%s: %w", recommend.UserMessage(err), err)
	}

	out := cmd.OutOrStdout()
	if len(list.Products) == 0 {
		fmt.Fprintln(out, "No products found.")
		return nil
	}

	for i, m := range results.RankProducts(list.Products, ingredients) {
		fmt.Fprintf(out, "%2d. %s\n", i+1, results.ProductTitle(m.Product))
		if badges := results.Badges(m.Keys, results.MaxBadges); len(badges) > 0 {
			fmt.Fprintf(out, "    Key ingredients: %s\n", strings.Join(badges, ", "))
		}
		if m.HasPercent {
			fmt.Fprintf(out, "    Match: %d%%\n", m.Percent)
		}
	}
	return nil
}
