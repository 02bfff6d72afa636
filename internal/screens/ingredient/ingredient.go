// Package ingredient is the detail screen pushed over the wizard for a
// single ingredient verdict.
package ingredient

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/skinfinder/internal/recommend"
	"github.com/abhisek/skinfinder/internal/results"
	"github.com/abhisek/skinfinder/internal/screen"
	"github.com/abhisek/skinfinder/internal/ui/layout"
	"github.com/abhisek/skinfinder/internal/ui/theme"
)

const maxContentWidth = 64

// DetailScreen shows one ingredient and the loaded products containing it.
// It does not handle Esc, so the shell pops it.
type DetailScreen struct {
	ingredient recommend.Ingredient
	products   []recommend.Product
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates a DetailScreen. products may be nil when no lookup has run.
func New(ing recommend.Ingredient, products *recommend.ProductList) *DetailScreen {
	d := &DetailScreen{ingredient: ing}
	if products != nil {
		for _, p := range products.Products {
			if p.Has(ing.Name) {
				d.products = append(d.products, p)
			}
		}
	}
	return d
}

func (d *DetailScreen) Init() tea.Cmd {
	return nil
}

func (d *DetailScreen) Title() string {
	return results.Label(d.ingredient.Name)
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *DetailScreen) View(width, height int) string {
	w := min(width-4, maxContentWidth)

	verdict := theme.Recommended.Render("Recommended for you")
	if !d.ingredient.Recommended {
		verdict = theme.Avoid.Render("Best avoided")
	}

	lines := []string{
		theme.Title.Render(results.Label(d.ingredient.Name)),
		verdict,
		"",
		theme.Body.Render(results.Describe(d.ingredient.Name)),
	}

	if len(d.products) > 0 {
		lines = append(lines, "", theme.Subtitle.Render("Found in"))
		for _, p := range d.products {
			name := ansi.Truncate(results.ProductTitle(p), max(w-4, 10), "…")
			lines = append(lines, "  • "+theme.Body.Render(name))
		}
	}

	content := lipgloss.NewStyle().Width(w).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
