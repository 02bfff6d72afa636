package wizard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/skinfinder/internal/catalog"
	"github.com/abhisek/skinfinder/internal/recommend"
	"github.com/abhisek/skinfinder/internal/results"
	"github.com/abhisek/skinfinder/internal/ui/components"
	"github.com/abhisek/skinfinder/internal/ui/layout"
	"github.com/abhisek/skinfinder/internal/ui/theme"
	wiz "github.com/abhisek/skinfinder/internal/wizard"
)

const maxContentWidth = 76

func (s *WizardScreen) View(width, height int) string {
	w := min(width-4, maxContentWidth)
	compact := layout.IsCompactWidth(width)

	var body string
	switch s.state.Kind() {
	case wiz.StepSkinType:
		body = s.renderSkinType(compact)
	case wiz.StepConcerns:
		body = s.renderConcerns(compact)
	case wiz.StepHistory:
		body = s.renderHistory()
	case wiz.StepResults:
		body = s.renderResults(w, compact)
	case wiz.StepIngredients:
		body = s.renderIngredients(w, compact)
	case wiz.StepProducts:
		body = s.renderProducts(w)
	}

	sections := []string{body}
	if s.notice != "" {
		sections = append(sections, "", theme.Hint.Render(s.notice))
	}
	if s.state.Err != "" {
		sections = append(sections, "", theme.ErrorText.Render(s.state.Err))
	}

	content := lipgloss.NewStyle().Width(w).Render(strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func heading(title, subtitle string) string {
	return theme.Title.Render(title) + "\n" + theme.Subtitle.Render(subtitle) + "\n"
}

func (s *WizardScreen) renderSkinType(compact bool) string {
	return heading("Let's get to know your skin", "Pick the option that fits you best.") +
		"\n" + s.skinTypes.View(compact)
}

func (s *WizardScreen) renderConcerns(compact bool) string {
	columns := 2
	if compact {
		columns = 1
	}

	n := len(s.state.Selection.Selected())
	count := theme.Hint.Render(fmt.Sprintf("%d selected", n))

	out := heading("What are your skin concerns?", "Select all that apply.") +
		"\n" + s.concerns.View(columns) + "\n\n" + count

	if s.triggersRecommend() {
		out += "\n\n" + s.recommendButton()
	}
	return out
}

func (s *WizardScreen) renderHistory() string {
	var b strings.Builder
	b.WriteString(heading("Skin history", "Have you experienced any of these? Answer Y or N."))
	b.WriteString("\n")

	for i, q := range catalog.HistoryQuestions() {
		prefix := "  "
		if i == s.historyCursor {
			prefix = "▸ "
		}
		var answer string
		switch s.state.Selection.HistoryAnswer(q.ID) {
		case wiz.AnswerYes:
			answer = theme.Recommended.Render("Yes")
		case wiz.AnswerNo:
			answer = theme.Avoid.Render("No ")
		default:
			answer = theme.Hint.Render(" - ")
		}
		line := fmt.Sprintf("%s%-44s", prefix, q.Label)
		if i == s.historyCursor {
			line = theme.Selected.Render(line)
		} else {
			line = theme.Unselected.Render(line)
		}
		b.WriteString(line + " " + answer + "\n")
	}

	answered := fmt.Sprintf("%d/%d answered", s.state.Selection.AnsweredCount(), len(catalog.HistoryQuestions()))
	b.WriteString("\n" + theme.Hint.Render(answered) + "\n")
	b.WriteString("\n" + s.recommendButton())
	return b.String()
}

func (s *WizardScreen) recommendButton() string {
	btn := components.NewButton("Get recommendations", s.state.CheckRecommend() == nil)
	btn.Busy = s.state.RecommendPending
	btn.BusyLabel = s.spinner.View() + " Analyzing your skin..."
	return btn.View()
}

func (s *WizardScreen) renderResults(width int, compact bool) string {
	title := heading("Your personalized recommendations", "Ingredients picked for your concerns.")

	switch {
	case s.state.RecommendPending:
		return title + "\n" + s.spinner.View() + " Analyzing your skin..."
	case s.state.Recommendation == nil:
		return title + "\n" + theme.Hint.Render("No recommendations yet. Press Enter to get them.")
	}

	rec, avoid := results.Partition(s.state.Recommendation)
	if len(rec) == 0 && len(avoid) == 0 {
		return title + "\n" + theme.Hint.Render("No ingredients matched your concerns. Try selecting different ones.")
	}

	out := title + "\n" + renderIngredientList("Recommended", theme.Recommended, rec, width, compact, s.ingredientCursor)
	if len(avoid) > 0 {
		out += "\n" + renderIngredientList("Avoid", theme.Avoid, avoid, width, compact, s.ingredientCursor-len(rec))
	}
	return out
}

func (s *WizardScreen) renderIngredients(width int, compact bool) string {
	title := heading("Your ingredient match", "What to look for and what to skip.")
	if s.state.Recommendation == nil {
		return title + "\n" + theme.Hint.Render("No recommendations yet.")
	}

	rec, avoid := results.Partition(s.state.Recommendation)
	recCursor, avoidCursor := s.ingredientCursor, s.ingredientCursor-len(rec)
	var lists string
	if compact {
		lists = renderIngredientList("Recommended", theme.Recommended, rec, width, true, recCursor) + "\n" +
			renderIngredientList("Avoid", theme.Avoid, avoid, width, true, avoidCursor)
	} else {
		half := width/2 - 1
		lists = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(half).Render(renderIngredientList("Recommended", theme.Recommended, rec, half, true, recCursor)),
			"  ",
			lipgloss.NewStyle().Width(half).Render(renderIngredientList("Avoid", theme.Avoid, avoid, half, true, avoidCursor)),
		)
	}

	btn := components.NewButton("Find matching products", s.state.CheckProducts() == nil)
	btn.Busy = s.state.ProductsPending
	btn.BusyLabel = s.spinner.View() + " Finding products..."

	return title + "\n" + lists + "\n\n" + btn.View()
}

// renderIngredientList highlights items[cursor]; an out-of-range cursor
// highlights nothing.
func renderIngredientList(label string, style lipgloss.Style, items []recommend.Ingredient, width int, compact bool, cursor int) string {
	var b strings.Builder
	b.WriteString(style.Render(label) + "\n")
	if len(items) == 0 {
		b.WriteString(theme.Hint.Render("  none") + "\n")
		return b.String()
	}
	for i, ing := range items {
		if i == cursor {
			b.WriteString("▸ " + theme.Selected.Render(results.Label(ing.Name)) + "\n")
		} else {
			b.WriteString("  • " + theme.Body.Render(results.Label(ing.Name)) + "\n")
		}
		if !compact {
			desc := ansi.Truncate(results.Describe(ing.Name), max(width-4, 10), "…")
			b.WriteString("    " + theme.Hint.Render(desc) + "\n")
		}
	}
	return b.String()
}

func (s *WizardScreen) renderProducts(width int) string {
	title := heading("Products for you", "Ranked by how many recommended ingredients they contain.")

	if s.state.Products == nil || len(s.state.Products.Products) == 0 {
		return title + "\n" + theme.Hint.Render("No products found for these ingredients.")
	}

	recommended := s.state.Recommendation.RecommendedNames()
	matches := results.RankProducts(s.state.Products.Products, recommended)

	cards := make([]string, 0, len(matches))
	for _, m := range matches {
		cards = append(cards, renderProductCard(m, width))
	}
	return title + "\n" + strings.Join(cards, "\n")
}

func renderProductCard(m results.ProductMatch, width int) string {
	inner := max(width-6, 20)

	name := ansi.Truncate(results.ProductTitle(m.Product), inner, "…")
	lines := []string{theme.Body.Bold(true).Render(name)}

	if badges := results.Badges(m.Keys, results.MaxBadges); len(badges) > 0 {
		rendered := make([]string, len(badges))
		for i, b := range badges {
			rendered[i] = theme.Badge.Render(b)
		}
		lines = append(lines, strings.Join(rendered, " "))
	} else {
		lines = append(lines, theme.Hint.Render("No key ingredients"))
	}

	if m.HasPercent {
		lines = append(lines, components.NewProgressBar("Match", m.Percent, true, inner).View())
	}

	return theme.Card.Width(inner + 4).Render(strings.Join(lines, "\n"))
}
