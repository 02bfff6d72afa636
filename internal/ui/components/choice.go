package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skinfinder/internal/ui/theme"
)

// ChoiceOption is one option in a single-select list.
type ChoiceOption struct {
	Label  string
	Detail string
}

// Choice is a single-select list. Chosen is -1 until the caller marks an
// option as picked.
type Choice struct {
	Question string
	Options  []ChoiceOption
	Cursor   int
	Chosen   int
}

// NewChoice creates a new single-select component.
func NewChoice(question string, options []ChoiceOption) Choice {
	return Choice{
		Question: question,
		Options:  options,
		Chosen:   -1,
	}
}

// Update handles keyboard navigation.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	}
	return c, nil
}

// View renders the question and its options. Details are omitted when
// compact is set.
func (c Choice) View(compact bool) string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Question) + "\n\n"

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		mark := "( )"
		if i == c.Chosen {
			mark = "(●)"
		}
		line := prefix + mark + " " + opt.Label

		switch {
		case i == c.Cursor:
			s += theme.Selected.Render(line)
		case i == c.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line)
		default:
			s += theme.Unselected.Render(line)
		}
		s += "\n"

		if !compact && opt.Detail != "" {
			s += theme.Hint.Render("      "+opt.Detail) + "\n"
		}
	}
	return s
}
