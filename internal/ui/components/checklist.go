package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skinfinder/internal/ui/theme"
)

// ChecklistItem is one toggleable row.
type ChecklistItem struct {
	ID      string
	Label   string
	Checked bool
}

// Checklist is a vertical multi-select list. It owns only the cursor;
// callers keep the checked state and copy it into Items before rendering.
type Checklist struct {
	Items  []ChecklistItem
	Cursor int
}

// NewChecklist creates a checklist with the cursor on the first item.
func NewChecklist(items []ChecklistItem) Checklist {
	return Checklist{Items: items}
}

// Current returns the item under the cursor.
func (c Checklist) Current() (ChecklistItem, bool) {
	if c.Cursor < 0 || c.Cursor >= len(c.Items) {
		return ChecklistItem{}, false
	}
	return c.Items[c.Cursor], true
}

// Update handles cursor movement.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
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
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	}
	return c, nil
}

// View renders the checklist, two columns when columns > 1.
func (c Checklist) View(columns int) string {
	if columns < 1 {
		columns = 1
	}
	rows := (len(c.Items) + columns - 1) / columns

	cols := make([]string, 0, columns)
	for col := 0; col < columns; col++ {
		var lines []string
		for row := 0; row < rows; row++ {
			i := col*rows + row
			if i >= len(c.Items) {
				break
			}
			lines = append(lines, c.renderItem(i))
		}
		cols = append(cols, strings.Join(lines, "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (c Checklist) renderItem(i int) string {
	item := c.Items[i]
	box := "[ ]"
	if item.Checked {
		box = "[✓]"
	}
	prefix := "  "
	if i == c.Cursor {
		prefix = "▸ "
	}
	line := prefix + box + " " + item.Label + "   "

	switch {
	case i == c.Cursor:
		return theme.Selected.Render(line)
	case item.Checked:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Render(line)
	default:
		return theme.Unselected.Render(line)
	}
}
