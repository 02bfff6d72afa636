package components

import (
	"github.com/abhisek/skinfinder/internal/ui/theme"
)

// Button is a styled call-to-action. A busy button renders its BusyLabel
// and is never active.
type Button struct {
	Label     string
	BusyLabel string
	Active    bool
	Busy      bool
}

// NewButton creates a new button.
func NewButton(label string, active bool) Button {
	return Button{
		Label:     label,
		BusyLabel: label,
		Active:    active,
	}
}

// Enabled reports whether pressing the button should do anything.
func (b Button) Enabled() bool {
	return b.Active && !b.Busy
}

// View renders the button.
func (b Button) View() string {
	if b.Busy {
		return theme.ButtonInactive.Render(b.BusyLabel)
	}
	label := "▸ " + b.Label
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
