package wizard

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Yes     key.Binding
	No      key.Binding
	Next    key.Binding
	Back    key.Binding
	Restart key.Binding
	Details key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑↓", "Move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↑↓", "Move"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("space", " ", "x"),
			key.WithHelp("Space", "Toggle"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("Y", "Yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("N", "No"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("Enter", "Next"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "shift+tab"),
			key.WithHelp("Esc", "Back"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("R", "Start over"),
		),
		Details: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("I", "Details"),
		),
	}
}
