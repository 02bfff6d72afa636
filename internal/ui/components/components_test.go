package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func TestChecklist_CursorBounds(t *testing.T) {
	c := NewChecklist([]ChecklistItem{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}})

	c, _ = c.Update(keyPress("up"))
	if c.Cursor != 0 {
		t.Errorf("cursor moved above first item: %d", c.Cursor)
	}
	c, _ = c.Update(keyPress("down"))
	c, _ = c.Update(keyPress("j"))
	if c.Cursor != 1 {
		t.Errorf("cursor should stop at last item, got %d", c.Cursor)
	}
	cur, ok := c.Current()
	if !ok || cur.ID != "b" {
		t.Errorf("Current() = %+v, %v", cur, ok)
	}
}

func TestChecklist_View(t *testing.T) {
	c := NewChecklist([]ChecklistItem{
		{ID: "a", Label: "Acne", Checked: true},
		{ID: "b", Label: "Pores"},
		{ID: "c", Label: "Redness"},
	})
	out := c.View(2)
	if !strings.Contains(out, "[✓] Acne") || !strings.Contains(out, "[ ] Pores") || !strings.Contains(out, "Redness") {
		t.Errorf("unexpected checklist view:\n%s", out)
	}
}

func TestChoice(t *testing.T) {
	c := NewChoice("Skin type?", []ChoiceOption{{Label: "Oily", Detail: "shine"}, {Label: "Dry"}})
	if c.Chosen != -1 {
		t.Fatalf("nothing should be chosen initially")
	}
	c, _ = c.Update(keyPress("down"))
	c.Chosen = c.Cursor

	out := c.View(false)
	if !strings.Contains(out, "(●) Dry") || !strings.Contains(out, "shine") {
		t.Errorf("unexpected choice view:\n%s", out)
	}
	if strings.Contains(c.View(true), "shine") {
		t.Error("compact view should hide details")
	}
}

func TestButton(t *testing.T) {
	b := NewButton("Get recommendations", true)
	if !b.Enabled() {
		t.Error("active button should be enabled")
	}
	b.Busy = true
	b.BusyLabel = "Loading..."
	if b.Enabled() {
		t.Error("busy button should be disabled")
	}
	if !strings.Contains(b.View(), "Loading...") {
		t.Errorf("busy view = %q", b.View())
	}
}

func TestProgressBar_Clamps(t *testing.T) {
	if !strings.Contains(NewProgressBar("", 150, true, 20).View(), "100%") {
		t.Error("percent above 100 should clamp")
	}
	if !strings.Contains(NewProgressBar("match", 67, true, 30).View(), "67%") {
		t.Error("percent label missing")
	}
}
