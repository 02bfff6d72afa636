package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skinfinder/internal/catalog"
	"github.com/abhisek/skinfinder/internal/logging"
	"github.com/abhisek/skinfinder/internal/recommend"
	"github.com/abhisek/skinfinder/internal/router"
	"github.com/abhisek/skinfinder/internal/screens/ingredient"
	"github.com/abhisek/skinfinder/internal/screens/wizard"
)

func testOptions(skipSplash bool) Options {
	return Options{
		Service:    recommend.NewDemoService(catalog.FlavorClassic),
		Flavor:     catalog.FlavorClassic,
		Logger:     logging.Discard(),
		SkipSplash: skipSplash,
	}
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestSplashHandsOverToWizard(t *testing.T) {
	m := newAppModel(testOptions(false))
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	_, cmd := update(m, tea.KeyPressMsg{Code: 'a', Text: "a"})
	if cmd == nil {
		t.Fatal("expected transition command from splash")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	m, _ = update(m, msg)

	if _, ok := m.router.Active().(*wizard.WizardScreen); !ok {
		t.Fatalf("expected wizard screen, got %T", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("splash should be replaced, depth = %d", m.router.Depth())
	}
}

func TestEscIsForwardedToWizard(t *testing.T) {
	m := newAppModel(testOptions(true))
	m, _ = update(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	w := m.router.Active().(*wizard.WizardScreen)
	if w.State().Step != 2 {
		t.Fatalf("expected step 2 after enter, got %d", w.State().Step)
	}

	m, _ = update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if w.State().Step != 1 {
		t.Errorf("esc should move the wizard back, step = %d", w.State().Step)
	}
}

func TestEscPopsDetailScreen(t *testing.T) {
	m := newAppModel(testOptions(true))
	w := m.router.Active().(*wizard.WizardScreen)

	detail := ingredient.New(recommend.Ingredient{Name: "niacinamide", Recommended: true}, nil)
	m, _ = update(m, router.PushScreenMsg{Screen: detail})
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d after push, want 2", m.router.Depth())
	}

	_, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command for esc on detail screen")
	}
	m, _ = update(m, cmd())

	if m.router.Active() != w {
		t.Errorf("expected wizard back on top, got %T", m.router.Active())
	}
	if w.State().Step != 1 {
		t.Errorf("esc on the detail screen must not move the wizard, step = %d", w.State().Step)
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions(true))
	_, cmd := update(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestViewFrame(t *testing.T) {
	m := newAppModel(testOptions(true))
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	out := m.render()
	for _, want := range []string{"SkinFinder", "Skin Type", "1/4", "Ctrl+C"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestViewBeforeSize(t *testing.T) {
	m := newAppModel(testOptions(true))
	if m.render() != "" {
		t.Error("nothing should render before the first WindowSizeMsg")
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newAppModel(testOptions(true))
	m, _ = update(m, tea.WindowSizeMsg{Width: 40, Height: 10})

	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected min-size message")
	}
}
