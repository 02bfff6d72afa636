// Package wizard is the interactive questionnaire screen. It renders the
// current step of a wizard.State, turns key presses into wizard actions,
// and runs recommendation calls as Bubble Tea commands.
package wizard

import (
	"context"
	"errors"
	"log/slog"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skinfinder/internal/catalog"
	"github.com/abhisek/skinfinder/internal/recommend"
	"github.com/abhisek/skinfinder/internal/results"
	"github.com/abhisek/skinfinder/internal/router"
	"github.com/abhisek/skinfinder/internal/screen"
	"github.com/abhisek/skinfinder/internal/screens/ingredient"
	"github.com/abhisek/skinfinder/internal/ui/components"
	"github.com/abhisek/skinfinder/internal/ui/layout"
	"github.com/abhisek/skinfinder/internal/ui/theme"
	wiz "github.com/abhisek/skinfinder/internal/wizard"
)

// WizardScreen implements screen.Screen for the questionnaire.
type WizardScreen struct {
	state   wiz.State
	service recommend.Service
	logger  *slog.Logger
	keys    keyMap

	skinTypes     components.Choice
	concerns      components.Checklist
	historyCursor int
	// ingredientCursor indexes verdicts() on the result steps.
	ingredientCursor int
	spinner          spinner.Model

	// notice explains why the last key press did nothing.
	notice string
}

var _ screen.Screen = (*WizardScreen)(nil)
var _ screen.KeyHintProvider = (*WizardScreen)(nil)
var _ screen.StatusProvider = (*WizardScreen)(nil)
var _ screen.BackHandler = (*WizardScreen)(nil)

// New creates a WizardScreen for flavor backed by service.
func New(service recommend.Service, flavor catalog.Flavor, logger *slog.Logger) *WizardScreen {
	if logger == nil {
		logger = slog.Default()
	}
	s := &WizardScreen{
		service: service,
		logger:  logger,
		keys:    defaultKeyMap(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(theme.Selected),
		),
	}
	s.reset(wiz.New(flavor, ""))
	return s
}

// State returns the current wizard state.
func (s *WizardScreen) State() wiz.State {
	return s.state
}

func (s *WizardScreen) reset(state wiz.State) {
	s.state = state
	s.notice = ""
	s.historyCursor = 0
	s.ingredientCursor = 0

	opts := make([]components.ChoiceOption, 0, 2)
	for _, o := range catalog.SkinTypes() {
		opts = append(opts, components.ChoiceOption{Label: o.Label, Detail: o.Summary})
	}
	s.skinTypes = components.NewChoice("What best describes your skin?", opts)

	items := make([]components.ChecklistItem, 0, 12)
	for _, c := range catalog.Concerns(state.Flavor) {
		items = append(items, components.ChecklistItem{ID: c.ID, Label: c.Label})
	}
	s.concerns = components.NewChecklist(items)
	s.syncConcerns()

	s.logger.Debug("wizard session started",
		slog.String("session_id", state.SessionID),
		slog.String("flavor", string(state.Flavor)))
}

func (s *WizardScreen) Init() tea.Cmd {
	return nil
}

func (s *WizardScreen) Title() string {
	return s.state.Kind().Title()
}

func (s *WizardScreen) Status() string {
	return layout.StepStatus(s.state.Step, s.state.Flow().Len())
}

// HandlesBack reports true: Esc moves to the previous step.
func (s *WizardScreen) HandlesBack() bool {
	return true
}

func (s *WizardScreen) KeyHints() []layout.KeyHint {
	var hints []layout.KeyHint
	add := func(b key.Binding) {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}

	switch s.state.Kind() {
	case wiz.StepSkinType:
		add(s.keys.Up)
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Choose"})
	case wiz.StepConcerns:
		add(s.keys.Up)
		add(s.keys.Toggle)
		if s.triggersRecommend() {
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Get recommendations"})
		} else {
			add(s.keys.Next)
		}
	case wiz.StepHistory:
		add(s.keys.Up)
		add(s.keys.Yes)
		add(s.keys.No)
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Get recommendations"})
	case wiz.StepIngredients:
		add(s.keys.Up)
		add(s.keys.Details)
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Find products"})
	case wiz.StepResults:
		if s.state.Recommendation == nil {
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Retry"})
		} else {
			add(s.keys.Up)
			add(s.keys.Details)
		}
	}

	if s.state.CanRetreat() {
		add(s.keys.Back)
	}
	if s.state.IsTerminal() {
		add(s.keys.Restart)
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}

func (s *WizardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recommendationsMsg:
		return s, s.handleRecommendations(msg)

	case productsMsg:
		return s, s.handleProducts(msg)

	case spinner.TickMsg:
		if !s.state.Pending() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

// dispatch applies a to the state. Rejected actions leave the state as it
// was and are returned to the caller.
func (s *WizardScreen) dispatch(a wiz.Action) error {
	next, err := wiz.Reduce(s.state, a)
	if err != nil {
		return err
	}
	s.state = next
	s.syncConcerns()
	return nil
}

// syncConcerns mirrors the selection into the checklist.
func (s *WizardScreen) syncConcerns() {
	for i := range s.concerns.Items {
		s.concerns.Items[i].Checked = s.state.Selection.IsSelected(s.concerns.Items[i].ID)
	}
}

// verdicts returns the recommended ingredients followed by the ones to
// avoid, in the order the result screens list them.
func (s *WizardScreen) verdicts() []recommend.Ingredient {
	rec, avoid := results.Partition(s.state.Recommendation)
	return append(rec, avoid...)
}

func (s *WizardScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	s.notice = ""

	switch {
	case key.Matches(msg, s.keys.Restart):
		// Any response still in flight now belongs to a dead session.
		_ = s.dispatch(wiz.Restart{SessionID: wiz.NewSessionID()})
		s.reset(s.state)
		return nil

	case key.Matches(msg, s.keys.Back):
		_ = s.dispatch(wiz.Retreat{})
		return nil
	}

	switch s.state.Kind() {
	case wiz.StepSkinType:
		return s.handleSkinTypeKey(msg)
	case wiz.StepConcerns:
		return s.handleConcernsKey(msg)
	case wiz.StepHistory:
		return s.handleHistoryKey(msg)
	case wiz.StepIngredients:
		if key.Matches(msg, s.keys.Next) {
			return s.requestProducts()
		}
		return s.handleVerdictKey(msg)
	case wiz.StepResults:
		if key.Matches(msg, s.keys.Next) && s.state.Recommendation == nil {
			return s.requestRecommendations()
		}
		return s.handleVerdictKey(msg)
	}
	return nil
}

// handleVerdictKey moves through the ingredient list and opens the detail
// screen for the highlighted one.
func (s *WizardScreen) handleVerdictKey(msg tea.KeyPressMsg) tea.Cmd {
	items := s.verdicts()
	if len(items) == 0 {
		return nil
	}
	s.ingredientCursor = min(s.ingredientCursor, len(items)-1)

	switch {
	case key.Matches(msg, s.keys.Up):
		if s.ingredientCursor > 0 {
			s.ingredientCursor--
		}
	case key.Matches(msg, s.keys.Down):
		if s.ingredientCursor < len(items)-1 {
			s.ingredientCursor++
		}
	case key.Matches(msg, s.keys.Details):
		detail := ingredient.New(items[s.ingredientCursor], s.state.Products)
		return func() tea.Msg { return router.PushScreenMsg{Screen: detail} }
	}
	return nil
}

func (s *WizardScreen) handleSkinTypeKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Up), key.Matches(msg, s.keys.Down):
		s.skinTypes, _ = s.skinTypes.Update(msg)

	case key.Matches(msg, s.keys.Toggle):
		s.chooseSkinType()

	case key.Matches(msg, s.keys.Next):
		s.chooseSkinType()
		s.advance()
	}
	return nil
}

func (s *WizardScreen) chooseSkinType() {
	opts := catalog.SkinTypes()
	if s.skinTypes.Cursor >= len(opts) {
		return
	}
	if err := s.dispatch(wiz.SetSkinType{Type: opts[s.skinTypes.Cursor].Type}); err == nil {
		s.skinTypes.Chosen = s.skinTypes.Cursor
	}
}

func (s *WizardScreen) handleConcernsKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Up), key.Matches(msg, s.keys.Down):
		s.concerns, _ = s.concerns.Update(msg)

	case key.Matches(msg, s.keys.Toggle):
		if item, ok := s.concerns.Current(); ok {
			_ = s.dispatch(wiz.ToggleConcern{ID: item.ID})
		}

	case key.Matches(msg, s.keys.Next):
		if s.triggersRecommend() {
			return s.requestRecommendations()
		}
		s.advance()
	}
	return nil
}

func (s *WizardScreen) handleHistoryKey(msg tea.KeyPressMsg) tea.Cmd {
	questions := catalog.HistoryQuestions()

	switch {
	case key.Matches(msg, s.keys.Up):
		if s.historyCursor > 0 {
			s.historyCursor--
		}

	case key.Matches(msg, s.keys.Down):
		if s.historyCursor < len(questions)-1 {
			s.historyCursor++
		}

	case key.Matches(msg, s.keys.Yes), key.Matches(msg, s.keys.No):
		q := questions[s.historyCursor]
		if err := s.dispatch(wiz.SetHistoryAnswer{ID: q.ID, Yes: key.Matches(msg, s.keys.Yes)}); err == nil &&
			s.historyCursor < len(questions)-1 {
			s.historyCursor++
		}

	case key.Matches(msg, s.keys.Next):
		return s.requestRecommendations()
	}
	return nil
}

// triggersRecommend reports whether Enter on the current step issues the
// prediction call rather than a plain advance.
func (s *WizardScreen) triggersRecommend() bool {
	next := s.state.Flow().At(s.state.Step + 1)
	return next == wiz.StepResults || next == wiz.StepIngredients
}

func (s *WizardScreen) advance() {
	if err := s.dispatch(wiz.Advance{}); err != nil {
		s.notice = incompleteHint(s.state.Kind(), err)
	}
}

func incompleteHint(kind wiz.StepKind, err error) string {
	if !errors.Is(err, wiz.ErrStepIncomplete) {
		return ""
	}
	switch kind {
	case wiz.StepSkinType:
		return "Choose a skin type to continue."
	case wiz.StepConcerns:
		return "Select at least one concern to continue."
	default:
		return "Complete this step to continue."
	}
}

func (s *WizardScreen) requestRecommendations() tea.Cmd {
	if err := s.dispatch(wiz.RecommendationsRequested{}); err != nil {
		// A second press while a call is running is expected; ignore it.
		if !errors.Is(err, wiz.ErrRequestInFlight) {
			s.notice = incompleteHint(wiz.StepConcerns, err)
		}
		return nil
	}

	svc := s.service
	sessionID := s.state.SessionID
	concerns := s.state.Selection.Selected()
	fetch := func() tea.Msg {
		res, err := svc.Recommend(context.Background(), concerns)
		return recommendationsMsg{SessionID: sessionID, Result: res, Err: err}
	}
	return tea.Batch(fetch, s.spinner.Tick)
}

func (s *WizardScreen) requestProducts() tea.Cmd {
	if err := s.dispatch(wiz.ProductsRequested{}); err != nil {
		return nil
	}

	svc := s.service
	sessionID := s.state.SessionID
	ingredients := s.state.Recommendation.RecommendedNames()
	fetch := func() tea.Msg {
		res, err := svc.Products(context.Background(), ingredients)
		return productsMsg{SessionID: sessionID, Result: res, Err: err}
	}
	return tea.Batch(fetch, s.spinner.Tick)
}

func (s *WizardScreen) handleRecommendations(msg recommendationsMsg) tea.Cmd {
	var a wiz.Action = wiz.RecommendationsLoaded{SessionID: msg.SessionID, Result: msg.Result}
	if msg.Err != nil {
		a = wiz.RecommendationsFailed{SessionID: msg.SessionID, Err: msg.Err}
	}
	s.apply(a, msg.SessionID)
	if msg.Err == nil && msg.SessionID == s.state.SessionID {
		s.ingredientCursor = 0
	}
	return nil
}

func (s *WizardScreen) handleProducts(msg productsMsg) tea.Cmd {
	var a wiz.Action = wiz.ProductsLoaded{SessionID: msg.SessionID, Result: msg.Result}
	if msg.Err != nil {
		a = wiz.ProductsFailed{SessionID: msg.SessionID, Err: msg.Err}
	}
	s.apply(a, msg.SessionID)
	return nil
}

func (s *WizardScreen) apply(a wiz.Action, sessionID string) {
	if err := s.dispatch(a); err != nil {
		if errors.Is(err, wiz.ErrStaleResponse) {
			s.logger.Debug("dropped stale response",
				slog.String("session_id", sessionID),
				slog.String("current_session_id", s.state.SessionID))
			return
		}
		s.logger.Warn("wizard action rejected", slog.String("error", err.Error()))
	}
}
