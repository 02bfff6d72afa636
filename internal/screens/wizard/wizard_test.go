package wizard

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/skinfinder/internal/catalog"
	"github.com/abhisek/skinfinder/internal/logging"
	"github.com/abhisek/skinfinder/internal/recommend"
	"github.com/abhisek/skinfinder/internal/router"
	"github.com/abhisek/skinfinder/internal/screens/ingredient"
	wiz "github.com/abhisek/skinfinder/internal/wizard"
)

var (
	enterKey = tea.KeyPressMsg{Code: tea.KeyEnter}
	spaceKey = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	downKey  = tea.KeyPressMsg{Code: tea.KeyDown}
	escKey   = tea.KeyPressMsg{Code: tea.KeyEscape}
	yesKey   = tea.KeyPressMsg{Code: 'y', Text: "y"}
	noKey    = tea.KeyPressMsg{Code: 'n', Text: "n"}
	restart  = tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
	infoKey  = tea.KeyPressMsg{Code: 'i', Text: "i"}
)

func newScreen(flavor catalog.Flavor, svc recommend.Service) *WizardScreen {
	return New(svc, flavor, logging.Discard())
}

// press sends keys in order and returns the last command.
func press(s *WizardScreen, keys ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = s.Update(k)
	}
	return cmd
}

// collect runs cmd and returns the service messages it produces, skipping
// spinner ticks.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	case recommendationsMsg, productsMsg:
		return []tea.Msg{msg}
	default:
		return nil
	}
}

// deliver runs cmd and feeds its service messages back into s.
func deliver(s *WizardScreen, cmd tea.Cmd) {
	for _, msg := range collect(cmd) {
		s.Update(msg)
	}
}

func sampleRecommendation() *recommend.Recommendation {
	return &recommend.Recommendation{Ingredients: []recommend.Ingredient{
		{Name: "hyaluronic", Recommended: true},
		{Name: "aha_bha", Recommended: false},
	}}
}

func TestClassicFlow_HappyPath(t *testing.T) {
	svc := recommend.NewMockService(recommend.MockRecommendation{Result: sampleRecommendation()})
	s := newScreen(catalog.FlavorClassic, svc)

	assert.Equal(t, wiz.StepSkinType, s.State().Kind())
	assert.Equal(t, "Skin Type", s.Title())

	press(s, enterKey)
	require.Equal(t, wiz.StepConcerns, s.State().Kind())
	assert.Equal(t, catalog.SkinTypeOily, s.State().Selection.SkinType())

	// Enter without a concern is blocked with a hint.
	press(s, enterKey)
	assert.Equal(t, wiz.StepConcerns, s.State().Kind())
	assert.Contains(t, s.View(120, 40), "Select at least one concern")

	press(s, spaceKey, enterKey)
	require.Equal(t, wiz.StepHistory, s.State().Kind())
	assert.Equal(t, []string{"anti-aging"}, s.State().Selection.Selected())

	press(s, yesKey, noKey)
	assert.Equal(t, wiz.AnswerYes, s.State().Selection.HistoryAnswer("acne"))
	assert.Equal(t, wiz.AnswerNo, s.State().Selection.HistoryAnswer("dryness"))
	assert.Contains(t, s.View(120, 40), "2/6 answered")

	cmd := press(s, enterKey)
	require.NotNil(t, cmd)
	assert.True(t, s.State().RecommendPending)

	deliver(s, cmd)

	st := s.State()
	assert.Equal(t, wiz.StepResults, st.Kind())
	assert.False(t, st.RecommendPending)
	require.NotNil(t, st.Recommendation)
	assert.Equal(t, [][]string{{"anti-aging"}}, svc.RecommendCalls)

	view := s.View(120, 40)
	assert.Contains(t, view, "Hyaluronic")
	assert.Contains(t, view, "Aha Bha")
	assert.Contains(t, view, "Avoid")
}

func TestClassicFlow_FailureStaysOnStep(t *testing.T) {
	svc := recommend.NewMockService(recommend.MockRecommendation{
		Err: &recommend.NetworkError{Op: "predict", Err: errors.New("dial tcp: refused")},
	})
	s := newScreen(catalog.FlavorClassic, svc)

	press(s, enterKey, spaceKey, enterKey)
	deliver(s, press(s, enterKey))

	st := s.State()
	assert.Equal(t, wiz.StepHistory, st.Kind())
	assert.Nil(t, st.Recommendation)
	assert.NotEmpty(t, st.Err)
	assert.Contains(t, s.View(120, 40), "Could not reach the recommendation service")

	// The user can retry.
	svc.AddRecommendation(recommend.MockRecommendation{Result: sampleRecommendation()})
	deliver(s, press(s, enterKey))
	assert.Equal(t, wiz.StepResults, s.State().Kind())
	assert.Empty(t, s.State().Err)
}

func TestDuplicateRequestWhilePending(t *testing.T) {
	svc := recommend.NewMockService(recommend.MockRecommendation{Result: sampleRecommendation()})
	s := newScreen(catalog.FlavorCatalog, svc)

	press(s, spaceKey)
	first := press(s, enterKey)
	require.NotNil(t, first)

	second := press(s, enterKey)
	assert.Nil(t, second, "a second press while pending must not issue a call")

	deliver(s, first)
	assert.Equal(t, 1, svc.CallCount())
	assert.Equal(t, wiz.StepIngredients, s.State().Kind())
}

func TestRestartDropsInFlightResponse(t *testing.T) {
	svc := recommend.NewMockService(recommend.MockRecommendation{Result: sampleRecommendation()})
	s := newScreen(catalog.FlavorCatalog, svc)

	press(s, spaceKey)
	cmd := press(s, enterKey)
	oldSession := s.State().SessionID

	press(s, restart)
	assert.NotEqual(t, oldSession, s.State().SessionID)
	assert.False(t, s.State().Selection.HasConcerns())

	deliver(s, cmd)
	st := s.State()
	assert.Nil(t, st.Recommendation, "stale response must be ignored")
	assert.Equal(t, 1, st.Step)
}

func TestCatalogFlow_Products(t *testing.T) {
	svc := recommend.NewMockService(recommend.MockRecommendation{Result: sampleRecommendation()})
	svc.AddProducts(recommend.MockProducts{Result: &recommend.ProductList{Products: []recommend.Product{
		{Name: "Plain Toner", Brand: "Basic"},
		{Name: "Hydra Serum", Brand: "Dewlab", Flags: []recommend.Flag{{Ingredient: "hyaluronic", Present: true}}},
	}}})
	s := newScreen(catalog.FlavorCatalog, svc)

	assert.Len(t, s.State().Flow(), 3)

	press(s, downKey, spaceKey)
	assert.Equal(t, []string{"anti_aging"}, s.State().Selection.Selected())

	deliver(s, press(s, enterKey))
	require.Equal(t, wiz.StepIngredients, s.State().Kind())

	deliver(s, press(s, enterKey))
	require.Equal(t, wiz.StepProducts, s.State().Kind())
	assert.Equal(t, [][]string{{"hyaluronic"}}, svc.ProductCalls)

	view := s.View(120, 50)
	assert.Contains(t, view, "Dewlab Hydra Serum")
	assert.Contains(t, view, "100%")
	// Best match is listed first.
	assert.Less(t, strings.Index(view, "Dewlab"), strings.Index(view, "Basic Plain Toner"))
}

func TestEscRetreatsWithoutLosingData(t *testing.T) {
	s := newScreen(catalog.FlavorClassic, recommend.NewDemoService(catalog.FlavorClassic))

	press(s, downKey, enterKey, spaceKey, enterKey)
	require.Equal(t, wiz.StepHistory, s.State().Kind())

	press(s, escKey, escKey)
	assert.Equal(t, wiz.StepSkinType, s.State().Kind())
	assert.Equal(t, catalog.SkinTypeDry, s.State().Selection.SkinType())

	// Esc on the first step is a no-op.
	press(s, escKey)
	assert.Equal(t, 1, s.State().Step)

	press(s, enterKey, enterKey)
	assert.Equal(t, wiz.StepHistory, s.State().Kind())
	assert.Equal(t, []string{"anti-aging"}, s.State().Selection.Selected())
}

func TestKeyHintsAndStatus(t *testing.T) {
	s := newScreen(catalog.FlavorClassic, recommend.NewDemoService(catalog.FlavorClassic))
	assert.Equal(t, "● ○ ○ ○  1/4", s.Status())

	var descs []string
	for _, h := range s.KeyHints() {
		descs = append(descs, h.Description)
	}
	assert.Contains(t, descs, "Choose")
	assert.NotContains(t, descs, "Back")
	assert.True(t, s.HandlesBack())
}

func TestResults_DetailsPushesIngredientScreen(t *testing.T) {
	svc := recommend.NewMockService(recommend.MockRecommendation{Result: sampleRecommendation()})
	s := newScreen(catalog.FlavorClassic, svc)

	press(s, enterKey, spaceKey, enterKey)
	deliver(s, press(s, enterKey))
	require.Equal(t, wiz.StepResults, s.State().Kind())

	// Moving past the end stays on the last verdict.
	press(s, downKey, downKey, downKey)
	cmd := press(s, infoKey)
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg")
	detail, ok := msg.Screen.(*ingredient.DetailScreen)
	require.True(t, ok, "expected ingredient detail screen, got %T", msg.Screen)
	assert.Equal(t, "Aha Bha", detail.Title())
	assert.Contains(t, detail.View(100, 30), "Best avoided")
}

func TestIngredients_DetailsListsLoadedProducts(t *testing.T) {
	svc := recommend.NewMockService(recommend.MockRecommendation{Result: sampleRecommendation()})
	s := newScreen(catalog.FlavorCatalog, svc)

	press(s, spaceKey)
	deliver(s, press(s, enterKey))
	require.Equal(t, wiz.StepIngredients, s.State().Kind())

	var descs []string
	for _, h := range s.KeyHints() {
		descs = append(descs, h.Description)
	}
	assert.Contains(t, descs, "Details")

	msg := press(s, infoKey)()
	push, ok := msg.(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Hyaluronic", push.Screen.Title())
}

func TestConcernChecklistFollowsSelection(t *testing.T) {
	s := newScreen(catalog.FlavorCatalog, recommend.NewDemoService(catalog.FlavorCatalog))

	press(s, spaceKey)
	assert.True(t, s.concerns.Items[0].Checked, "toggle should update the checklist without a render")

	before := s.concerns.Items[0].Checked
	_ = s.View(120, 40)
	assert.Equal(t, before, s.concerns.Items[0].Checked)

	press(s, restart)
	assert.False(t, s.concerns.Items[0].Checked)
}

func TestCatalog_NewRecommendationDropsPendingProducts(t *testing.T) {
	svc := recommend.NewMockService(
		recommend.MockRecommendation{Result: sampleRecommendation()},
		recommend.MockRecommendation{Result: &recommend.Recommendation{Ingredients: []recommend.Ingredient{
			{Name: "retinol", Recommended: true},
		}}},
	)
	svc.AddProducts(recommend.MockProducts{Result: &recommend.ProductList{Products: []recommend.Product{
		{Name: "Old Serum", Flags: []recommend.Flag{{Ingredient: "hyaluronic", Present: true}}},
	}}})
	s := newScreen(catalog.FlavorCatalog, svc)

	press(s, spaceKey)
	deliver(s, press(s, enterKey))
	productsCmd := press(s, enterKey)
	require.True(t, s.State().ProductsPending)

	press(s, escKey)
	deliver(s, press(s, enterKey))
	require.Equal(t, wiz.StepIngredients, s.State().Kind())
	assert.Equal(t, []string{"retinol"}, s.State().Recommendation.RecommendedNames())

	deliver(s, productsCmd)
	st := s.State()
	assert.Equal(t, wiz.StepIngredients, st.Kind())
	assert.Nil(t, st.Products, "products for the replaced recommendation must be dropped")
}
