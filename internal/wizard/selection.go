package wizard

import (
	"github.com/abhisek/skinfinder/internal/catalog"
)

// Answer is the state of one skin-history question.
type Answer int8

const (
	Unanswered Answer = iota
	AnswerYes
	AnswerNo
)

// Selection holds the user's questionnaire input. The concern and history
// key sets are fixed when the Selection is created.
type Selection struct {
	flavor   catalog.Flavor
	concerns map[string]bool
	history  map[string]Answer
	skinType catalog.SkinType
}

// NewSelection creates an empty Selection over the flavor's vocabularies.
func NewSelection(flavor catalog.Flavor) Selection {
	s := Selection{
		flavor:   flavor,
		concerns: make(map[string]bool),
		history:  make(map[string]Answer),
	}
	for _, id := range catalog.ConcernIDs(flavor) {
		s.concerns[id] = false
	}
	for _, q := range catalog.HistoryQuestions() {
		s.history[q.ID] = Unanswered
	}
	return s
}

// Clone returns a deep copy.
func (s Selection) Clone() Selection {
	out := Selection{
		flavor:   s.flavor,
		skinType: s.skinType,
		concerns: make(map[string]bool, len(s.concerns)),
		history:  make(map[string]Answer, len(s.history)),
	}
	for k, v := range s.concerns {
		out.concerns[k] = v
	}
	for k, v := range s.history {
		out.history[k] = v
	}
	return out
}

// ToggleConcern flips id's membership. Unknown ids are left alone and
// reported with false.
func (s *Selection) ToggleConcern(id string) bool {
	cur, ok := s.concerns[id]
	if !ok {
		return false
	}
	s.concerns[id] = !cur
	return true
}

// IsSelected reports whether concern id is selected.
func (s Selection) IsSelected(id string) bool {
	return s.concerns[id]
}

// Selected returns the selected concern ids in vocabulary order.
func (s Selection) Selected() []string {
	var out []string
	for _, id := range catalog.ConcernIDs(s.flavor) {
		if s.concerns[id] {
			out = append(out, id)
		}
	}
	return out
}

// HasConcerns reports whether at least one concern is selected.
func (s Selection) HasConcerns() bool {
	for _, v := range s.concerns {
		if v {
			return true
		}
	}
	return false
}

// SetSkinType records the skin type, replacing any previous choice.
func (s *Selection) SetSkinType(t catalog.SkinType) error {
	if !t.Valid() {
		return ErrInvalidSkinType
	}
	s.skinType = t
	return nil
}

// SkinType returns the chosen skin type, or catalog.SkinTypeUnset.
func (s Selection) SkinType() catalog.SkinType {
	return s.skinType
}

// SetHistoryAnswer records a yes/no answer for a known question.
func (s *Selection) SetHistoryAnswer(id string, yes bool) error {
	if _, ok := s.history[id]; !ok {
		return ErrUnknownQuestion
	}
	if yes {
		s.history[id] = AnswerYes
	} else {
		s.history[id] = AnswerNo
	}
	return nil
}

// HistoryAnswer returns the answer for question id.
func (s Selection) HistoryAnswer(id string) Answer {
	return s.history[id]
}

// AnsweredCount returns how many history questions have an answer.
func (s Selection) AnsweredCount() int {
	n := 0
	for _, a := range s.history {
		if a != Unanswered {
			n++
		}
	}
	return n
}

// Reset clears every answer, keeping the flavor's vocabularies.
func (s *Selection) Reset() {
	*s = NewSelection(s.flavor)
}
