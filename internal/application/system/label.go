package system

import (
	"errors"

	"github.com/yohamta/donburi"

	"github.com/younwookim/wfy/internal/application/state"
	"github.com/younwookim/wfy/internal/ecs"
)

// LabelFor returns the default button label for an app state
func LabelFor(s state.AppState) string {
	switch s {
	case state.MainMenu:
		return "Menu"
	case state.InGame:
		return "InGame"
	case state.Credits:
		return "Credits"
	default:
		return ""
	}
}

// LabelSystem writes the label of the current state into every button's text child
type LabelSystem struct {
	labels map[state.AppState]string
}

// NewLabelSystem creates a label system. States missing from labels use LabelFor.
func NewLabelSystem(labels map[state.AppState]string) *LabelSystem {
	table := make(map[state.AppState]string, len(state.All))
	for _, s := range state.All {
		table[s] = LabelFor(s)
	}
	for s, text := range labels {
		table[s] = text
	}
	return &LabelSystem{labels: table}
}

// Text returns the label for s
func (s *LabelSystem) Text(st state.AppState) string {
	return s.labels[st]
}

// Update rewrites button labels from current.
// Buttons without a text child yield ecs.ErrMissingChild.
func (s *LabelSystem) Update(w *ecs.World, current state.AppState) error {
	var errs []error
	value := s.Text(current)

	w.EachButton(func(entry *donburi.Entry) {
		txt, err := w.FirstChildText(entry)
		if err != nil {
			errs = append(errs, err)
			return
		}
		txt.Value = value
	})

	return errors.Join(errs...)
}
