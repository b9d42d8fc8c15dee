package system

import (
	"github.com/yohamta/donburi"

	"github.com/younwookim/wfy/internal/application/state"
)

// TransitionIntent is a state change a button asks for on click
type TransitionIntent struct {
	Button donburi.Entity
	From   state.AppState
	To     state.AppState
}

// Apply requests the transition on m
func (i TransitionIntent) Apply(m *state.Machine) error {
	return m.RequestTransition(i.To)
}
