package state

import (
	"errors"
	"fmt"
)

// ErrAlreadyPending is returned when a transition is requested while another
// one is still waiting to be applied.
var ErrAlreadyPending = errors.New("state transition already pending")

// TransitionFunc is called after a pending transition has been applied
type TransitionFunc func(from, to AppState)

// Machine tracks the current, previous and pending AppState.
//
// It has a single writer per frame: systems request a transition, and the
// frame schedule applies it once at the start of the next frame.
type Machine struct {
	current AppState

	previous    AppState
	hasPrevious bool

	pending    AppState
	hasPending bool

	listeners []TransitionFunc
}

// NewMachine creates a state machine starting at initial.
// It panics with ErrUnknownState when initial is not a valid AppState,
// since such a machine could never request a transition.
func NewMachine(initial AppState) *Machine {
	if !initial.Valid() {
		panic(fmt.Errorf("new machine: %w: %d", ErrUnknownState, int(initial)))
	}
	return &Machine{current: initial}
}

// RequestTransition queues next to become the current state on the next
// ApplyPending call. Only one transition can be queued at a time.
func (m *Machine) RequestTransition(next AppState) error {
	if !next.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownState, int(next))
	}
	if m.hasPending {
		return fmt.Errorf("%w: %s queued, %s requested", ErrAlreadyPending, m.pending, next)
	}

	m.pending = next
	m.hasPending = true
	return nil
}

// ApplyPending makes the queued transition current.
// Returns false when nothing was queued.
func (m *Machine) ApplyPending() bool {
	if !m.hasPending {
		return false
	}

	from := m.current
	m.previous = from
	m.hasPrevious = true
	m.current = m.pending
	m.hasPending = false

	for _, fn := range m.listeners {
		fn(from, m.current)
	}
	return true
}

// Current returns the active state
func (m *Machine) Current() AppState {
	return m.current
}

// Previous returns the state that was active before the last applied
// transition. It stays set until the next transition overwrites it.
func (m *Machine) Previous() (AppState, bool) {
	return m.previous, m.hasPrevious
}

// Next returns the queued state, if any
func (m *Machine) Next() (AppState, bool) {
	return m.pending, m.hasPending
}

// OnTransition registers fn to be called after every applied transition
func (m *Machine) OnTransition(fn TransitionFunc) {
	m.listeners = append(m.listeners, fn)
}
