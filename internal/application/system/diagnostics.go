package system

import (
	"log/slog"

	"github.com/younwookim/wfy/internal/application/state"
)

// Describe returns a human readable line for a state
func Describe(s state.AppState) string {
	switch s {
	case state.MainMenu:
		return "In the main menu!"
	case state.InGame:
		return "Playing the game!"
	case state.Credits:
		return "Rolling the credits!"
	default:
		return "Unknown state"
	}
}

// DiagnosticsSystem logs current, previous and next state every frame
type DiagnosticsSystem struct {
	logger *slog.Logger
	last   state.AppState
	seen   bool
}

// NewDiagnosticsSystem creates a diagnostics system
func NewDiagnosticsSystem(logger *slog.Logger) *DiagnosticsSystem {
	return &DiagnosticsSystem{logger: logger}
}

// Update logs the state machine. Every frame logs at debug level; a change
// of the current state is also logged at info level.
func (s *DiagnosticsSystem) Update(frame int, m *state.Machine) {
	current := m.Current()
	attrs := []any{"frame", frame, "current", current}
	if prev, ok := m.Previous(); ok {
		attrs = append(attrs, "previous", prev)
	}
	if next, ok := m.Next(); ok {
		attrs = append(attrs, "next", next)
	}

	s.logger.Debug(Describe(current), attrs...)

	if s.seen && current != s.last {
		s.logger.Info("app state changed", "from", s.last, "to", current)
	}
	s.last = current
	s.seen = true
}
