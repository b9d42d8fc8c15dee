// Package state holds the application-level state that drives the UI content.
package state

import (
	"errors"
	"fmt"
)

// ErrUnknownState is returned for values outside the AppState enumeration.
var ErrUnknownState = errors.New("unknown app state")

// AppState represents the current screen of the application
type AppState int

const (
	MainMenu AppState = iota
	InGame
	Credits
)

// All lists every AppState in cycle order
var All = []AppState{MainMenu, InGame, Credits}

// String returns the string representation of the app state
func (s AppState) String() string {
	switch s {
	case MainMenu:
		return "MainMenu"
	case InGame:
		return "InGame"
	case Credits:
		return "Credits"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the declared states
func (s AppState) Valid() bool {
	return s >= MainMenu && s <= Credits
}

// Next returns the state a click leads to.
// The order is cyclic: MainMenu -> InGame -> Credits -> MainMenu.
// Unknown states map to themselves.
func (s AppState) Next() AppState {
	switch s {
	case MainMenu:
		return InGame
	case InGame:
		return Credits
	case Credits:
		return MainMenu
	default:
		return s
	}
}

// Parse converts a state name (as returned by String) back into an AppState
func Parse(name string) (AppState, error) {
	for _, s := range All {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownState, name)
}
