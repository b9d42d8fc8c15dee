package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMachine(t *testing.T) {
	m := NewMachine(MainMenu)

	assert.Equal(t, MainMenu, m.Current())
	_, hasPrev := m.Previous()
	assert.False(t, hasPrev)
	_, hasNext := m.Next()
	assert.False(t, hasNext)
}

func TestNewMachine_InvalidInitialState(t *testing.T) {
	for _, initial := range []AppState{AppState(7), AppState(-1)} {
		t.Run(initial.String(), func(t *testing.T) {
			var recovered any
			func() {
				defer func() { recovered = recover() }()
				NewMachine(initial)
			}()

			err, ok := recovered.(error)
			require.True(t, ok, "NewMachine should panic with an error")
			assert.ErrorIs(t, err, ErrUnknownState)
		})
	}
}

func TestMachine_RequestTransition(t *testing.T) {
	m := NewMachine(MainMenu)

	require.NoError(t, m.RequestTransition(InGame))

	next, ok := m.Next()
	assert.True(t, ok)
	assert.Equal(t, InGame, next)
	assert.Equal(t, MainMenu, m.Current(), "request alone does not change current")
}

func TestMachine_RequestTransition_AlreadyPending(t *testing.T) {
	m := NewMachine(MainMenu)
	require.NoError(t, m.RequestTransition(InGame))

	err := m.RequestTransition(Credits)
	assert.ErrorIs(t, err, ErrAlreadyPending)

	next, _ := m.Next()
	assert.Equal(t, InGame, next, "first request wins")
}

func TestMachine_RequestTransition_UnknownState(t *testing.T) {
	m := NewMachine(MainMenu)

	err := m.RequestTransition(AppState(42))
	assert.ErrorIs(t, err, ErrUnknownState)

	_, hasNext := m.Next()
	assert.False(t, hasNext)
}

func TestMachine_ApplyPending(t *testing.T) {
	t.Run("nothing pending", func(t *testing.T) {
		m := NewMachine(Credits)

		assert.False(t, m.ApplyPending())
		assert.Equal(t, Credits, m.Current())
	})

	t.Run("previous equals prior current", func(t *testing.T) {
		for _, from := range All {
			m := NewMachine(from)
			require.NoError(t, m.RequestTransition(from.Next()))

			assert.True(t, m.ApplyPending())

			prev, ok := m.Previous()
			assert.True(t, ok)
			assert.Equal(t, from, prev)
			assert.Equal(t, from.Next(), m.Current())
			_, hasNext := m.Next()
			assert.False(t, hasNext, "pending is cleared")
		}
	})

	t.Run("request allowed again after apply", func(t *testing.T) {
		m := NewMachine(MainMenu)
		require.NoError(t, m.RequestTransition(InGame))
		m.ApplyPending()

		assert.NoError(t, m.RequestTransition(Credits))
	})
}

func TestMachine_ThreeClickScenario(t *testing.T) {
	m := NewMachine(MainMenu)

	steps := []struct {
		current  AppState
		previous AppState
	}{
		{InGame, MainMenu},
		{Credits, InGame},
		{MainMenu, Credits},
	}

	for _, step := range steps {
		require.NoError(t, m.RequestTransition(m.Current().Next()))
		m.ApplyPending()

		assert.Equal(t, step.current, m.Current())
		prev, ok := m.Previous()
		require.True(t, ok)
		assert.Equal(t, step.previous, prev)
	}
}

func TestMachine_PreviousPersistsWithoutTransition(t *testing.T) {
	m := NewMachine(MainMenu)
	require.NoError(t, m.RequestTransition(InGame))
	m.ApplyPending()

	for i := 0; i < 10; i++ {
		m.ApplyPending()
	}

	prev, ok := m.Previous()
	assert.True(t, ok)
	assert.Equal(t, MainMenu, prev)
}

func TestMachine_OnTransition(t *testing.T) {
	m := NewMachine(MainMenu)

	type call struct{ from, to AppState }
	var calls []call
	m.OnTransition(func(from, to AppState) {
		calls = append(calls, call{from, to})
	})

	m.ApplyPending()
	assert.Empty(t, calls, "no callback without a transition")

	require.NoError(t, m.RequestTransition(InGame))
	m.ApplyPending()

	require.Len(t, calls, 1)
	assert.Equal(t, call{MainMenu, InGame}, calls[0])
}
