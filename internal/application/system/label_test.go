package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/wfy/internal/application/state"
	"github.com/younwookim/wfy/internal/ecs"
)

func TestLabelFor(t *testing.T) {
	tests := []struct {
		state    state.AppState
		expected string
	}{
		{state.MainMenu, "Menu"},
		{state.InGame, "InGame"},
		{state.Credits, "Credits"},
		{state.AppState(99), ""},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, LabelFor(tt.state))
		})
	}
}

func TestNewLabelSystem_Overrides(t *testing.T) {
	sys := NewLabelSystem(map[state.AppState]string{state.Credits: "Thanks"})

	assert.Equal(t, "Menu", sys.Text(state.MainMenu))
	assert.Equal(t, "InGame", sys.Text(state.InGame))
	assert.Equal(t, "Thanks", sys.Text(state.Credits))
}

func TestLabelSystem_Update(t *testing.T) {
	w := ecs.NewWorld()
	button := w.SpawnButton(testRect, 1)
	_, err := w.SpawnText(button, ecs.Text{Value: "Button"})
	require.NoError(t, err)
	sys := NewLabelSystem(nil)

	for _, s := range state.All {
		require.NoError(t, sys.Update(w, s))

		txt, err := w.FirstChildText(w.Entry(button))
		require.NoError(t, err)
		assert.Equal(t, LabelFor(s), txt.Value)
	}
}

func TestLabelSystem_MissingChild(t *testing.T) {
	w := ecs.NewWorld()
	w.SpawnButton(testRect, 1)
	labelled := w.SpawnButton(ecs.Rect{X: 300, W: 10, H: 10}, 1)
	_, err := w.SpawnText(labelled, ecs.Text{Value: "Button"})
	require.NoError(t, err)
	sys := NewLabelSystem(nil)

	err = sys.Update(w, state.InGame)
	assert.ErrorIs(t, err, ecs.ErrMissingChild)

	txt, err := w.FirstChildText(w.Entry(labelled))
	require.NoError(t, err)
	assert.Equal(t, "InGame", txt.Value, "other buttons are still updated")
}
