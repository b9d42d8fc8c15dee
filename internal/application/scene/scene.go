// Package scene defines the Scene interface for application screens.
//
// Each screen implements the Scene interface to handle its own update logic
// and rendering. The button screen lives in scene/menu.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents an application screen
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update runs one frame.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the loop; ebiten.Termination ends it cleanly.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	// Spawn the scene's entities here.
	OnEnter()

	// OnExit is called when leaving this scene or closing the game.
	// Use this for flushing recordings or releasing resources.
	OnExit()
}
