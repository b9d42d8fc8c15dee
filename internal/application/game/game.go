// Package game provides the main loop manager that handles Scene transitions.
package game

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wfy/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	ctx     context.Context
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	frames  int
	closed  bool
	logger  *slog.Logger
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
// Once ctx is cancelled, Update ends the loop with ebiten.Termination.
func New(ctx context.Context, initialScene scene.Scene, screenW, screenH int, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{
		ctx:     ctx,
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 TPS
		logger:  logger,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if err := g.ctx.Err(); err != nil {
		g.logger.Info("stopping game loop", "frame", g.frames, "reason", context.Cause(g.ctx))
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	g.frames++
	if err != nil {
		if !errors.Is(err, ebiten.Termination) {
			g.logger.Error("scene update failed", "frame", g.frames, "err", err)
		}
		return err
	}

	// Handle scene transition
	if next != nil {
		g.logger.Debug("scene transition", "frame", g.frames)
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time passed to scene updates.
// Call it when the tick rate differs from 60 TPS.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Frames returns the number of updates run
func (g *Game) Frames() int {
	return g.frames
}

// Close exits the current scene. Calling it again is a no-op.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}
