package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wfy/internal/application/game"
	"github.com/younwookim/wfy/internal/application/scene/menu"
)

var errFrameLimit = errors.New("headless run hit the frame limit")

// runHeadless drives g without a window until the scene terminates,
// ctx is cancelled or maxFrames updates have run.
func runHeadless(ctx context.Context, g *game.Game, maxFrames int) error {
	for g.Frames() < maxFrames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.Update(); err != nil {
			if errors.Is(err, ebiten.Termination) {
				return nil
			}
			return err
		}
	}
	return fmt.Errorf("%w (%d)", errFrameLimit, maxFrames)
}

// headlessResult is the final state of a headless run
type headlessResult struct {
	Frames   int
	Current  string
	Previous string
	Label    string
}

func summarize(m *menu.Menu) headlessResult {
	r := headlessResult{
		Frames:  m.Frame(),
		Current: m.Machine().Current().String(),
	}
	if prev, ok := m.Machine().Previous(); ok {
		r.Previous = prev.String()
	}
	if label, err := m.ButtonLabel(); err == nil {
		r.Label = label
	}
	return r
}

func (r headlessResult) String() string {
	prev := r.Previous
	if prev == "" {
		prev = "-"
	}
	return fmt.Sprintf("frames=%d current=%s previous=%s label=%q", r.Frames, r.Current, prev, r.Label)
}
