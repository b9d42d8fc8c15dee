package system

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/yohamta/donburi"

	"github.com/younwookim/wfy/internal/application/state"
	"github.com/younwookim/wfy/internal/ecs"
	"github.com/younwookim/wfy/internal/infrastructure/assets"
	"github.com/younwookim/wfy/internal/infrastructure/metrics"
)

// ButtonVisuals holds the three material handles a button switches between
type ButtonVisuals struct {
	Normal  assets.Handle
	Hovered assets.Handle
	Pressed assets.Handle
}

// NewButtonVisuals registers the three button colours in the material store
func NewButtonVisuals(materials *assets.Materials, normal, hovered, pressed color.Color) ButtonVisuals {
	return ButtonVisuals{
		Normal:  materials.Add(normal),
		Hovered: materials.Add(hovered),
		Pressed: materials.Add(pressed),
	}
}

// For returns the handle to show for an interaction status
func (v ButtonVisuals) For(status ecs.Interaction) assets.Handle {
	switch status {
	case ecs.InteractionClicked:
		return v.Pressed
	case ecs.InteractionHovered:
		return v.Hovered
	default:
		return v.Normal
	}
}

// ResolveButton returns the material for status and, on Clicked, the
// transition to request from current.
func ResolveButton(status ecs.Interaction, current state.AppState, visuals ButtonVisuals) (assets.Handle, *TransitionIntent) {
	handle := visuals.For(status)
	if status != ecs.InteractionClicked {
		return handle, nil
	}
	return handle, &TransitionIntent{From: current, To: current.Next()}
}

// ButtonSystem reacts to interaction changes: it swaps the button material
// and asks the state machine for the next state on click.
type ButtonSystem struct {
	visuals ButtonVisuals
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewButtonSystem creates a new button system
func NewButtonSystem(visuals ButtonVisuals, logger *slog.Logger, m *metrics.Metrics) *ButtonSystem {
	return &ButtonSystem{
		visuals: visuals,
		logger:  logger,
		metrics: m,
	}
}

// Visuals returns the button material set
func (s *ButtonSystem) Visuals() ButtonVisuals {
	return s.visuals
}

// Update handles every button whose interaction changed this frame.
// Rejected transition requests are returned joined; the remaining buttons
// are still processed.
func (s *ButtonSystem) Update(w *ecs.World, machine *state.Machine) error {
	var errs []error

	w.EachButton(func(entry *donburi.Entry) {
		st := ecs.InteractionComponent.Get(entry)
		if !st.Changed {
			return
		}

		// Read current at the moment of the click, not earlier in the frame
		handle, intent := ResolveButton(st.Status, machine.Current(), s.visuals)
		ecs.MaterialComponent.Get(entry).Handle = handle

		if intent == nil {
			return
		}
		intent.Button = entry.Entity()
		s.metrics.ObserveClick()

		if err := intent.Apply(machine); err != nil {
			s.metrics.ObserveRejected()
			errs = append(errs, fmt.Errorf("button %v: %w", entry.Entity(), err))
			return
		}
		s.logger.Debug("transition requested", "from", intent.From, "to", intent.To)
	})

	return errors.Join(errs...)
}
