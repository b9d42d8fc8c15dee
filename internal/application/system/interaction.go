package system

import (
	"github.com/yohamta/donburi"

	"github.com/younwookim/wfy/internal/ecs"
)

// InteractionSystem turns pointer input into the interaction status of
// every button node.
type InteractionSystem struct{}

// NewInteractionSystem creates a new interaction system
func NewInteractionSystem() *InteractionSystem {
	return &InteractionSystem{}
}

// Update sets each button's status for this frame and flags the ones that changed
func (s *InteractionSystem) Update(w *ecs.World, input InputState) {
	w.EachButton(func(entry *donburi.Entry) {
		node := ecs.NodeComponent.Get(entry)
		st := ecs.InteractionComponent.Get(entry)

		next := ResolveInteraction(st.Status, node.Rect, input)
		st.Changed = next != st.Status
		st.Status = next
	})
}

// ResolveInteraction computes an element's status from last frame's status,
// its layout rect and this frame's input.
//
// A press that starts inside the rect is Clicked and stays Clicked while the
// button is held, even if the cursor leaves. Otherwise the cursor position
// decides between Hovered and None.
func ResolveInteraction(prev ecs.Interaction, rect ecs.Rect, input InputState) ecs.Interaction {
	inside := rect.Contains(float64(input.MouseX), float64(input.MouseY))

	switch {
	case input.JustPressed && inside:
		return ecs.InteractionClicked
	case prev == ecs.InteractionClicked && input.Pressed:
		return ecs.InteractionClicked
	case inside:
		return ecs.InteractionHovered
	default:
		return ecs.InteractionNone
	}
}
