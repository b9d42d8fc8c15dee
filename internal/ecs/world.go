// Package ecs holds the UI entity world: component types, spawn helpers and
// the queries the frame systems run over.
package ecs

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"

	"github.com/younwookim/wfy/internal/infrastructure/assets"
)

// ErrMissingChild is returned when a button has no text child
var ErrMissingChild = errors.New("button has no text child")

// World wraps the donburi world with UI spawn helpers and queries
type World struct {
	donburi.World

	buttons *query.Query
	cameras *query.Query
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		World: donburi.NewWorld(),
		buttons: query.NewQuery(filter.Contains(
			ButtonTag,
			NodeComponent,
			InteractionComponent,
			MaterialComponent,
		)),
		cameras: query.NewQuery(filter.Contains(CameraComponent)),
	}
}

// SpawnCamera creates the UI camera entity
func (w *World) SpawnCamera(clearColor color.Color) donburi.Entity {
	e := w.Create(CameraComponent)
	CameraComponent.SetValue(w.Entry(e), Camera{ClearColor: clearColor})
	return e
}

// SpawnButton creates a button entity with the given layout and material
func (w *World) SpawnButton(rect Rect, material assets.Handle) donburi.Entity {
	e := w.Create(ButtonTag, NodeComponent, InteractionComponent, MaterialComponent, ChildrenComponent)
	entry := w.Entry(e)

	NodeComponent.SetValue(entry, Node{Rect: rect})
	InteractionComponent.SetValue(entry, InteractionState{Status: InteractionNone})
	MaterialComponent.SetValue(entry, Material{Handle: material})
	return e
}

// SpawnText creates a text entity as the last child of parent
func (w *World) SpawnText(parent donburi.Entity, t Text) (donburi.Entity, error) {
	if !w.Valid(parent) {
		return donburi.Null, fmt.Errorf("spawn text: parent %v is not alive", parent)
	}
	parentEntry := w.Entry(parent)
	if !parentEntry.HasComponent(ChildrenComponent) {
		parentEntry.AddComponent(ChildrenComponent)
	}

	e := w.Create(TextComponent, ParentComponent)
	entry := w.Entry(e)
	TextComponent.SetValue(entry, t)
	ParentComponent.SetValue(entry, Parent{Entity: parent})

	children := ChildrenComponent.Get(parentEntry)
	children.Entities = append(children.Entities, e)
	return e, nil
}

// EachButton calls fn for every button entity
func (w *World) EachButton(fn func(entry *donburi.Entry)) {
	w.buttons.Each(w.World, fn)
}

// CountButtons returns the number of button entities
func (w *World) CountButtons() int {
	return w.buttons.Count(w.World)
}

// Camera returns the UI camera, if one was spawned
func (w *World) Camera() (*Camera, bool) {
	entry, ok := w.cameras.First(w.World)
	if !ok {
		return nil, false
	}
	return CameraComponent.Get(entry), true
}

// FirstChildText returns the text component of the entry's first child
func (w *World) FirstChildText(entry *donburi.Entry) (*Text, error) {
	if !entry.HasComponent(ChildrenComponent) {
		return nil, fmt.Errorf("%w: entity %v", ErrMissingChild, entry.Entity())
	}
	children := ChildrenComponent.Get(entry)
	if len(children.Entities) == 0 {
		return nil, fmt.Errorf("%w: entity %v", ErrMissingChild, entry.Entity())
	}

	child := children.Entities[0]
	if !w.Valid(child) {
		return nil, fmt.Errorf("%w: child %v of entity %v was removed", ErrMissingChild, child, entry.Entity())
	}
	childEntry := w.Entry(child)
	if !childEntry.HasComponent(TextComponent) {
		return nil, fmt.Errorf("%w: child %v of entity %v has no text", ErrMissingChild, child, entry.Entity())
	}
	return TextComponent.Get(childEntry), nil
}
