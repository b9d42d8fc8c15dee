package ecs

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"

	"github.com/younwookim/wfy/internal/infrastructure/assets"
)

// Rect is an axis-aligned rectangle in screen pixels
type Rect struct {
	X, Y, W, H float64
}

// CenteredRect returns a w×h rect centred inside a screenW×screenH area
func CenteredRect(screenW, screenH int, w, h float64) Rect {
	return Rect{
		X: (float64(screenW) - w) / 2,
		Y: (float64(screenH) - h) / 2,
		W: w,
		H: h,
	}
}

// Contains reports whether the point lies inside the rect (right/bottom edges exclusive)
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Center returns the rect centre
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Node is the layout box of a UI entity
type Node struct {
	Rect Rect
}

// Interaction is the pointer relation to a UI element for the current frame
type Interaction int

const (
	InteractionNone Interaction = iota
	InteractionHovered
	InteractionClicked
)

// String returns the string representation of the interaction
func (i Interaction) String() string {
	switch i {
	case InteractionNone:
		return "None"
	case InteractionHovered:
		return "Hovered"
	case InteractionClicked:
		return "Clicked"
	default:
		return "Unknown"
	}
}

// InteractionState holds an element's interaction and whether it changed this frame
type InteractionState struct {
	Status  Interaction
	Changed bool
}

// Material is the visual handle applied to a UI element
type Material struct {
	Handle assets.Handle
}

// Text is a text label
type Text struct {
	Value string
	Face  text.Face
	Size  float64
	Color color.Color
}

// Children lists child entities in spawn order
type Children struct {
	Entities []donburi.Entity
}

// Parent points at the owning entity
type Parent struct {
	Entity donburi.Entity
}

// Camera marks the UI camera and carries the clear colour
type Camera struct {
	ClearColor color.Color
}

// Component types
var (
	NodeComponent        = donburi.NewComponentType[Node]()
	InteractionComponent = donburi.NewComponentType[InteractionState]()
	MaterialComponent    = donburi.NewComponentType[Material]()
	TextComponent        = donburi.NewComponentType[Text]()
	ChildrenComponent    = donburi.NewComponentType[Children]()
	ParentComponent      = donburi.NewComponentType[Parent]()
	CameraComponent      = donburi.NewComponentType[Camera]()
)

// Tags
var (
	ButtonTag = donburi.NewTag()
)
