// Package assets owns engine-side resources referenced by handle: colour
// materials and font faces.
package assets

import "image/color"

// Handle references a material in a Materials store (0 is "nil")
type Handle uint32

// Materials stores colour materials and hands out handles to them.
// Handles are never recycled.
type Materials struct {
	colors []color.RGBA
}

// NewMaterials creates an empty material store
func NewMaterials() *Materials {
	return &Materials{}
}

// Add stores c and returns its handle
func (m *Materials) Add(c color.Color) Handle {
	m.colors = append(m.colors, color.RGBAModel.Convert(c).(color.RGBA))
	return Handle(len(m.colors))
}

// Get resolves a handle to its colour
func (m *Materials) Get(h Handle) (color.RGBA, bool) {
	if h == 0 || int(h) > len(m.colors) {
		return color.RGBA{}, false
	}
	return m.colors[h-1], true
}

// Len returns the number of stored materials
func (m *Materials) Len() int {
	return len(m.colors)
}

// RGB converts 0.0-1.0 channel values into an opaque colour
func RGB(r, g, b float64) color.RGBA {
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
