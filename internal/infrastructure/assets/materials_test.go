package assets

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaterials_AddGet(t *testing.T) {
	m := NewMaterials()

	normal := m.Add(RGB(0.15, 0.15, 0.15))
	pressed := m.Add(color.RGBA{89, 191, 89, 255})

	assert.Equal(t, Handle(1), normal)
	assert.Equal(t, Handle(2), pressed)
	assert.Equal(t, 2, m.Len())

	c, ok := m.Get(pressed)
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{89, 191, 89, 255}, c)
}

func TestMaterials_GetInvalid(t *testing.T) {
	m := NewMaterials()
	m.Add(color.White)

	_, ok := m.Get(0)
	assert.False(t, ok, "0 is the nil handle")

	_, ok = m.Get(2)
	assert.False(t, ok)
}

func TestMaterials_ConvertsColorModels(t *testing.T) {
	m := NewMaterials()
	h := m.Add(color.Gray{Y: 102})

	c, ok := m.Get(h)
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{102, 102, 102, 255}, c)
}

func TestRGB(t *testing.T) {
	tests := []struct {
		name     string
		r, g, b  float64
		expected color.RGBA
	}{
		{"clear color", 0.4, 0.4, 0.4, color.RGBA{102, 102, 102, 255}},
		{"label", 0.9, 0.9, 0.9, color.RGBA{230, 230, 230, 255}},
		{"pressed", 0.35, 0.75, 0.35, color.RGBA{89, 191, 89, 255}},
		{"clamped", -1, 2, 1, color.RGBA{0, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RGB(tt.r, tt.g, tt.b))
		})
	}
}
