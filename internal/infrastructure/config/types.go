package config

import (
	"image/color"

	"github.com/younwookim/wfy/internal/infrastructure/assets"
)

// AppConfig is the root config for app.yaml
type AppConfig struct {
	Window WindowConfig `yaml:"window"`
	Button ButtonConfig `yaml:"button"`
	Label  LabelConfig  `yaml:"label"`
	States StatesConfig `yaml:"states"`
}

// RGB is a colour with 0.0-1.0 channels, written as [r, g, b] in YAML
type RGB [3]float64

// Color converts to an opaque colour
func (c RGB) Color() color.RGBA {
	return assets.RGB(c[0], c[1], c[2])
}

// WindowConfig describes the game window and its tick rate
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Resizable  bool   `yaml:"resizable"`
	TPS        int    `yaml:"tps"`
	ClearColor RGB    `yaml:"clearColor"`
}

// ButtonConfig sizes the centred button
type ButtonConfig struct {
	Width  float64            `yaml:"width"`
	Height float64            `yaml:"height"`
	Colors ButtonColorsConfig `yaml:"colors"`
}

// ButtonColorsConfig holds the button colour for each interaction status
type ButtonColorsConfig struct {
	Normal  RGB `yaml:"normal"`
	Hovered RGB `yaml:"hovered"`
	Pressed RGB `yaml:"pressed"`
}

// LabelConfig describes the button's text child
type LabelConfig struct {
	Initial  string  `yaml:"initial"`
	Font     string  `yaml:"font"`     // Path to a TTF/OTF file, relative to the working directory
	FontSize float64 `yaml:"fontSize"` // Pixels
	Color    RGB     `yaml:"color"`
}

// StatesConfig maps state names ("MainMenu", "InGame", "Credits") to button labels
type StatesConfig struct {
	Labels map[string]string `yaml:"labels"`
}

// Default returns the built-in configuration
func Default() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Title:      "Wfy!",
			Width:      800,
			Height:     500,
			Resizable:  false,
			TPS:        60,
			ClearColor: RGB{0.4, 0.4, 0.4},
		},
		Button: ButtonConfig{
			Width:  150,
			Height: 65,
			Colors: ButtonColorsConfig{
				Normal:  RGB{0.15, 0.15, 0.15},
				Hovered: RGB{0.25, 0.25, 0.25},
				Pressed: RGB{0.35, 0.75, 0.35},
			},
		},
		Label: LabelConfig{
			Initial:  "Button",
			Font:     "fonts/Fura Code Light Nerd Font Complete.ttf",
			FontSize: 40,
			Color:    RGB{0.9, 0.9, 0.9},
		},
		States: StatesConfig{
			Labels: map[string]string{
				"MainMenu": "Menu",
				"InGame":   "InGame",
				"Credits":  "Credits",
			},
		},
	}
}
