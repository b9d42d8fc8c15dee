package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadFontSource parses a TrueType/OpenType font file
func LoadFontSource(path string) (*text.GoTextFaceSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open font %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	src, err := text.NewGoTextFaceSource(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	return src, nil
}

// DefaultFontSource returns the embedded Go Regular font
func DefaultFontSource() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to parse default font: %w", err)
	}
	return src, nil
}

// LoadFace loads the font at path with the given size.
// A missing file falls back to the embedded default font; a file that exists
// but cannot be parsed is an error.
func LoadFace(path string, size float64, logger *slog.Logger) (*text.GoTextFace, error) {
	if path != "" {
		src, err := LoadFontSource(path)
		if err == nil {
			return &text.GoTextFace{Source: src, Size: size}, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		logger.Warn("font not found, using default font", "path", path)
	}

	src, err := DefaultFontSource()
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}
