// Package logging turns the command-line log flags into the process logger,
// configured through amp-common's logger package.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/amp-labs/amp-common/logger"
)

// Subsystem tags every record written by the client
const Subsystem = "wfy"

// ErrInvalidLevel is returned for an unrecognised log level name
var ErrInvalidLevel = errors.New("invalid log level")

// Settings are the logging choices made on the command line
type Settings struct {
	Level  string // debug, info, warn or error
	JSON   bool
	Output io.Writer // defaults to stderr
}

// Configure installs the slog and legacy log defaults from s and returns the
// client logger. ebiten reports through the legacy logger at info level.
func Configure(s Settings) (*slog.Logger, error) {
	level, err := ParseLevel(s.Level)
	if err != nil {
		return nil, err
	}

	out := s.Output
	if out == nil {
		out = os.Stderr
	}

	base := logger.ConfigureLoggingWithOptions(logger.Options{
		Subsystem:   Subsystem,
		JSON:        s.JSON,
		MinLevel:    level,
		LegacyLevel: slog.LevelInfo,
		Output:      out,
	})
	return base.With("subsystem", Subsystem), nil
}

// ParseLevel converts "debug", "info", "warn" or "error" into a slog.Level
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
	}
	return level, nil
}
