package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/wfy/internal/application/state"
)

// ErrInvalidConfig is returned when a loaded config fails validation
var ErrInvalidConfig = errors.New("invalid config")

// DefaultFile is the config file name looked up by LoadApp
const DefaultFile = "app.yaml"

// Loader loads app configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadApp loads app.yaml
func (l *Loader) LoadApp() (*AppConfig, error) {
	return l.Load(DefaultFile)
}

// Load reads name on top of the defaults, so omitted keys keep their default value
func (l *Loader) Load(name string) (*AppConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks sizes and state label keys
func (c *AppConfig) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.Window.TPS))
	}
	if c.Button.Width <= 0 || c.Button.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: button size %gx%g", ErrInvalidConfig, c.Button.Width, c.Button.Height))
	}
	if c.Label.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: font size %g", ErrInvalidConfig, c.Label.FontSize))
	}
	for name := range c.States.Labels {
		if _, err := state.Parse(name); err != nil {
			errs = append(errs, fmt.Errorf("%w: states.labels: %w", ErrInvalidConfig, err))
		}
	}

	return errors.Join(errs...)
}

// StateLabels returns the label table keyed by AppState
func (c *AppConfig) StateLabels() map[state.AppState]string {
	labels := make(map[state.AppState]string, len(c.States.Labels))
	for name, text := range c.States.Labels {
		s, err := state.Parse(name)
		if err != nil {
			continue
		}
		labels[s] = text
	}
	return labels
}
