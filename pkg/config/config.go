// Package config holds the startup configuration of the grid canvas:
// canvas dimensions, step count, colours and animation timing.
//
// Everything has a built-in default matching the reference instantiation
// (1000x1000 canvas, 100 divisions, white cells, blue fill, black
// lines); an optional YAML file overrides individual fields.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout constants shared by the app window and the board scene.
const (
	// ButtonBarHeight is the pixel height of the bottom button row.
	ButtonBarHeight = 40
)

// Reference instantiation defaults.
const (
	DefaultCanvasWidth  = 1000
	DefaultCanvasHeight = 1000
	DefaultStepCount    = 100

	// DefaultStepDelayMS is the per-cell pause of the animated fill in
	// milliseconds.
	DefaultStepDelayMS = 10
)

// GridConfig describes the cell grid geometry.
type GridConfig struct {
	// Width and Height are the canvas dimensions in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// StepCount is the number of divisions per axis.
	StepCount int `yaml:"stepCount"`
}

// StepSize returns the pixel size of one cell (integer division, may be
// zero for degenerate configurations; Validate rejects those).
func (g GridConfig) StepSize() int {
	if g.StepCount <= 0 {
		return 0
	}
	return g.Width / g.StepCount
}

// ThemeConfig names the colours of the canvas. Values accept the small
// named palette of ParseColour or a #RRGGBB hex string.
type ThemeConfig struct {
	CellColour   string `yaml:"cellColour"`   // unfilled cell background
	FilledColour string `yaml:"filledColour"` // filled cell
	LineColour   string `yaml:"lineColour"`   // grid lines and cell outlines
}

// AnimationConfig holds the animated fill timing.
type AnimationConfig struct {
	// StepDelayMS is the pause between consecutive cell fills in
	// milliseconds.
	StepDelayMS int `yaml:"stepDelayMS"`
}

// Config is the full startup configuration.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Theme     ThemeConfig     `yaml:"theme"`
	Animation AnimationConfig `yaml:"animation"`
}

// Default returns the reference configuration.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Width:     DefaultCanvasWidth,
			Height:    DefaultCanvasHeight,
			StepCount: DefaultStepCount,
		},
		Theme: ThemeConfig{
			CellColour:   "white",
			FilledColour: "blue",
			LineColour:   "black",
		},
		Animation: AnimationConfig{
			StepDelayMS: DefaultStepDelayMS,
		},
	}
}

// Load reads a YAML configuration file and applies it on top of the
// defaults, so a file only needs to name the fields it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for degenerate values.
func (c *Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("grid dimensions %dx%d must be positive", c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.StepCount <= 0 {
		return fmt.Errorf("step count %d must be positive", c.Grid.StepCount)
	}
	if c.Grid.StepSize() < 1 {
		return fmt.Errorf("step count %d exceeds width %d: step size would be zero", c.Grid.StepCount, c.Grid.Width)
	}
	if c.Animation.StepDelayMS < 0 {
		return fmt.Errorf("animation step delay %dms must not be negative", c.Animation.StepDelayMS)
	}
	if _, err := ParseColour(c.Theme.CellColour); err != nil {
		return fmt.Errorf("cell colour: %w", err)
	}
	if _, err := ParseColour(c.Theme.FilledColour); err != nil {
		return fmt.Errorf("filled colour: %w", err)
	}
	if _, err := ParseColour(c.Theme.LineColour); err != nil {
		return fmt.Errorf("line colour: %w", err)
	}
	return nil
}

// WindowWidth returns the logical window width in pixels.
func (c *Config) WindowWidth() int {
	return c.Grid.Width
}

// WindowHeight returns the logical window height in pixels, including
// the button bar below the canvas.
func (c *Config) WindowHeight() int {
	return c.Grid.Height + ButtonBarHeight
}
