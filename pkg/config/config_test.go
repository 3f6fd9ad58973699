package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

// TestDefault verifies the reference instantiation defaults.
func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Grid.Width != 1000 {
		t.Errorf("Grid.Width: got %d, want 1000", cfg.Grid.Width)
	}
	if cfg.Grid.Height != 1000 {
		t.Errorf("Grid.Height: got %d, want 1000", cfg.Grid.Height)
	}
	if cfg.Grid.StepCount != 100 {
		t.Errorf("Grid.StepCount: got %d, want 100", cfg.Grid.StepCount)
	}
	if cfg.Grid.StepSize() != 10 {
		t.Errorf("Grid.StepSize: got %d, want 10", cfg.Grid.StepSize())
	}
	if cfg.Theme.CellColour != "white" || cfg.Theme.FilledColour != "blue" || cfg.Theme.LineColour != "black" {
		t.Errorf("Theme: got %+v, want white/blue/black", cfg.Theme)
	}
	if cfg.Animation.StepDelayMS != 10 {
		t.Errorf("Animation.StepDelayMS: got %d, want 10", cfg.Animation.StepDelayMS)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}

// TestValidateRejectsDegenerateStep verifies the fail-fast decision for
// step counts that would produce a zero step size.
func TestValidateRejectsDegenerateStep(t *testing.T) {
	cfg := Default()
	cfg.Grid.Width = 100
	cfg.Grid.StepCount = 101

	if err := cfg.Validate(); err == nil {
		t.Error("Validate: expected error for step count > width, got nil")
	}
}

// TestValidateRejectsBadColour verifies theme validation.
func TestValidateRejectsBadColour(t *testing.T) {
	cfg := Default()
	cfg.Theme.FilledColour = "not-a-colour"

	if err := cfg.Validate(); err == nil {
		t.Error("Validate: expected error for unknown colour, got nil")
	}
}

// TestLoadOverridesDefaults verifies that a partial YAML file only
// changes the fields it names.
func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("grid:\n  width: 500\n  height: 500\n  stepCount: 50\ntheme:\n  filledColour: red\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Grid.Width != 500 || cfg.Grid.Height != 500 || cfg.Grid.StepCount != 50 {
		t.Errorf("Grid: got %+v, want 500/500/50", cfg.Grid)
	}
	if cfg.Theme.FilledColour != "red" {
		t.Errorf("Theme.FilledColour: got %q, want %q", cfg.Theme.FilledColour, "red")
	}
	// Untouched fields keep their defaults.
	if cfg.Theme.CellColour != "white" {
		t.Errorf("Theme.CellColour: got %q, want %q", cfg.Theme.CellColour, "white")
	}
	if cfg.Animation.StepDelayMS != 10 {
		t.Errorf("Animation.StepDelayMS: got %d, want 10", cfg.Animation.StepDelayMS)
	}
}

// TestLoadRejectsInvalidFile verifies that bad files surface errors.
func TestLoadRejectsInvalidFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load: expected error for missing file, got nil")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [not a mapping"), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load: expected error for malformed YAML, got nil")
	}
}

// TestParseColour verifies named and hex colour resolution.
func TestParseColour(t *testing.T) {
	cases := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"white", color.RGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"Blue", color.RGBA{0x00, 0x00, 0xff, 0xff}, false},
		{" black ", color.RGBA{0x00, 0x00, 0x00, 0xff}, false},
		{"#336699", color.RGBA{0x33, 0x66, 0x99, 0xff}, false},
		{"#33669", color.RGBA{}, true},
		{"chartreuse-ish", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tc := range cases {
		got, err := ParseColour(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseColour(%q): expected error, got nil", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColour(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColour(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}
}

// TestWindowDimensions verifies the button bar is added below the canvas.
func TestWindowDimensions(t *testing.T) {
	cfg := Default()
	if cfg.WindowWidth() != 1000 {
		t.Errorf("WindowWidth: got %d, want 1000", cfg.WindowWidth())
	}
	if cfg.WindowHeight() != 1000+ButtonBarHeight {
		t.Errorf("WindowHeight: got %d, want %d", cfg.WindowHeight(), 1000+ButtonBarHeight)
	}
}
