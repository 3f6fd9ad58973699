package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdata creates a gdata manager rooted in a temp directory.
func newTestGdata(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{
		AppName: "wave_function_test",
	})
	if err != nil {
		t.Fatalf("failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultDisplaySettings verifies the default preferences.
func TestDefaultDisplaySettings(t *testing.T) {
	settings := DefaultDisplaySettings()

	if settings == nil {
		t.Fatal("DefaultDisplaySettings() returned nil")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.StepDelayMS != 0 {
		t.Errorf("StepDelayMS: got %d, want 0", settings.StepDelayMS)
	}
}

// TestNewSettingsManagerNilGdata verifies the degraded, memory-only
// mode.
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	if sm == nil {
		t.Fatal("NewSettingsManager(nil) returned nil")
	}

	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}
	if settings.Fullscreen {
		t.Error("degraded mode Fullscreen: got true, want false")
	}

	// Save must not fail without a store.
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode error: %v", err)
	}
}

// TestSettingsSaveLoadRoundtrip verifies persistence through gdata.
func TestSettingsSaveLoadRoundtrip(t *testing.T) {
	m := newTestGdata(t)

	sm := NewSettingsManager(m)
	sm.SetFullscreen(true)
	sm.SetStepDelayMS(25)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// A fresh manager against the same store sees the saved values.
	sm2 := NewSettingsManager(m)
	settings := sm2.GetSettings()
	if !settings.Fullscreen {
		t.Error("Fullscreen after reload: got false, want true")
	}
	if settings.StepDelayMS != 25 {
		t.Errorf("StepDelayMS after reload: got %d, want 25", settings.StepDelayMS)
	}
}

// TestSetStepDelayMSClampsNegative verifies negative overrides are
// treated as "no override".
func TestSetStepDelayMSClampsNegative(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetStepDelayMS(-10)

	if got := sm.GetSettings().StepDelayMS; got != 0 {
		t.Errorf("StepDelayMS after negative set: got %d, want 0", got)
	}
}
