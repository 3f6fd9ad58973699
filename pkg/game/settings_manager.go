package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// DisplaySettings are the user-adjustable display preferences. They are
// global and persist across runs; grid and fill state never do.
type DisplaySettings struct {
	// Fullscreen controls whether the window starts in fullscreen mode.
	Fullscreen bool `yaml:"fullscreen"`

	// StepDelayMS overrides the configured per-cell animation delay when
	// positive; zero means "use the config file value".
	StepDelayMS int `yaml:"stepDelayMS"`
}

// DefaultDisplaySettings returns the default preferences.
func DefaultDisplaySettings() *DisplaySettings {
	return &DisplaySettings{
		Fullscreen:  false,
		StepDelayMS: 0,
	}
}

// SettingsManager loads and saves display settings through a gdata
// manager. A nil manager puts it in degraded mode: settings live in
// memory only and Save silently succeeds.
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *DisplaySettings
}

// Storage location inside the gdata store.
const (
	settingsObject   = "settings"
	settingsProperty = "display"
)

// NewSettingsManager creates a settings manager and attempts to load any
// previously saved settings. A load failure is not fatal; the defaults
// are used instead.
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultDisplaySettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// Load reads settings from the gdata store. Missing store or missing
// property both fall back to defaults without error.
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultDisplaySettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultDisplaySettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultDisplaySettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded DisplaySettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultDisplaySettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded")
	return nil
}

// Save writes the current settings to the gdata store. In degraded mode
// this is a no-op.
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings returns the current settings instance.
func (sm *SettingsManager) GetSettings() *DisplaySettings {
	return sm.settings
}

// SetFullscreen updates the fullscreen preference in memory. Call Save
// to persist it.
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetStepDelayMS updates the animation delay override in memory.
// Negative values are clamped to zero (no override). Call Save to
// persist it.
func (sm *SettingsManager) SetStepDelayMS(ms int) {
	if ms < 0 {
		ms = 0
	}
	sm.settings.StepDelayMS = ms
}
