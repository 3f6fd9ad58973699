// Package app wires the configuration, settings and board scene into an
// ebiten.Game, keeping the desktop entry point thin.
package app

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/GeorgeVince/wave-function/pkg/config"
	"github.com/GeorgeVince/wave-function/pkg/game"
	"github.com/GeorgeVince/wave-function/pkg/scenes"
)

// Config defines the application startup options.
type Config struct {
	// Verbose enables log output.
	Verbose bool
	// ConfigPath points to an optional YAML config file; empty uses the
	// built-in defaults.
	ConfigPath string
	// StepCount overrides the configured divisions per axis when
	// positive.
	StepCount int
}

// App is the application wrapper implementing ebiten.Game.
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	conf         *config.Config
	verbose      bool

	// Leaving fullscreen needs a few frames before the window size can
	// be set again reliably.
	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp creates and initializes the application.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	conf := config.Default()
	if cfg.ConfigPath != "" {
		loaded, err := config.Load(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		conf = loaded
		log.Printf("[App] Loaded config from %s", cfg.ConfigPath)
	}
	if cfg.StepCount > 0 {
		conf.Grid.StepCount = cfg.StepCount
		log.Printf("[App] Step count overridden to %d", cfg.StepCount)
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Display settings persist across runs. A broken store is not
	// fatal; the settings manager degrades to memory-only mode.
	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "wave_function",
	})
	if err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v", err)
		gdataManager = nil
	}
	settings := game.NewSettingsManager(gdataManager)

	stepDelay := time.Duration(conf.Animation.StepDelayMS) * time.Millisecond
	if override := settings.GetSettings().StepDelayMS; override > 0 {
		stepDelay = time.Duration(override) * time.Millisecond
		log.Printf("[App] Animation delay overridden by settings: %v", stepDelay)
	}

	scene, err := scenes.NewBoardScene(conf, stepDelay)
	if err != nil {
		return nil, err
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	log.Printf("[App] Initialized: %dx%d canvas, %d steps",
		conf.Grid.Width, conf.Grid.Height, conf.Grid.StepCount)

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		conf:         conf,
		verbose:      cfg.Verbose,
	}, nil
}

// Update advances the active scene by one tick and handles the global
// fullscreen toggle.
func (a *App) Update() error {
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.conf.WindowWidth(), a.conf.WindowHeight())
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.conf.WindowWidth(), a.conf.WindowHeight())
			a.pendingWindowSizeReset = false
		}
	}

	// F11 toggles fullscreen; the preference persists across runs.
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		entering := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(entering)
		if !entering {
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		}
		a.settings.SetFullscreen(entering)
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw renders the active scene.
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout returns the logical screen size, independent of the window
// size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.conf.WindowWidth(), a.conf.WindowHeight()
}

// WindowWidth returns the logical window width for the desktop entry
// point.
func (a *App) WindowWidth() int { return a.conf.WindowWidth() }

// WindowHeight returns the logical window height for the desktop entry
// point.
func (a *App) WindowHeight() int { return a.conf.WindowHeight() }
