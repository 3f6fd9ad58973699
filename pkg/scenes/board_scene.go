package scenes

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/GeorgeVince/wave-function/pkg/board"
	"github.com/GeorgeVince/wave-function/pkg/config"
	"github.com/GeorgeVince/wave-function/pkg/game"
	"github.com/GeorgeVince/wave-function/pkg/utils"
)

// Button bar colours.
var (
	buttonFillColour   = color.RGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}
	buttonBorderColour = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
)

// button is one clickable region of the bottom bar.
type button struct {
	label          string
	x0, y0, x1, y1 int
	onClick        func()
}

// contains reports whether the point lies inside the button.
func (b *button) contains(x, y int) bool {
	return x >= b.x0 && x < b.x1 && y >= b.y0 && y < b.y1
}

// BoardScene is the single scene of the application: the cell grid
// canvas with a bottom button bar offering the four operations.
type BoardScene struct {
	cfg        *config.Config
	controller *game.Controller
	canvas     *Canvas
	buttons    []button
}

// NewBoardScene builds the grid, the canvas and the controller from the
// configuration. stepDelay is the per-cell animation pause, already
// resolved against any persisted settings override.
func NewBoardScene(cfg *config.Config, stepDelay time.Duration) (*BoardScene, error) {
	grid, err := board.NewGrid(cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.StepCount)
	if err != nil {
		return nil, fmt.Errorf("failed to build grid: %w", err)
	}

	cellColour, err := config.ParseColour(cfg.Theme.CellColour)
	if err != nil {
		return nil, fmt.Errorf("cell colour: %w", err)
	}
	filledColour, err := config.ParseColour(cfg.Theme.FilledColour)
	if err != nil {
		return nil, fmt.Errorf("filled colour: %w", err)
	}
	lineColour, err := config.ParseColour(cfg.Theme.LineColour)
	if err != nil {
		return nil, fmt.Errorf("line colour: %w", err)
	}

	canvas := NewCanvas(cfg.Grid.Width, cfg.Grid.Height, cellColour, lineColour)
	canvas.DrawGridLines(grid.StepSize())

	controller := game.NewController(grid, canvas, filledColour, cellColour, stepDelay)

	s := &BoardScene{
		cfg:        cfg,
		controller: controller,
		canvas:     canvas,
	}
	s.layoutButtons()

	log.Printf("[BoardScene] Grid ready: %dx%d px, %d cells of %d px",
		cfg.Grid.Width, cfg.Grid.Height, grid.CellCount(), grid.StepSize())
	return s, nil
}

// layoutButtons places the four action buttons in an evenly divided row
// below the canvas.
func (s *BoardScene) layoutButtons() {
	labels := []struct {
		label   string
		onClick func()
	}{
		{"next cell", s.controller.FillRandomCell},
		{"fill all", s.controller.FillAll},
		{"reset", s.controller.Reset},
		{"animate", s.controller.Animate},
	}

	barTop := s.cfg.Grid.Height
	barBottom := barTop + config.ButtonBarHeight
	width := s.cfg.Grid.Width

	s.buttons = make([]button, 0, len(labels))
	for i, l := range labels {
		s.buttons = append(s.buttons, button{
			label:   l.label,
			x0:      i * width / len(labels),
			y0:      barTop,
			x1:      (i + 1) * width / len(labels),
			y1:      barBottom,
			onClick: l.onClick,
		})
	}
}

// handleClick dispatches a pointer press to the button under it.
// Returns true when a button consumed the click.
func (s *BoardScene) handleClick(x, y int) bool {
	for i := range s.buttons {
		b := &s.buttons[i]
		if b.contains(x, y) {
			log.Printf("[BoardScene] Button pressed: %s", b.label)
			b.onClick()
			return true
		}
	}
	return false
}

// Update handles input and replays queued draw commands onto the canvas.
func (s *BoardScene) Update(deltaTime float64) {
	in := utils.GetInputState()
	if in.JustPressed {
		s.handleClick(in.X, in.Y)
	}

	s.canvas.Flush()
}

// Draw renders the canvas, the button bar and the status line.
func (s *BoardScene) Draw(screen *ebiten.Image) {
	if img := s.canvas.Image(); img != nil {
		screen.DrawImage(img, nil)
	}

	for i := range s.buttons {
		s.drawButton(screen, &s.buttons[i])
	}

	status := fmt.Sprintf("filled %d / %d", s.controller.FillState().Len(), s.controller.Grid().CellCount())
	if s.controller.IsAnimating() {
		status += "  (animating)"
	}
	ebitenutil.DebugPrintAt(screen, status, 4, 4)
}

func (s *BoardScene) drawButton(screen *ebiten.Image, b *button) {
	x := float32(b.x0)
	y := float32(b.y0)
	w := float32(b.x1 - b.x0)
	h := float32(b.y1 - b.y0)

	vector.DrawFilledRect(screen, x, y, w, h, buttonFillColour, false)
	vector.StrokeRect(screen, x, y, w, h, 1, buttonBorderColour, false)

	// DebugPrint glyphs are 6x16 px; centre the label roughly.
	textX := b.x0 + (b.x1-b.x0-len(b.label)*6)/2
	textY := b.y0 + (config.ButtonBarHeight-16)/2
	ebitenutil.DebugPrintAt(screen, b.label, textX, textY)
}

// Controller exposes the interaction controller, mainly for tests.
func (s *BoardScene) Controller() *game.Controller {
	return s.controller
}
