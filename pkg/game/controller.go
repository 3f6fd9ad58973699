package game

import (
	"image/color"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/GeorgeVince/wave-function/pkg/board"
)

// Renderer is the drawing collaborator the controller issues commands
// to. The controller never depends on how drawing is implemented; the
// board scene supplies an off-screen canvas and tests supply a recorder.
type Renderer interface {
	// DrawRectangle paints one cell bounding box in the given colour.
	DrawRectangle(x0, y0, x1, y1 int, fill color.RGBA)

	// DrawGridLines paints the full grid line pattern with the given
	// spacing in pixels.
	DrawGridLines(spacing int)
}

// Controller owns the fill state of one grid and exposes the four user
// operations: fill a random cell, fill everything, reset, and the
// animated step-by-step fill.
//
// All operations are safe to call from the UI thread while an animation
// goroutine is running. At most one animation runs at a time; Reset
// joins the running animation before it touches the fill state, so a
// reset can never race a late animation step.
type Controller struct {
	grid     *board.Grid
	fills    *board.FillState
	renderer Renderer
	rng      *rand.Rand

	filledColour  color.RGBA
	defaultColour color.RGBA
	stepDelay     time.Duration

	mu        sync.Mutex
	animating bool
	stopped   bool          // stop already requested for the current run
	stop      chan struct{} // closed to request the current run to end
	done      chan struct{} // closed by the animation goroutine on exit
}

// NewController creates a controller for the given grid and renderer.
// filledColour is used for marked cells, defaultColour repaints cells on
// reset, and stepDelay is the pause between animated fills.
func NewController(grid *board.Grid, renderer Renderer, filledColour, defaultColour color.RGBA, stepDelay time.Duration) *Controller {
	return &Controller{
		grid:          grid,
		fills:         board.NewFillState(),
		renderer:      renderer,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		filledColour:  filledColour,
		defaultColour: defaultColour,
		stepDelay:     stepDelay,
	}
}

// FillState exposes the filled set for read access by the UI.
func (c *Controller) FillState() *board.FillState {
	return c.fills
}

// Grid returns the grid this controller operates on.
func (c *Controller) Grid() *board.Grid {
	return c.grid
}

// FillRandomCell picks one cell uniformly at random from the full grid
// and marks it filled. Already filled cells stay in the draw pool, so a
// pick may be a repeat; the fill is idempotent and the repaint harmless.
func (c *Controller) FillRandomCell() {
	cells := c.grid.Cells()
	cell := cells[c.rng.Intn(len(cells))]
	c.fills.Add(cell)
	c.renderer.DrawRectangle(cell.X0, cell.Y0, cell.X1, cell.Y1, c.filledColour)
}

// FillAll marks every cell filled, one draw call per cell, in grid
// construction order.
func (c *Controller) FillAll() {
	for _, cell := range c.grid.Cells() {
		c.fills.Add(cell)
		c.renderer.DrawRectangle(cell.X0, cell.Y0, cell.X1, cell.Y1, c.filledColour)
	}
}

// Reset stops any running animation, waits for it to finish, repaints
// every filled cell in the default colour and empties the fill state.
// It is safe to call whether or not an animation is running.
func (c *Controller) Reset() {
	c.stopAnimation()

	for _, cell := range c.fills.Cells() {
		c.renderer.DrawRectangle(cell.X0, cell.Y0, cell.X1, cell.Y1, c.defaultColour)
	}
	c.fills.Clear()
}

// Animate starts the background fill loop and returns immediately. If an
// animation is already running the call is a no-op.
func (c *Controller) Animate() {
	c.mu.Lock()
	if c.animating {
		c.mu.Unlock()
		log.Printf("[Controller] Animate ignored: animation already running")
		return
	}
	c.animating = true
	c.stopped = false
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	stop, done := c.stop, c.done
	c.mu.Unlock()

	log.Printf("[Controller] Animation started (%d cells, %v per step)", c.grid.CellCount(), c.stepDelay)
	go c.runAnimation(stop, done)
}

// IsAnimating reports whether the animation loop is currently running.
func (c *Controller) IsAnimating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.animating
}

// runAnimation visits the grid in construction order and fills every
// cell that is not filled yet, pausing stepDelay between fills. A close
// of the stop channel ends the run immediately, including mid-pause.
func (c *Controller) runAnimation(stop, done chan struct{}) {
	defer func() {
		c.mu.Lock()
		c.animating = false
		c.mu.Unlock()
		close(done)
	}()

	for _, cell := range c.grid.Cells() {
		select {
		case <-stop:
			log.Printf("[Controller] Animation stopped early")
			return
		default:
		}

		if c.fills.Contains(cell) {
			continue
		}
		c.fills.Add(cell)
		c.renderer.DrawRectangle(cell.X0, cell.Y0, cell.X1, cell.Y1, c.filledColour)

		select {
		case <-stop:
			log.Printf("[Controller] Animation stopped early")
			return
		case <-time.After(c.stepDelay):
		}
	}

	log.Printf("[Controller] Animation completed")
}

// stopAnimation requests the current animation run to end and blocks
// until its goroutine has exited. No-op when nothing is running.
func (c *Controller) stopAnimation() {
	c.mu.Lock()
	if !c.animating {
		c.mu.Unlock()
		return
	}
	if !c.stopped {
		close(c.stop)
		c.stopped = true
	}
	done := c.done
	c.mu.Unlock()

	<-done
}
