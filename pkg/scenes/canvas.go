// Package scenes contains the board scene and its drawing surface.
package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawCommand is one queued canvas operation.
type drawCommand struct {
	// gridLines when true draws the full line pattern with Spacing;
	// otherwise the command paints the rectangle X0..X1, Y0..Y1.
	gridLines bool
	spacing   int

	x0, y0, x1, y1 int
	fill           color.RGBA
}

// Canvas is a retained drawing surface backed by an off-screen image,
// playing the role the Tk canvas had in the original program.
//
// Ebiten images may only be mutated on the game goroutine, but the
// animation loop issues draw commands from its own goroutine. Canvas
// therefore queues commands from any goroutine and replays them onto
// the image when the scene calls Flush during Update.
type Canvas struct {
	width      int
	height     int
	background color.RGBA
	lineColour color.RGBA

	mu      sync.Mutex
	pending []drawCommand

	image *ebiten.Image // created lazily on the first Flush
}

// NewCanvas creates a canvas of the given pixel size. background is the
// initial fill, lineColour is used for grid lines and cell outlines.
func NewCanvas(width, height int, background, lineColour color.RGBA) *Canvas {
	return &Canvas{
		width:      width,
		height:     height,
		background: background,
		lineColour: lineColour,
	}
}

// DrawRectangle queues a cell repaint. Safe to call from any goroutine.
func (c *Canvas) DrawRectangle(x0, y0, x1, y1 int, fill color.RGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, drawCommand{
		x0: x0, y0: y0, x1: x1, y1: y1,
		fill: fill,
	})
}

// DrawGridLines queues the full grid line pattern with the given pixel
// spacing. Safe to call from any goroutine.
func (c *Canvas) DrawGridLines(spacing int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, drawCommand{
		gridLines: true,
		spacing:   spacing,
	})
}

// Flush applies every queued command to the off-screen image. It must be
// called from the game goroutine.
func (c *Canvas) Flush() {
	c.mu.Lock()
	cmds := c.pending
	c.pending = nil
	c.mu.Unlock()

	if c.image == nil {
		c.image = ebiten.NewImage(c.width, c.height)
		c.image.Fill(c.background)
	}

	for _, cmd := range cmds {
		c.apply(cmd)
	}
}

// Image returns the off-screen image, or nil before the first Flush.
func (c *Canvas) Image() *ebiten.Image {
	return c.image
}

// pendingCount returns the number of queued commands.
func (c *Canvas) pendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (c *Canvas) apply(cmd drawCommand) {
	if cmd.gridLines {
		c.drawGridLines(cmd.spacing)
		return
	}

	x := float32(cmd.x0)
	y := float32(cmd.y0)
	w := float32(cmd.x1 - cmd.x0)
	h := float32(cmd.y1 - cmd.y0)
	vector.DrawFilledRect(c.image, x, y, w, h, cmd.fill, false)
	vector.StrokeRect(c.image, x, y, w, h, 1, c.lineColour, false)
}

func (c *Canvas) drawGridLines(spacing int) {
	if spacing < 1 {
		return
	}
	for x := 0; x < c.width; x += spacing {
		vector.StrokeLine(c.image, float32(x), 0, float32(x), float32(c.height), 1, c.lineColour, false)
	}
	for y := 0; y < c.height; y += spacing {
		vector.StrokeLine(c.image, 0, float32(y), float32(c.width), float32(y), 1, c.lineColour, false)
	}
}
