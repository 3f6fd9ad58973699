package board

import (
	"fmt"
	"sync"
)

// Grid tiles a [0,width)×[0,height) pixel area into square cells of
// StepSize pixels. The tiling is deterministic: the x coordinate is the
// outer loop and y the inner one, and a final partial strip is produced
// when the dimensions are not an exact multiple of the step size.
//
// The cell list is computed once, on first access, and cached for the
// lifetime of the grid.
type Grid struct {
	width     int
	height    int
	stepCount int

	once  sync.Once
	cells []Cell
}

// NewGrid creates a grid for the given pixel dimensions and number of
// divisions per axis.
//
// A step count larger than the width would produce a zero step size and
// degenerate tiling, so it is rejected here rather than left to loop
// forever later.
func NewGrid(width, height, stepCount int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d: must be positive", width, height)
	}
	if stepCount <= 0 {
		return nil, fmt.Errorf("invalid step count %d: must be positive", stepCount)
	}
	if width/stepCount < 1 {
		return nil, fmt.Errorf("step count %d exceeds width %d: step size would be zero", stepCount, width)
	}
	return &Grid{
		width:     width,
		height:    height,
		stepCount: stepCount,
	}, nil
}

// Width returns the grid's pixel width.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's pixel height.
func (g *Grid) Height() int { return g.height }

// StepCount returns the configured number of divisions per axis.
func (g *Grid) StepCount() int { return g.stepCount }

// StepSize returns the pixel width and height of one cell. NewGrid
// guarantees the result is at least 1.
func (g *Grid) StepSize() int {
	return g.width / g.stepCount
}

// Cells returns every cell of the grid in construction order: x advances
// in the outer loop, y in the inner one. The slice is computed on the
// first call and shared by all callers; it must not be mutated.
func (g *Grid) Cells() []Cell {
	g.once.Do(func() {
		step := g.StepSize()
		for x := 0; x < g.width; x += step {
			for y := 0; y < g.height; y += step {
				g.cells = append(g.cells, Cell{
					X0: x,
					Y0: y,
					X1: x + step,
					Y1: y + step,
				})
			}
		}
	})
	return g.cells
}

// CellCount returns the total number of cells in the grid.
func (g *Grid) CellCount() int {
	return len(g.Cells())
}

// Contains reports whether the cell belongs to this grid.
func (g *Grid) Contains(c Cell) bool {
	step := g.StepSize()
	if c.X1-c.X0 != step || c.Y1-c.Y0 != step {
		return false
	}
	if c.X0 < 0 || c.X0 >= g.width || c.Y0 < 0 || c.Y0 >= g.height {
		return false
	}
	return c.X0%step == 0 && c.Y0%step == 0
}
