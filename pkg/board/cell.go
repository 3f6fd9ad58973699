// Package board models the cell grid and the set of filled cells.
//
// The grid partitions a width×height pixel area into equal square cells.
// Cells are pure value objects: two cells with the same bounding box are
// the same cell. Display colour is never part of a cell; it is derived
// from fill membership, so mutating what a cell looks like can never
// change its identity.
package board

// Cell is one rectangular grid unit, identified by its bounding box.
// The zero value is not a valid cell; cells are produced by Grid.Cells().
type Cell struct {
	X0 int
	Y0 int
	X1 int
	Y1 int
}

// Width returns the horizontal extent of the cell in pixels.
func (c Cell) Width() int {
	return c.X1 - c.X0
}

// Height returns the vertical extent of the cell in pixels.
func (c Cell) Height() int {
	return c.Y1 - c.Y0
}
