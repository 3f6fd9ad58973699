package board

import "sync"

// FillState is the mutable set of currently filled cells, keyed by cell
// bounding box. It is shared between the UI thread and the animation
// goroutine, so every operation takes the internal mutex.
type FillState struct {
	mu     sync.Mutex
	filled map[Cell]struct{}
}

// NewFillState returns an empty fill state.
func NewFillState() *FillState {
	return &FillState{
		filled: make(map[Cell]struct{}),
	}
}

// Add marks the cell as filled. Adding a cell that is already filled is
// a no-op.
func (f *FillState) Add(c Cell) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filled[c] = struct{}{}
}

// Clear replaces the filled set with an empty one.
func (f *FillState) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filled = make(map[Cell]struct{})
}

// Contains reports whether the cell is currently filled.
func (f *FillState) Contains(c Cell) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.filled[c]
	return ok
}

// Len returns the number of filled cells.
func (f *FillState) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.filled)
}

// Cells returns a snapshot of the filled cells in unspecified order.
func (f *FillState) Cells() []Cell {
	f.mu.Lock()
	defer f.mu.Unlock()
	cells := make([]Cell, 0, len(f.filled))
	for c := range f.filled {
		cells = append(cells, c)
	}
	return cells
}
