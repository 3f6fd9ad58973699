package board

import (
	"sync"
	"testing"
)

// TestFillStateAddContains verifies basic membership semantics.
func TestFillStateAddContains(t *testing.T) {
	fs := NewFillState()
	c := Cell{X0: 0, Y0: 0, X1: 10, Y1: 10}

	if fs.Contains(c) {
		t.Error("Contains on empty state: got true, want false")
	}

	fs.Add(c)
	if !fs.Contains(c) {
		t.Error("Contains after Add: got false, want true")
	}
	if fs.Len() != 1 {
		t.Errorf("Len after Add: got %d, want 1", fs.Len())
	}
}

// TestFillStateAddIdempotent verifies that re-adding a filled cell is a
// no-op.
func TestFillStateAddIdempotent(t *testing.T) {
	fs := NewFillState()
	c := Cell{X0: 10, Y0: 20, X1: 20, Y1: 30}

	fs.Add(c)
	fs.Add(c)
	fs.Add(c)

	if fs.Len() != 1 {
		t.Errorf("Len after duplicate adds: got %d, want 1", fs.Len())
	}
}

// TestFillStateIdentityIgnoresNothingButBox verifies that membership is
// keyed purely on the bounding box.
func TestFillStateIdentityIgnoresNothingButBox(t *testing.T) {
	fs := NewFillState()
	fs.Add(Cell{X0: 0, Y0: 0, X1: 10, Y1: 10})

	same := Cell{X0: 0, Y0: 0, X1: 10, Y1: 10}
	if !fs.Contains(same) {
		t.Error("cells with identical bounding boxes must be the same cell")
	}

	other := Cell{X0: 0, Y0: 10, X1: 10, Y1: 20}
	if fs.Contains(other) {
		t.Error("cells with different bounding boxes must be distinct")
	}
}

// TestFillStateClear verifies that Clear empties the set.
func TestFillStateClear(t *testing.T) {
	fs := NewFillState()
	for i := 0; i < 5; i++ {
		fs.Add(Cell{X0: i * 10, Y0: 0, X1: i*10 + 10, Y1: 10})
	}

	fs.Clear()

	if fs.Len() != 0 {
		t.Errorf("Len after Clear: got %d, want 0", fs.Len())
	}
	if len(fs.Cells()) != 0 {
		t.Errorf("Cells after Clear: got %d cells, want 0", len(fs.Cells()))
	}
}

// TestFillStateCellsSnapshot verifies that Cells returns an independent
// snapshot.
func TestFillStateCellsSnapshot(t *testing.T) {
	fs := NewFillState()
	c := Cell{X0: 0, Y0: 0, X1: 10, Y1: 10}
	fs.Add(c)

	snapshot := fs.Cells()
	fs.Clear()

	if len(snapshot) != 1 || snapshot[0] != c {
		t.Errorf("snapshot changed after Clear: got %+v", snapshot)
	}
}

// TestFillStateConcurrentAdd verifies that concurrent writers do not
// corrupt the set. Run with -race to catch unlocked access.
func TestFillStateConcurrentAdd(t *testing.T) {
	fs := NewFillState()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				fs.Add(Cell{X0: i * 10, Y0: w * 10, X1: i*10 + 10, Y1: w*10 + 10})
			}
		}(w)
	}
	wg.Wait()

	if fs.Len() != 800 {
		t.Errorf("Len after concurrent adds: got %d, want 800", fs.Len())
	}
}
