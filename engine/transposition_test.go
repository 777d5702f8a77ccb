package engine

import "testing"

func TestTranspositionGetMissReportsFalse(t *testing.T) {
	tt := NewTranspositionTable(1024)
	if _, ok := tt.Get(12345); ok {
		t.Fatalf("expected miss on empty table")
	}
}

func TestTranspositionPutThenGetRoundTrips(t *testing.T) {
	tt := NewTranspositionTable(1024)
	entry := Entry{Hash: 42, Depth: 5, Value: 100, Bound: BoundExact}
	tt.Put(entry)

	got, ok := tt.Get(42)
	if !ok {
		t.Fatalf("expected hit after put")
	}
	if got.Value != 100 || got.Depth != 5 || got.Bound != BoundExact {
		t.Fatalf("entry mismatch: %+v", got)
	}
}

func TestTranspositionShallowerSameHashDoesNotOverwrite(t *testing.T) {
	tt := NewTranspositionTable(1024)
	tt.Put(Entry{Hash: 7, Depth: 10, Value: 1, Bound: BoundExact})
	tt.Put(Entry{Hash: 7, Depth: 3, Value: 2, Bound: BoundExact})

	got, _ := tt.Get(7)
	if got.Depth != 10 || got.Value != 1 {
		t.Fatalf("shallower same-hash write clobbered a deeper entry: %+v", got)
	}
}

func TestTranspositionDeeperSameHashOverwrites(t *testing.T) {
	tt := NewTranspositionTable(1024)
	tt.Put(Entry{Hash: 7, Depth: 3, Value: 1, Bound: BoundExact})
	tt.Put(Entry{Hash: 7, Depth: 10, Value: 2, Bound: BoundExact})

	got, _ := tt.Get(7)
	if got.Depth != 10 || got.Value != 2 {
		t.Fatalf("deeper same-hash write did not take: %+v", got)
	}
}

// TestTranspositionProtectedHashSurvivesCollision exercises the invariant
// that a protected root slot cannot be evicted by an unrelated hash mapping
// to the same slot index.
func TestTranspositionProtectedHashSurvivesCollision(t *testing.T) {
	tt := NewTranspositionTable(16)
	root := Entry{Hash: 3, Depth: 20, Value: 9, Bound: BoundExact}
	tt.Put(root)
	tt.SetProtected(root.Hash)

	// 3 and 19 collide under index() when slots == 16.
	colliding := Entry{Hash: 19, Depth: 50, Value: -1, Bound: BoundExact}
	tt.Put(colliding)

	got, ok := tt.Get(root.Hash)
	if !ok || got.Value != 9 {
		t.Fatalf("protected root entry was evicted by a colliding hash: ok=%v got=%+v", ok, got)
	}
}

func TestTranspositionSetProtectedResetsDisplacedSlot(t *testing.T) {
	tt := NewTranspositionTable(16)
	tt.Put(Entry{Hash: 19, Depth: 50, Value: -1, Bound: BoundExact})
	tt.SetProtected(3)

	if _, ok := tt.Get(19); ok {
		t.Fatalf("expected SetProtected to clear the slot's prior occupant")
	}
}

func TestTranspositionClearRemovesAllEntries(t *testing.T) {
	tt := NewTranspositionTable(1024)
	tt.Put(Entry{Hash: 1, Depth: 1, Value: 1, Bound: BoundExact})
	tt.Clear()

	if _, ok := tt.Get(1); ok {
		t.Fatalf("expected empty table after Clear")
	}
}
