package engine

import (
	"sync"

	"chessengine/position"
)

// Bound is the kind of value stored in a transposition entry.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

// Entry is a transposition-table record. A null entry has Depth 0 and a
// null Move.
type Entry struct {
	Hash  uint64
	Move  position.Move
	Depth int
	Value int
	Bound Bound
}

// isNull reports whether e is an empty slot. A zero-value Entry (what
// make([]Entry, n) and Clear produce) has Hash 0 and Depth 0; real entries
// essentially never hash to exactly 0, so this is safe without having to
// special-case slot initialization.
func (e Entry) isNull() bool {
	return e.Hash == 0 && e.Depth == 0
}

// DefaultTTSlots is the default slot count, ~2^20.
const DefaultTTSlots = 1 << 20

// TranspositionTable is a fixed-size, direct-mapped table keyed by
// hash mod len(slots), serialized by a single mutex, one entry per slot
// (no clustering), with a protected-hash register so the Lazy-SMP root
// position can't be evicted mid-search by a worker's own writes.
type TranspositionTable struct {
	mu            sync.Mutex
	slots         []Entry
	protectedHash uint64
	hasProtected  bool
}

// NewTranspositionTable allocates a table with the given slot count.
func NewTranspositionTable(slots int) *TranspositionTable {
	if slots <= 0 {
		slots = DefaultTTSlots
	}
	return &TranspositionTable{slots: make([]Entry, slots)}
}

func (tt *TranspositionTable) index(hash uint64) uint64 {
	return hash % uint64(len(tt.slots))
}

// Get returns the slot for hash if its stored hash matches, else a null
// entry and false.
func (tt *TranspositionTable) Get(hash uint64) (Entry, bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	entry := tt.slots[tt.index(hash)]
	if entry.Hash != hash || entry.isNull() {
		return Entry{Move: position.NullMove}, false
	}
	return entry, true
}

// Put writes entry into its slot if the slot is empty, holds the same hash
// at depth <= entry.Depth, or holds a hash that is not currently protected.
func (tt *TranspositionTable) Put(entry Entry) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	idx := tt.index(entry.Hash)
	slot := &tt.slots[idx]

	if slot.isNull() {
		*slot = entry
		return
	}
	if slot.Hash == entry.Hash {
		if slot.Depth <= entry.Depth {
			*slot = entry
		}
		return
	}
	if tt.hasProtected && slot.Hash == tt.protectedHash {
		return
	}
	*slot = entry
}

// Clear zeroes the table, for new-game resets.
func (tt *TranspositionTable) Clear() {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	for i := range tt.slots {
		tt.slots[i] = Entry{}
	}
	tt.hasProtected = false
	tt.protectedHash = 0
}

// SetProtected marks hash as the protected hash: its slot may only be
// replaced by another entry with the same hash. If the slot
// currently holds a different hash, it is reset to a seed entry for hash
// so the protection takes effect immediately.
func (tt *TranspositionTable) SetProtected(hash uint64) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.hasProtected = true
	tt.protectedHash = hash

	idx := tt.index(hash)
	slot := &tt.slots[idx]
	if slot.Hash != hash {
		*slot = Entry{Hash: hash, Move: position.NullMove, Depth: 0, Bound: BoundNone}
	}
}
