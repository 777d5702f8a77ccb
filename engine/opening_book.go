package engine

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"os"
	"sort"

	"chessengine/position"
)

// DefaultBookPath is where engine startup expects the Polyglot-shaped book.
const DefaultBookPath = "res/opening_book.bin"

// BookEntryDepth is the sentinel depth a book hit is stored under, so the
// facade and subsequent TT lookups treat it as an exact best move
// regardless of how deep the real search would have gone.
const BookEntryDepth = 1 << 30

type bookEntry struct {
	Hash  uint64
	Moves []position.Move
}

// OpeningBook is a sorted-by-hash, binary-searchable table of (hash,
// response moves) loaded from a Polyglot BIN file.
type OpeningBook struct {
	entries []bookEntry
}

// LoadOpeningBook reads and decodes a Polyglot-shaped book file: a stream of
// 16-byte big-endian records {hash uint64, move uint16, weight uint16,
// learn uint32}. Consecutive records sharing a hash are coalesced into one
// entry (capped at 255 moves; excess discarded). The file is assumed
// pre-sorted ascending by hash.
func LoadOpeningBook(path string) (*OpeningBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening book %q: %w", path, err)
	}
	if len(data) == 0 || len(data)%16 != 0 {
		return nil, fmt.Errorf("opening book %q: invalid size %d bytes", path, len(data))
	}

	var entries []bookEntry
	for offset := 0; offset < len(data); offset += 16 {
		record := data[offset : offset+16]
		hash := binary.BigEndian.Uint64(record[0:8])
		rawMove := binary.BigEndian.Uint16(record[8:10])

		move, ok := decodeBookMove(rawMove)
		if !ok {
			continue
		}

		if n := len(entries); n > 0 && entries[n-1].Hash == hash {
			if len(entries[n-1].Moves) < 255 {
				entries[n-1].Moves = append(entries[n-1].Moves, move)
			}
			continue
		}
		entries = append(entries, bookEntry{Hash: hash, Moves: []position.Move{move}})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("opening book %q: zero usable records", path)
	}
	return &OpeningBook{entries: entries}, nil
}

// decodeBookMove unpacks the five 3-bit fields (to-file, to-rank, from-file,
// from-rank, promotion, from LSB) and mirrors the file's bottom-origin ranks
// to the engine's top-origin convention (rank_engine = 7 - rank_file). Only
// promotion values 0 (none) and 4 (queen) are accepted; anything else is
// skipped by the caller.
func decodeBookMove(raw uint16) (position.Move, bool) {
	toFile := int(raw & 0x7)
	toRank := int((raw >> 3) & 0x7)
	fromFile := int((raw >> 6) & 0x7)
	fromRank := int((raw >> 9) & 0x7)
	promotion := int((raw >> 12) & 0x7)

	if promotion != 0 && promotion != 4 {
		return position.NullMove, false
	}

	from := position.NewCoordinate(fromFile, 7-fromRank)
	to := position.NewCoordinate(toFile, 7-toRank)
	return position.Move{From: from, To: to}, true
}

// EncodeBookMove is the inverse of decodeBookMove: it packs move into the
// Polyglot bit layout (bottom-origin ranks), for writers that build a book
// file directly from engine Moves. Only promotion values 0 (none) and 4
// (queen) are meaningful downstream.
func EncodeBookMove(move position.Move, promotion int) uint16 {
	toFile := uint16(move.To.File)
	toRank := uint16(7 - move.To.Rank)
	fromFile := uint16(move.From.File)
	fromRank := uint16(7 - move.From.Rank)
	return toFile | toRank<<3 | fromFile<<6 | fromRank<<9 | uint16(promotion)<<12
}

// Lookup binary-searches for hash and returns its candidate response moves.
func (b *OpeningBook) Lookup(hash uint64) ([]position.Move, bool) {
	idx := sort.Search(len(b.entries), func(i int) bool { return b.entries[i].Hash >= hash })
	if idx < len(b.entries) && b.entries[idx].Hash == hash {
		return b.entries[idx].Moves, true
	}
	return nil, false
}

// TryBookMove picks one of p's book responses uniformly at random via rng,
// verifies it against a live legality check (defense against hash
// collisions), and on success writes it directly into tt as an exact,
// maximal-depth entry. It reports false silently if there is no book entry
// or the picked move fails legality.
func (b *OpeningBook) TryBookMove(p *position.Position, tt *TranspositionTable, rng *rand.Rand) (position.Move, bool) {
	moves, ok := b.Lookup(p.Hash)
	if !ok || len(moves) == 0 {
		return position.NullMove, false
	}

	pick := moves[rng.Intn(len(moves))]
	if !position.IsLegal(p, pick) {
		return position.NullMove, false
	}

	tt.Put(Entry{Hash: p.Hash, Move: pick, Depth: BookEntryDepth, Value: 0, Bound: BoundExact})
	return pick, true
}
