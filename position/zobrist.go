package position

// Zobrist hashing: a process-lifetime table of random 64-bit constants, one
// per (square, kind, color) triple, one per castling right, one per
// en-passant file, and one for side to move. The table is seeded
// deterministically at program start so that a precomputed opening book's
// hashes keep matching across runs.
//
// The generator is xorshift64star, seeded with a fixed constant rather than
// drawn from math/rand, so the table is reproducible independent of
// process-start entropy.
const zobristSeed uint64 = 0x9E3779B97F4A7C15

var (
	zobristPiece       [7][2][64]uint64 // [Kind][Color][rank*8+file]
	zobristCastleRight [4]uint64        // one per CastlingRights bit
	zobristEPFile      [8]uint64        // one per file
	zobristSideToMove  uint64
)

func init() {
	seedZobristTables()
}

func seedZobristTables() {
	s := zobristSeed
	next := func() uint64 {
		s ^= s >> 12
		s ^= s << 25
		s ^= s >> 27
		return s * 0x2545F4914F6CDD1D
	}

	for k := Empty; k <= Pawn; k++ {
		for c := White; c <= Black; c++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[k][c][sq] = next()
			}
		}
	}
	for i := range zobristCastleRight {
		zobristCastleRight[i] = next()
	}
	for i := range zobristEPFile {
		zobristEPFile[i] = next()
	}
	zobristSideToMove = next()
}

func squareIndex(c Coordinate) int {
	return int(c.Rank)*8 + int(c.File)
}

// ComputeHash recomputes the Zobrist digest of p from scratch, independent
// of whatever is currently stored in p.Hash.
func ComputeHash(p *Position) uint64 {
	var key uint64
	for color := White; color <= Black; color++ {
		for _, coord := range p.PieceList(color) {
			piece := p.Get(coord)
			key ^= zobristPiece[piece.Kind][piece.Color][squareIndex(coord)]
		}
	}

	rights := []CastlingRights{CastleWhiteKing, CastleWhiteQueen, CastleBlackKing, CastleBlackQueen}
	for i, r := range rights {
		if p.Castling&r != 0 {
			key ^= zobristCastleRight[i]
		}
	}

	for color := White; color <= Black; color++ {
		if p.EPFile[color] >= 0 {
			key ^= zobristEPFile[p.EPFile[color]]
		}
	}

	if p.SideToMove == Black {
		key ^= zobristSideToMove
	}
	return key
}

// RebuildHash recomputes p.Hash from scratch and stores it.
func (p *Position) RebuildHash() {
	p.Hash = ComputeHash(p)
}
