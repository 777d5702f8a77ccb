package position

// knightDeltas and kingDeltas enumerate the jump/step offsets for their
// respective pieces.
var knightDeltas = [8][2]int8{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int8{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// rookDirections and bishopDirections are the sliding-ray step vectors.
var rookDirections = [4][2]int8{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirections = [4][2]int8{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// IsAttacked reports whether any attackerColor piece could capture on
// target, using reverse enumeration: rays cast out from target, plus direct
// knight/king/pawn lookups. It ignores whose turn it is and whether the
// capturing move would itself be legal — it is a pure geometric query used
// both by check detection and by castling-path legality.
func IsAttacked(p *Position, target Coordinate, attackerColor Color) bool {
	if !target.OnBoard() {
		return false
	}

	// Pawns: a pawn of attackerColor attacks target if it sits one rank
	// "behind" target (from the attacker's direction of advance) on an
	// adjacent file. White advances toward rank 0, black toward rank 7.
	pawnRankDelta := int8(-1)
	if attackerColor == White {
		pawnRankDelta = 1
	}
	for _, df := range [2]int8{-1, 1} {
		sq := target.Add(df, pawnRankDelta)
		if sq.OnBoard() {
			piece := p.Get(sq)
			if piece.Kind == Pawn && piece.Color == attackerColor {
				return true
			}
		}
	}

	for _, d := range knightDeltas {
		sq := target.Add(d[0], d[1])
		if sq.OnBoard() {
			piece := p.Get(sq)
			if piece.Kind == Knight && piece.Color == attackerColor {
				return true
			}
		}
	}

	for _, d := range kingDeltas {
		sq := target.Add(d[0], d[1])
		if sq.OnBoard() {
			piece := p.Get(sq)
			if piece.Kind == King && piece.Color == attackerColor {
				return true
			}
		}
	}

	for _, d := range rookDirections {
		if rayAttacks(p, target, d, attackerColor, Rook, Queen) {
			return true
		}
	}
	for _, d := range bishopDirections {
		if rayAttacks(p, target, d, attackerColor, Bishop, Queen) {
			return true
		}
	}

	return false
}

// rayAttacks walks from target in direction d until it hits the edge of the
// board or an occupied square, and reports whether that occupied square is
// an attackerColor piece of kind a or b.
func rayAttacks(p *Position, target Coordinate, d [2]int8, attackerColor Color, a, b Kind) bool {
	sq := target.Add(d[0], d[1])
	for sq.OnBoard() {
		piece := p.Get(sq)
		if !piece.IsEmpty() {
			if piece.Color == attackerColor && (piece.Kind == a || piece.Kind == b) {
				return true
			}
			return false
		}
		sq = sq.Add(d[0], d[1])
	}
	return false
}

// RecomputeCheckFlags refreshes InCheck for both colors from scratch.
func (p *Position) RecomputeCheckFlags() {
	p.InCheck[White] = IsAttacked(p, p.KingSquare[White], Black)
	p.InCheck[Black] = IsAttacked(p, p.KingSquare[Black], White)
}
