package position

// pawnAdvance returns the direction a color's pawns move in rank terms.
// White's home is rank 7 and it advances toward rank 0, the top row and
// black's home; black advances the opposite way.
func pawnAdvance(c Color) int8 {
	if c == White {
		return -1
	}
	return 1
}

func pawnStartRank(c Color) int8 {
	if c == White {
		return 6
	}
	return 1
}

func pawnPromotionRank(c Color) int8 {
	if c == White {
		return 0
	}
	return 7
}

// epCapturerRank is the rank a capturing pawn of color c must stand on to
// take en passant: white's double push lands on rank 4, so the black
// capturer must sit on rank 4; black's lands on rank 3, so the white
// capturer must sit on rank 3.
func epCapturerRank(mover Color) int8 {
	if mover == White {
		return 3
	}
	return 4
}

// GeneratePseudoLegalForSquare returns the pseudo-legal destinations for
// whatever piece sits at `from`, ignoring whether the resulting position
// leaves the mover's own king attacked. An empty square yields no moves.
func GeneratePseudoLegalForSquare(p *Position, from Coordinate) []Move {
	piece := p.Get(from)
	if piece.IsEmpty() {
		return nil
	}
	switch piece.Kind {
	case King:
		return kingMoves(p, from, piece.Color)
	case Queen:
		return slidingMoves(p, from, piece.Color, append(append([][2]int8{}, rookDirections[:]...), bishopDirections[:]...))
	case Rook:
		return slidingMoves(p, from, piece.Color, rookDirections[:])
	case Bishop:
		return slidingMoves(p, from, piece.Color, bishopDirections[:])
	case Knight:
		return knightMoves(p, from, piece.Color)
	case Pawn:
		return pawnMoves(p, from, piece.Color)
	default:
		return nil
	}
}

func knightMoves(p *Position, from Coordinate, color Color) []Move {
	var moves []Move
	for _, d := range knightDeltas {
		to := from.Add(d[0], d[1])
		if !to.OnBoard() {
			continue
		}
		target := p.Get(to)
		if target.IsEmpty() || target.Color != color {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

func slidingMoves(p *Position, from Coordinate, color Color, directions [][2]int8) []Move {
	var moves []Move
	for _, d := range directions {
		to := from.Add(d[0], d[1])
		for to.OnBoard() {
			target := p.Get(to)
			if target.IsEmpty() {
				moves = append(moves, Move{From: from, To: to})
				to = to.Add(d[0], d[1])
				continue
			}
			if target.Color != color {
				moves = append(moves, Move{From: from, To: to})
			}
			break
		}
	}
	return moves
}

func kingMoves(p *Position, from Coordinate, color Color) []Move {
	var moves []Move
	for _, d := range kingDeltas {
		to := from.Add(d[0], d[1])
		if !to.OnBoard() {
			continue
		}
		target := p.Get(to)
		if target.IsEmpty() || target.Color != color {
			moves = append(moves, Move{From: from, To: to})
		}
	}

	moves = append(moves, castlingMoves(p, from, color)...)
	return moves
}

// castlingMoves generates the (up to two) castling destinations for the
// king at `from`, subject to: the castling-right flag being set, the rook
// still on its starting square, the squares between king and rook being
// empty, and no square between the king's start and destination (inclusive
// of destination, exclusive of the king's own starting square) being
// attacked by the opponent — except the b-file on queenside, which is
// intentionally exempt. The king's own starting square is NOT checked here:
// castling out of check is rejected only by IsLegal's king-safety recheck.
func castlingMoves(p *Position, from Coordinate, color Color) []Move {
	homeRank := int8(7)
	if color == Black {
		homeRank = 0
	}
	if from.Rank != homeRank || from.File != 4 {
		return nil
	}
	opponent := color.Opponent()

	var moves []Move

	kingSide, queenSide := rightsFor(color)
	if p.Castling&kingSide != 0 {
		rookSq := NewCoordinate(7, int(homeRank))
		between := []Coordinate{NewCoordinate(5, int(homeRank)), NewCoordinate(6, int(homeRank))}
		rook := p.Get(rookSq)
		if rook.Kind == Rook && rook.Color == color && allEmpty(p, between) {
			dest := NewCoordinate(6, int(homeRank))
			if !IsAttacked(p, NewCoordinate(5, int(homeRank)), opponent) && !IsAttacked(p, dest, opponent) {
				moves = append(moves, Move{From: from, To: dest})
			}
		}
	}
	if p.Castling&queenSide != 0 {
		rookSq := NewCoordinate(0, int(homeRank))
		between := []Coordinate{NewCoordinate(1, int(homeRank)), NewCoordinate(2, int(homeRank)), NewCoordinate(3, int(homeRank))}
		rook := p.Get(rookSq)
		if rook.Kind == Rook && rook.Color == color && allEmpty(p, between) {
			dest := NewCoordinate(2, int(homeRank))
			// File 1 (the b-file square) may be attacked; only the
			// destination and the square the king crosses need be safe.
			if !IsAttacked(p, NewCoordinate(3, int(homeRank)), opponent) && !IsAttacked(p, dest, opponent) {
				moves = append(moves, Move{From: from, To: dest})
			}
		}
	}
	return moves
}

func allEmpty(p *Position, squares []Coordinate) bool {
	for _, sq := range squares {
		if !p.Get(sq).IsEmpty() {
			return false
		}
	}
	return true
}

func pawnMoves(p *Position, from Coordinate, color Color) []Move {
	var moves []Move
	dir := pawnAdvance(color)

	one := from.Add(0, dir)
	if one.OnBoard() && p.Get(one).IsEmpty() {
		moves = append(moves, Move{From: from, To: one})
		if from.Rank == pawnStartRank(color) {
			two := from.Add(0, 2*dir)
			if two.OnBoard() && p.Get(two).IsEmpty() {
				moves = append(moves, Move{From: from, To: two})
			}
		}
	}

	for _, df := range [2]int8{-1, 1} {
		to := from.Add(df, dir)
		if !to.OnBoard() {
			continue
		}
		target := p.Get(to)
		if !target.IsEmpty() && target.Color != color {
			moves = append(moves, Move{From: from, To: to})
			continue
		}
		if target.IsEmpty() && p.EPFile[color] == to.File && from.Rank == epCapturerRank(color) {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// IsPossible reports whether move is geometrically valid for whatever piece
// sits on its From square: correct shape, unblocked path, and (for
// castling) the right flag plus an unattacked crossing square. It does not
// check whose turn it is or king safety — see IsLegal for the full
// composition.
func IsPossible(p *Position, move Move) bool {
	for _, candidate := range GeneratePseudoLegalForSquare(p, move.From) {
		if candidate.To == move.To {
			return true
		}
	}
	return false
}

// IsLegal composes the full legality predicate:
//  1. IsPossible(move)
//  2. the target square does not hold a king
//  3. the mover's color matches the side to move
//  4. (pawn-specific shape/blocking rules — enforced by generation itself)
//  5. (castling right — enforced by generation itself)
//  6. applying the move does not leave the mover's own king attacked, and a
//     castling king does not start in check
//
// IsLegal never mutates p: it works against a throwaway clone, since move
// generation may call it while iterating the caller's own position.
func IsLegal(p *Position, move Move) bool {
	mover := p.Get(move.From)
	if mover.IsEmpty() {
		return false
	}
	if mover.Color != p.SideToMove {
		return false
	}
	target := p.Get(move.To)
	if target.Kind == King {
		return false
	}
	if !IsPossible(p, move) {
		return false
	}
	// castlingMoves does not look at the king's starting square, so
	// castling out of check is rejected here.
	if mover.Kind == King && abs8(move.To.File-move.From.File) == 2 && p.InCheck[mover.Color] {
		return false
	}

	clone := p.Copy()
	clone.ApplyMove(move, false)
	return !IsAttacked(clone, clone.KingSquare[mover.Color], mover.Color.Opponent())
}

// GenerateLegalMoves returns every legal move for the side to move.
func GenerateLegalMoves(p *Position) []Move {
	var moves []Move
	for _, coord := range p.PieceList(p.SideToMove) {
		for _, candidate := range GeneratePseudoLegalForSquare(p, coord) {
			if IsLegal(p, candidate) {
				moves = append(moves, candidate)
			}
		}
	}
	return moves
}

// IsCapture reports whether move captures a piece, including en passant.
func IsCapture(p *Position, move Move) bool {
	target := p.Get(move.To)
	if !target.IsEmpty() {
		return true
	}
	mover := p.Get(move.From)
	return mover.Kind == Pawn && move.From.File != move.To.File
}

// InCheckmate reports whether the side to move is checkmated.
func InCheckmate(p *Position) bool {
	return p.InCheck[p.SideToMove] && len(GenerateLegalMoves(p)) == 0
}

// InStalemate reports whether the side to move is stalemated.
func InStalemate(p *Position) bool {
	return !p.InCheck[p.SideToMove] && len(GenerateLegalMoves(p)) == 0
}
