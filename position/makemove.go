package position

// ApplyMove performs the full state mutation for playing move on p: moving
// the piece, handling captures (including en passant), promoting pawns that
// reach the last rank, moving the rook on castling, updating castling
// rights and the en-passant target, and flipping the side to move. It
// assumes move is at least pseudo-legal for the piece on its From square
// (callers such as IsLegal and the search pass moves straight from
// GeneratePseudoLegalForSquare / GenerateLegalMoves); it does not
// re-validate legality itself.
//
// When computeHash is true the Zobrist hash is recomputed from scratch
// after the move. When false, Hash is set to 0, the sentinel for "unhashed
// scratch state" used by legality probes that only care about attack
// detection.
func (p *Position) ApplyMove(move Move, computeHash bool) {
	mover := p.Get(move.From)
	color := mover.Color
	opponent := color.Opponent()

	isCastle := mover.Kind == King && abs8(move.To.File-move.From.File) == 2
	isEnPassant := mover.Kind == Pawn && move.To.File != move.From.File && p.Get(move.To).IsEmpty()

	// En-passant target bookkeeping: clear both, then possibly set one.
	p.EPFile[White] = -1
	p.EPFile[Black] = -1

	if isEnPassant {
		capturedSq := NewCoordinate(int(move.To.File), int(move.From.Rank))
		p.RelocatePiece(opponent, capturedSq, NullCoordinate)
		p.Put(capturedSq, EmptySquare)
	} else {
		target := p.Get(move.To)
		if !target.IsEmpty() {
			p.RelocatePiece(opponent, move.To, NullCoordinate)
			p.removeCastlingRightsForCapturedRook(move.To, opponent)
		}
	}

	// Move the piece on the grid.
	p.Put(move.From, EmptySquare)
	finalPiece := mover
	if mover.Kind == Pawn && move.To.Rank == pawnPromotionRank(color) {
		finalPiece = Piece{Kind: Queen, Color: color}
	}
	p.Put(move.To, finalPiece)
	p.RelocatePiece(color, move.From, move.To)

	if mover.Kind == King {
		p.KingSquare[color] = move.To
	}

	// Castling-right removal: king moves, rook moves from starting
	// squares, or captures of rooks on starting squares (handled above
	// for the capture case).
	if mover.Kind == King {
		if color == White {
			p.Castling &^= CastleWhiteKing | CastleWhiteQueen
		} else {
			p.Castling &^= CastleBlackKing | CastleBlackQueen
		}
	}
	if mover.Kind == Rook {
		p.removeCastlingRightForRookSquare(move.From, color)
	}

	// Castling moves the rook too.
	if isCastle {
		homeRank := move.From.Rank
		var rookFrom, rookTo Coordinate
		if move.To.File == 6 {
			rookFrom = NewCoordinate(7, int(homeRank))
			rookTo = NewCoordinate(5, int(homeRank))
		} else {
			rookFrom = NewCoordinate(0, int(homeRank))
			rookTo = NewCoordinate(3, int(homeRank))
		}
		rook := p.Get(rookFrom)
		p.Put(rookFrom, EmptySquare)
		p.Put(rookTo, rook)
		p.RelocatePiece(color, rookFrom, rookTo)
	}

	// New en-passant target: a pawn double push sets the file for the
	// opponent, valid for exactly the opponent's next move.
	if mover.Kind == Pawn && abs8(move.To.Rank-move.From.Rank) == 2 {
		p.EPFile[opponent] = move.To.File
	}

	p.SideToMove = opponent
	p.Ply++
	p.RecomputeCheckFlags()

	if computeHash {
		p.RebuildHash()
	} else {
		p.Hash = 0
	}
}

func (p *Position) removeCastlingRightForRookSquare(sq Coordinate, color Color) {
	homeRank := int8(7)
	if color == Black {
		homeRank = 0
	}
	if sq.Rank != homeRank {
		return
	}
	kingSide, queenSide := rightsFor(color)
	switch sq.File {
	case 7:
		p.Castling &^= kingSide
	case 0:
		p.Castling &^= queenSide
	}
}

func (p *Position) removeCastlingRightsForCapturedRook(sq Coordinate, ownerColor Color) {
	p.removeCastlingRightForRookSquare(sq, ownerColor)
}

func abs8(v int8) int8 {
	if v < 0 {
		return -v
	}
	return v
}
