package position

import "testing"

func TestCastlingKingSideAvailable(t *testing.T) {
	p, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 0")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := GeneratePseudoLegalForSquare(p, NewCoordinate(4, 7))
	found := false
	for _, m := range moves {
		if m.To == NewCoordinate(6, 7) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected king-side castling move e1g1 to be generated")
	}
}

func TestCastlingBlockedByAttackedCrossingSquare(t *testing.T) {
	// Black rook on f8 attacks f1, the square the white king crosses.
	p, err := ParseFEN("k4r2/8/8/8/8/8/8/4K2R w K - 0 0")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	for _, m := range GeneratePseudoLegalForSquare(p, NewCoordinate(4, 7)) {
		if m.To == NewCoordinate(6, 7) {
			t.Fatalf("king-side castling should be blocked: f1 is attacked")
		}
	}
}

func TestCastlingQueenSideIgnoresBFileAttack(t *testing.T) {
	// Black rook on b8 attacks b1, which the castling safety check
	// intentionally exempts.
	p, err := ParseFEN("1r2k3/8/8/8/8/8/8/R3K3 w Q - 0 0")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	found := false
	for _, m := range GeneratePseudoLegalForSquare(p, NewCoordinate(4, 7)) {
		if m.To == NewCoordinate(2, 7) {
			found = true
		}
	}
	if !found {
		t.Fatalf("queen-side castling should be legal despite b1 being attacked")
	}
}

func TestEnPassantCapture(t *testing.T) {
	p, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	move := Move{From: NewCoordinate(4, 3), To: NewCoordinate(3, 2)}
	if !IsLegal(p, move) {
		t.Fatalf("expected e5d6 en-passant capture to be legal")
	}
	clone := p.Copy()
	clone.ApplyMove(move, true)
	if !clone.Get(NewCoordinate(3, 3)).IsEmpty() {
		t.Fatalf("captured black pawn on d5 should be removed after en passant")
	}
	if clone.Get(NewCoordinate(3, 2)) != (Piece{Kind: Pawn, Color: White}) {
		t.Fatalf("white pawn should land on d6")
	}
}

func TestPawnPromotionToQueen(t *testing.T) {
	p, err := ParseFEN("8/P6k/8/8/8/8/7K/8 w - - 0 0")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	move := Move{From: NewCoordinate(0, 1), To: NewCoordinate(0, 0)}
	p.ApplyMove(move, true)
	if p.Get(NewCoordinate(0, 0)) != (Piece{Kind: Queen, Color: White}) {
		t.Fatalf("pawn reaching the last rank should promote to queen")
	}
}

func TestCheckmateDetection(t *testing.T) {
	// Fool's mate position: black's queen on h4 mates the king on e1.
	p, err := ParseFEN("rnb1kbnr/pppp1ppp/8/8/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !InCheckmate(p) {
		t.Fatalf("expected checkmate")
	}
}

func TestStalemateDetection(t *testing.T) {
	// Classic king-in-corner stalemate: white king a8, black king c7, black
	// queen b6, white to move with no legal moves and not in check.
	p, err := ParseFEN("K7/2k5/1q6/8/8/8/8/8 w - - 0 0")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !InStalemate(p) {
		t.Fatalf("expected stalemate")
	}
}

func TestCastlingRightsRevokedByRookCapture(t *testing.T) {
	p, err := ParseFEN("4k2r/8/8/8/8/8/8/R3K2R b K - 0 0")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	// Black rook captures the white rook on h1, which should strip white's
	// king-side castling right even though white's king never moved.
	move := Move{From: NewCoordinate(7, 0), To: NewCoordinate(7, 7)}
	if !IsLegal(p, move) {
		t.Fatalf("expected h8h1 rook capture to be legal")
	}
	p.ApplyMove(move, true)
	if p.HasCastlingRight(White, true) {
		t.Fatalf("white king-side castling right should be revoked after its rook is captured")
	}
}

func TestCastlingOutOfCheckGapIsPreserved(t *testing.T) {
	// The king on e1 starts in check from the rook on e8. castlingMoves
	// never checks the king's own starting square, so the castling move is
	// still generated (the gap is preserved in IsPossible); IsLegal is what
	// rejects castling out of check.
	p, err := ParseFEN("k3r3/8/8/8/8/8/8/4K2R w K - 0 0")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	move := Move{From: NewCoordinate(4, 7), To: NewCoordinate(6, 7)}
	if !IsPossible(p, move) {
		t.Fatalf("expected castlingMoves to generate e1g1 without checking the king's own square")
	}
	if IsLegal(p, move) {
		t.Fatalf("expected IsLegal to reject castling out of check")
	}
}
