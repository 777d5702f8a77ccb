package position

import "testing"

func TestIsAttackedByPawn(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/8/3P4/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}
	// White pawn on d4 (file 3, rank 4) attacks c5 and e5 (rank 3).
	for _, sq := range []string{"c5", "e5"} {
		coord, err := ParseCoordinate(sq)
		if err != nil {
			t.Fatalf("parse coordinate %q: %v", sq, err)
		}
		if !IsAttacked(p, coord, White) {
			t.Fatalf("expected white pawn on d4 to attack %s", sq)
		}
	}
	// It does not attack d5 (straight ahead) or c4/e4 (same rank).
	for _, sq := range []string{"d5", "c4", "e4"} {
		coord, err := ParseCoordinate(sq)
		if err != nil {
			t.Fatalf("parse coordinate %q: %v", sq, err)
		}
		if IsAttacked(p, coord, White) {
			t.Fatalf("expected white pawn on d4 not to attack %s", sq)
		}
	}
}

func TestBlackKingInCheckFromPawn(t *testing.T) {
	p, err := ParseFEN("8/8/8/4k3/3P4/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}
	if !p.InCheck[Black] {
		t.Fatalf("expected black king on e5 to be in check from the white pawn on d4")
	}
}

func TestWhiteKingInCheckFromBlackPawn(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/3p4/4K3/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatalf("parse FEN: %v", err)
	}
	if !p.InCheck[White] {
		t.Fatalf("expected white king on e4 to be in check from the black pawn on d5")
	}
}
