package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN for the standard initial position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0"

var fenPieceChars = map[rune]Piece{
	'P': {Kind: Pawn, Color: White}, 'N': {Kind: Knight, Color: White},
	'B': {Kind: Bishop, Color: White}, 'R': {Kind: Rook, Color: White},
	'Q': {Kind: Queen, Color: White}, 'K': {Kind: King, Color: White},
	'p': {Kind: Pawn, Color: Black}, 'n': {Kind: Knight, Color: Black},
	'b': {Kind: Bishop, Color: Black}, 'r': {Kind: Rook, Color: Black},
	'q': {Kind: Queen, Color: Black}, 'k': {Kind: King, Color: Black},
}

func fenCharForPiece(p Piece) rune {
	for ch, piece := range fenPieceChars {
		if piece == p {
			return ch
		}
	}
	return '?'
}

// ParseFEN parses a FEN string into a Position. The board field is listed
// rank 8 first down to rank 1, which already matches the engine's
// top-origin convention (rank 0 = black's home = FEN's first-listed rank),
// so no flip is needed here — only the opening-book loader, whose Polyglot
// source format is bottom-origin, needs that mirror.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("invalid FEN %q: expected at least 4 fields", fen)
	}

	p := &Position{}
	p.Clear()

	rows := strings.Split(fields[0], "/")
	if len(rows) != 8 {
		return nil, fmt.Errorf("invalid FEN %q: expected 8 ranks, got %d", fen, len(rows))
	}
	for rank, row := range rows {
		file := 0
		for _, ch := range row {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece, ok := fenPieceChars[ch]
			if !ok {
				return nil, fmt.Errorf("invalid FEN %q: unknown piece char %q", fen, ch)
			}
			if file > 7 {
				return nil, fmt.Errorf("invalid FEN %q: rank %d overflows", fen, rank)
			}
			p.placePiece(NewCoordinate(file, rank), piece)
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("invalid FEN %q: rank %d has %d files, want 8", fen, rank, file)
		}
	}

	switch fields[1] {
	case "w":
		p.SideToMove = White
	case "b":
		p.SideToMove = Black
	default:
		return nil, fmt.Errorf("invalid FEN %q: bad side to move %q", fen, fields[1])
	}

	for _, ch := range fields[2] {
		switch ch {
		case 'K':
			p.Castling |= CastleWhiteKing
		case 'Q':
			p.Castling |= CastleWhiteQueen
		case 'k':
			p.Castling |= CastleBlackKing
		case 'q':
			p.Castling |= CastleBlackQueen
		case '-':
		default:
			return nil, fmt.Errorf("invalid FEN %q: bad castling field %q", fen, fields[2])
		}
	}

	if fields[3] != "-" {
		ep, err := ParseCoordinate(fields[3])
		if err != nil {
			return nil, fmt.Errorf("invalid FEN %q: bad en-passant field %q: %w", fen, fields[3], err)
		}
		// The FEN en-passant square is the skipped square; whichever
		// color is to move owns the right to capture there.
		p.EPFile[p.SideToMove] = ep.File
	}

	if errKing := p.validateSingleKingPerColor(); errKing != nil {
		return nil, fmt.Errorf("invalid FEN %q: %w", fen, errKing)
	}

	p.RebuildHash()
	p.RecomputeCheckFlags()
	return p, nil
}

func (p *Position) validateSingleKingPerColor() error {
	for _, color := range [2]Color{White, Black} {
		count := 0
		for _, sq := range p.PieceList(color) {
			if p.Get(sq).Kind == King {
				count++
				p.KingSquare[color] = sq
			}
		}
		if count != 1 {
			return errors.New("each side must have exactly one king")
		}
	}
	return nil
}

// SerializeFEN renders p back into FEN text. The halfmove clock and 50-move
// bookkeeping are not tracked, so field 5 is always emitted as "0"; field 6
// uses the ply counter to derive a fullmove number.
func SerializeFEN(p *Position) string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.Get(NewCoordinate(file, rank))
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(fenCharForPiece(piece))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank != 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	castling := ""
	if p.Castling&CastleWhiteKing != 0 {
		castling += "K"
	}
	if p.Castling&CastleWhiteQueen != 0 {
		castling += "Q"
	}
	if p.Castling&CastleBlackKing != 0 {
		castling += "k"
	}
	if p.Castling&CastleBlackQueen != 0 {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)

	sb.WriteByte(' ')
	epSet := false
	for _, c := range [2]Color{White, Black} {
		if p.EPFile[c] >= 0 {
			rank := int8(2)
			if c == Black {
				rank = 5
			}
			sb.WriteString(Coordinate{File: p.EPFile[c], Rank: rank}.String())
			epSet = true
			break
		}
	}
	if !epSet {
		sb.WriteByte('-')
	}

	sb.WriteString(" 0 ")
	sb.WriteString(strconv.Itoa(p.Ply/2 + 1))
	return sb.String()
}
