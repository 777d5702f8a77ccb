package position

// CastlingRights is a 4-bit mask of per-color, per-wing castling
// availability.
type CastlingRights uint8

const (
	CastleWhiteKing CastlingRights = 1 << iota
	CastleWhiteQueen
	CastleBlackKing
	CastleBlackQueen
)

// rightsFor returns the king-side/queen-side flags for a color.
func rightsFor(c Color) (kingSide, queenSide CastlingRights) {
	if c == White {
		return CastleWhiteKing, CastleWhiteQueen
	}
	return CastleBlackKing, CastleBlackQueen
}

const maxPieces = 16

// Position is the full board model: an 8x8 grid, side to move,
// castling/en-passant flags, cached king squares and check flags, a ply
// counter, the incremental Zobrist hash, and a bounded per-color piece
// list. It contains no pointers or slices, so `dst := *src` is a correct
// deep copy — this is what Copy does.
type Position struct {
	grid [8][8]Piece

	SideToMove Color
	Castling   CastlingRights

	// EPFile[c] holds the file (0-7) a pawn of color c may capture en
	// passant this ply, or -1 if none. At most one entry is non -1 at a
	// time: it is set for the opponent of whichever side just played a
	// double pawn push, and cleared on any other move.
	EPFile [2]int8

	KingSquare  [2]Coordinate
	InCheck     [2]bool
	Ply         int
	Hash        uint64

	pieceList  [2][maxPieces]Coordinate
	pieceCount [2]int
}

// Get returns the piece occupying c, or EmptySquare if c is off-board.
func (p *Position) Get(c Coordinate) Piece {
	if !c.OnBoard() {
		return EmptySquare
	}
	return p.grid[c.File][c.Rank]
}

// Put places piece on c, overwriting whatever was there without touching
// the piece list, king cache, check flags or hash. Callers that need those
// kept consistent should go through RelocatePiece / ApplyMove instead; Put
// is the low-level primitive they (and FEN loading) build on.
func (p *Position) Put(c Coordinate, piece Piece) {
	if !c.OnBoard() {
		return
	}
	p.grid[c.File][c.Rank] = piece
}

// Clear empties the board and resets all derived state to its zero value.
func (p *Position) Clear() {
	*p = Position{}
	p.EPFile = [2]int8{-1, -1}
}

// Copy returns a deep copy. Because Position holds no pointers or slices,
// a plain value copy already means the two boards share no state.
func (p *Position) Copy() *Position {
	cp := *p
	return &cp
}

// pieceListAppend adds coord to color's piece list. Panics if the list is
// already full, which would indicate a corrupt board (more than 16 pieces
// of one color).
func (p *Position) pieceListAppend(color Color, coord Coordinate) {
	idx := p.pieceCount[color]
	if idx >= maxPieces {
		panic("position: piece list overflow")
	}
	p.pieceList[color][idx] = coord
	p.pieceCount[color] = idx + 1
}

// pieceListRemove deletes the first occurrence of coord from color's piece
// list, compacting the slot gap.
func (p *Position) pieceListRemove(color Color, coord Coordinate) {
	n := p.pieceCount[color]
	for i := 0; i < n; i++ {
		if p.pieceList[color][i] == coord {
			p.pieceList[color][i] = p.pieceList[color][n-1]
			p.pieceList[color][n-1] = NullCoordinate
			p.pieceCount[color] = n - 1
			return
		}
	}
}

// RelocatePiece moves the piece-list entry for color from `from` to `to`.
// to == NullCoordinate denotes a capture (the piece is removed from the
// list entirely). The grid itself is not touched; callers update it
// separately (ApplyMove does both in the right order).
func (p *Position) RelocatePiece(color Color, from, to Coordinate) {
	n := p.pieceCount[color]
	for i := 0; i < n; i++ {
		if p.pieceList[color][i] == from {
			if to.IsNull() {
				p.pieceList[color][i] = p.pieceList[color][n-1]
				p.pieceList[color][n-1] = NullCoordinate
				p.pieceCount[color] = n - 1
			} else {
				p.pieceList[color][i] = to
			}
			return
		}
	}
}

// PieceList returns the live (non-NULL) coordinates for color.
func (p *Position) PieceList(color Color) []Coordinate {
	return p.pieceList[color][:p.pieceCount[color]]
}

// placePiece is the FEN/initial-setup primitive: it sets the grid cell,
// appends to the piece list, and tracks the king cache. It does not touch
// the Zobrist hash; callers rehash afterwards via RebuildHash.
func (p *Position) placePiece(c Coordinate, piece Piece) {
	p.grid[c.File][c.Rank] = piece
	p.pieceListAppend(piece.Color, c)
	if piece.Kind == King {
		p.KingSquare[piece.Color] = c
	}
}

// NewInitialPosition returns the standard chess starting position.
func NewInitialPosition() *Position {
	p := &Position{}
	p.Clear()
	p.Castling = CastleWhiteKing | CastleWhiteQueen | CastleBlackKing | CastleBlackQueen
	p.SideToMove = White

	backRank := [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		p.placePiece(NewCoordinate(file, 7), Piece{Kind: backRank[file], Color: White})
		p.placePiece(NewCoordinate(file, 0), Piece{Kind: backRank[file], Color: Black})
		p.placePiece(NewCoordinate(file, 6), Piece{Kind: Pawn, Color: White})
		p.placePiece(NewCoordinate(file, 1), Piece{Kind: Pawn, Color: Black})
	}
	p.RebuildHash()
	p.InCheck[White] = IsAttacked(p, p.KingSquare[White], Black)
	p.InCheck[Black] = IsAttacked(p, p.KingSquare[Black], White)
	return p
}

// HasCastlingRight reports whether color still has the right to castle on
// the given wing.
func (p *Position) HasCastlingRight(color Color, kingSide bool) bool {
	k, q := rightsFor(color)
	if kingSide {
		return p.Castling&k != 0
	}
	return p.Castling&q != 0
}
