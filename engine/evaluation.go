package engine

import "chessengine/position"

// Material and positional weights. These are package vars rather than
// consts so a future tuner has somewhere to write even though no tuner
// ships here.
var (
	PieceValue = map[position.Kind]int{
		position.King:   20000,
		position.Queen:  900,
		position.Rook:   500,
		position.Bishop: 330,
		position.Knight: 320,
		position.Pawn:   100,
	}

	CheckBonus         = 30
	CastlingRightBonus = 1
	KingNeighborBonus  = 10
	CentralInnerBonus  = 5
	CentralOuterBonus  = 2
)

// Evaluate returns an integer score from white's perspective: positive
// favors white. It assumes the position is non-terminal; checkmate and
// stalemate are detected by the search, not here.
func Evaluate(p *position.Position) int {
	score := 0

	for _, coord := range p.PieceList(position.White) {
		score += PieceValue[p.Get(coord).Kind]
	}
	for _, coord := range p.PieceList(position.Black) {
		score -= PieceValue[p.Get(coord).Kind]
	}

	if p.InCheck[position.White] {
		score -= CheckBonus
	}
	if p.InCheck[position.Black] {
		score += CheckBonus
	}

	if p.HasCastlingRight(position.White, true) {
		score += CastlingRightBonus
	}
	if p.HasCastlingRight(position.White, false) {
		score += CastlingRightBonus
	}
	if p.HasCastlingRight(position.Black, true) {
		score -= CastlingRightBonus
	}
	if p.HasCastlingRight(position.Black, false) {
		score -= CastlingRightBonus
	}

	score += kingNeighborScore(p, position.White)
	score -= kingNeighborScore(p, position.Black)

	score += centralOccupationScore(p, position.White)
	score -= centralOccupationScore(p, position.Black)

	return score
}

func kingNeighborScore(p *position.Position, color position.Color) int {
	king := p.KingSquare[color]
	count := 0
	for df := int8(-1); df <= 1; df++ {
		for dr := int8(-1); dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			sq := king.Add(df, dr)
			if !sq.OnBoard() {
				continue
			}
			piece := p.Get(sq)
			if !piece.IsEmpty() && piece.Color == color {
				count++
			}
		}
	}
	return count * KingNeighborBonus
}

// centralOccupationScore scores color's pieces in the 4x4 central region
// (files/ranks 2-5): the inner 2x2 squares (files/ranks 3-4) each score
// CentralInnerBonus, the surrounding outer ring of that region scores
// CentralOuterBonus.
func centralOccupationScore(p *position.Position, color position.Color) int {
	score := 0
	for _, coord := range p.PieceList(color) {
		if coord.File < 2 || coord.File > 5 || coord.Rank < 2 || coord.Rank > 5 {
			continue
		}
		if coord.File >= 3 && coord.File <= 4 && coord.Rank >= 3 && coord.Rank <= 4 {
			score += CentralInnerBonus
		} else {
			score += CentralOuterBonus
		}
	}
	return score
}
