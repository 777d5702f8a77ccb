package engine

import "chessengine/position"

// OrderMoves buckets a side's legal moves: the PV move (if present and
// legal for this position) first, then captures (including en passant) in
// generation order, then the remaining quiet moves in generation order. The
// PV move is deduplicated out of whichever bucket it would otherwise land
// in.
func OrderMoves(p *position.Position, legalMoves []position.Move, pvMove position.Move) []position.Move {
	ordered := make([]position.Move, 0, len(legalMoves))

	havePV := false
	if !pvMove.IsNull() {
		for _, move := range legalMoves {
			if move == pvMove {
				havePV = true
				break
			}
		}
	}
	if havePV {
		ordered = append(ordered, pvMove)
	}

	var captures, quiets []position.Move
	for _, move := range legalMoves {
		if havePV && move == pvMove {
			continue
		}
		if position.IsCapture(p, move) {
			captures = append(captures, move)
		} else {
			quiets = append(quiets, move)
		}
	}

	ordered = append(ordered, captures...)
	ordered = append(ordered, quiets...)
	return ordered
}
