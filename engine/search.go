package engine

import (
	"math"
	"time"

	"chessengine/position"
)

// Poison is the INT_MIN sentinel that aborts a search branch on timeout;
// legitimate scores are produced in (Poison, math.MaxInt32]. Negations must
// never be applied to Poison directly — Negamax checks for it before
// negating a child's value.
const (
	Poison          = math.MinInt32
	CheckmateScore  = 1000000
	negInfBestValue = -(1 << 30)
)

// Negamax runs alpha-beta search with TT lookups, terminal detection, a
// leaf-evaluation cutoff, and cooperative cancellation via a wall-clock
// deadline. The returned value is from p's side-to-move's perspective.
func Negamax(p *position.Position, alpha, beta, depth int, deadline time.Time, tt *TranspositionTable) int {
	alphaInitial := alpha
	hash := p.Hash

	if entry, ok := tt.Get(hash); ok && entry.Depth >= depth {
		switch entry.Bound {
		case BoundExact:
			return entry.Value
		case BoundLower:
			if entry.Value > alpha {
				alpha = entry.Value
			}
		case BoundUpper:
			if entry.Value < beta {
				beta = entry.Value
			}
		}
		if alpha >= beta {
			return entry.Value
		}
	}

	legalMoves := position.GenerateLegalMoves(p)
	if len(legalMoves) == 0 {
		if p.InCheck[p.SideToMove] {
			return -CheckmateScore
		}
		return 0
	}

	if depth == 0 {
		sign := 1
		if p.SideToMove == position.Black {
			sign = -1
		}
		return Evaluate(p) * sign
	}

	if !deadline.IsZero() && time.Now().After(deadline) {
		return Poison
	}

	var ttMove position.Move
	if entry, ok := tt.Get(hash); ok {
		ttMove = entry.Move
	}
	ordered := OrderMoves(p, legalMoves, ttMove)

	bestValue := negInfBestValue
	var bestMove position.Move
	for _, move := range ordered {
		child := p.Copy()
		child.ApplyMove(move, true)

		childValue := Negamax(child, -beta, -alpha, depth-1, deadline, tt)
		if childValue == Poison {
			return Poison
		}
		value := -childValue

		if value > bestValue {
			bestValue = value
			bestMove = move
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			break
		}
	}

	bound := BoundExact
	if bestValue <= alphaInitial {
		bound = BoundUpper
	} else if bestValue >= beta {
		bound = BoundLower
	}
	tt.Put(Entry{Hash: hash, Move: bestMove, Depth: depth, Value: bestValue, Bound: bound})

	return bestValue
}

// RootSearch runs Negamax with a full window at the given depth, then
// writes an Exact entry at the root hash with whatever move Negamax
// settled on, so later iterations and the facade's polling can rely on the
// root slot holding an exact result rather than whatever bound Negamax's
// own cutoff logic produced. The write goes through Put, so an entry
// already stored at the root from a deeper search is kept instead.
func RootSearch(p *position.Position, depth int, deadline time.Time, tt *TranspositionTable) int {
	value := Negamax(p, -CheckmateScore-1, CheckmateScore+1, depth, deadline, tt)
	if value == Poison {
		return Poison
	}
	if entry, ok := tt.Get(p.Hash); ok {
		tt.Put(Entry{Hash: p.Hash, Move: entry.Move, Depth: depth, Value: value, Bound: BoundExact})
	}
	return value
}
