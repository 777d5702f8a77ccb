package engine

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"chessengine/position"
)

// DefaultMaxDepth bounds the iterative-deepening loop in the absence of an
// earlier time-budget cutoff.
const DefaultMaxDepth = 32

// GameResultKind is the game-over state a position can settle into.
type GameResultKind int

const (
	ResultNone GameResultKind = iota
	ResultWhiteWin
	ResultBlackWin
	ResultDraw
)

func (r GameResultKind) String() string {
	switch r {
	case ResultWhiteWin:
		return "white wins"
	case ResultBlackWin:
		return "black wins"
	case ResultDraw:
		return "draw"
	default:
		return "none"
	}
}

// Engine is the consumer-visible facade: it owns the current position, the
// shared transposition table, the opening book, and the worker pool, and
// orchestrates the book-then-search order a move request goes through.
type Engine struct {
	mu  sync.Mutex
	pos *position.Position

	tt   *TranspositionTable
	book *OpeningBook
	pool *WorkerPool
	rng  *rand.Rand

	budget   time.Duration
	maxDepth int

	// thinking and searchRootHash are lock-free status the poller can read
	// without contending with pos's mutex.
	thinking       atomic.Bool
	searchRootHash atomic.Uint64
}

// NewEngine loads the opening book (fatal on failure), initializes the
// transposition table, and starts the worker pool sized per
// CHESS_NPROC/runtime.NumCPU. An empty bookPath falls back to
// DefaultBookPath.
func NewEngine(bookPath string) *Engine {
	if bookPath == "" {
		bookPath = DefaultBookPath
	}
	return &Engine{
		pos:      position.NewInitialPosition(),
		tt:       NewTranspositionTable(DefaultTTSlots),
		book:     mustLoadOpeningBook(bookPath),
		pool:     NewWorkerPool(WorkerCount()),
		rng:      newBookRand(),
		budget:   DefaultSearchBudget,
		maxDepth: DefaultMaxDepth,
	}
}

// Close tears down the worker pool.
func (e *Engine) Close() {
	e.pool.Shutdown()
}

// NewGame clears the TT and resets to the standard starting position.
func (e *Engine) NewGame() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tt.Clear()
	e.pos = position.NewInitialPosition()
}

// LoadPositionFromFEN replaces the current position, or reports a parse
// error and leaves the engine's state untouched.
func (e *Engine) LoadPositionFromFEN(fen string) error {
	p, err := position.ParseFEN(fen)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.pos = p
	e.mu.Unlock()
	return nil
}

// SerializePositionToFEN returns the current position's FEN.
func (e *Engine) SerializePositionToFEN() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return position.SerializeFEN(e.pos)
}

// SubmitHumanMove validates and applies a human move, or rejects it
// silently so the caller can re-prompt.
func (e *Engine) SubmitHumanMove(from, to position.Coordinate) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	move := position.Move{From: from, To: to}
	if !position.IsLegal(e.pos, move) {
		return false
	}
	e.pos.ApplyMove(move, true)
	return true
}

// RequestEngineMove protects the root hash, tries the opening book while
// ply <= 5, and otherwise dispatches iterative deepening asynchronously
// across the worker pool. A no-op while a search is already in flight.
func (e *Engine) RequestEngineMove() {
	if !e.thinking.CompareAndSwap(false, true) {
		return
	}

	e.mu.Lock()
	root := e.pos.Copy()
	e.mu.Unlock()
	e.searchRootHash.Store(root.Hash)

	e.tt.SetProtected(root.Hash)

	if root.Ply <= 5 {
		if _, ok := e.book.TryBookMove(root, e.tt, e.rng); ok {
			e.thinking.Store(false)
			return
		}
	}

	go e.runIterativeDeepening(root)
}

// runIterativeDeepening is the iterative-deepening + Lazy-SMP dispatch loop:
// a root-search task per depth, enqueued on the worker pool so the pool's
// own concurrency (when worker count > 1) lets later depths' tasks run
// alongside earlier ones, sharing the TT.
func (e *Engine) runIterativeDeepening(root *position.Position) {
	budget := NewTimeBudget(e.budget)
	deadline := budget.Deadline()

	var wg sync.WaitGroup
	for depth := 1; depth <= e.maxDepth; depth++ {
		if budget.Expired() {
			break
		}
		d := depth
		wg.Add(1)
		e.pool.Submit(func() {
			defer wg.Done()
			RootSearch(root, d, deadline, e.tt)
		})
	}
	wg.Wait()
	e.thinking.Store(false)
}

// PollEngineMove returns the move found so far at the root hash once the
// search has stopped dispatching new depths, or (NullMove, false) while
// still searching. A finished search that left no move at the root (the
// side to move has no legal moves) reports (NullMove, true). A successful
// poll with a real move also advances the engine's own position by that
// move, since nothing else in this package's API is positioned to do so.
func (e *Engine) PollEngineMove() (position.Move, bool) {
	if e.thinking.Load() {
		return position.NullMove, false
	}
	hash := e.searchRootHash.Load()

	entry, ok := e.tt.Get(hash)
	if !ok || entry.Move.IsNull() {
		return position.NullMove, true
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pos.Hash == hash {
		e.pos.ApplyMove(entry.Move, true)
	}
	return entry.Move, true
}

// GameResult computes the terminal state from checkmate/stalemate
// predicates. The 50-move rule and threefold repetition are not tracked.
func (e *Engine) GameResult() GameResultKind {
	e.mu.Lock()
	defer e.mu.Unlock()
	if position.InCheckmate(e.pos) {
		if e.pos.SideToMove == position.White {
			return ResultBlackWin
		}
		return ResultWhiteWin
	}
	if position.InStalemate(e.pos) {
		return ResultDraw
	}
	return ResultNone
}
