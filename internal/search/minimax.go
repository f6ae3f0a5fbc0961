package search

import (
	"context"

	"github.com/Mgrdich/TermChess/internal/engine"
	"github.com/Mgrdich/TermChess/internal/evaluator"
)

// MinimaxAgent selects moves with plain minimax: full-width recursion to a
// fixed depth, no pruning, no move ordering. It exists as the baseline the
// other agents are measured against.
type MinimaxAgent struct {
	Eval     evaluator.Evaluator
	MaxDepth int
}

// NewMinimaxAgent builds a MinimaxAgent searching to maxDepth plies. A
// non-positive maxDepth is clamped to 1: a depth-limited search that never
// looks at a single reply isn't a search, just a static evaluation of the
// root, so callers never silently get that instead of what they asked for.
func NewMinimaxAgent(eval evaluator.Evaluator, maxDepth int) *MinimaxAgent {
	if maxDepth < 1 {
		maxDepth = 1
	}
	return &MinimaxAgent{Eval: eval, MaxDepth: maxDepth}
}

// SelectMove returns the move with the best minimax value for the side to
// move in b. Among equally-valued moves, the first one encountered in
// b.LegalMoves() order wins: the comparison is a strict >, never >=.
func (a *MinimaxAgent) SelectMove(ctx context.Context, b Board) (engine.Move, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return engine.Move{}, ErrNoLegalMoves
	}

	viewer := b.Turn()

	var best engine.Move
	bestSet := false
	var bestVal float64

	for _, m := range moves {
		if err := checkContext(ctx); err != nil {
			return engine.Move{}, err
		}

		if err := b.Push(m); err != nil {
			return engine.Move{}, err
		}
		val, err := a.minimax(ctx, b, a.MaxDepth-1, viewer)
		b.Pop()
		if err != nil {
			return engine.Move{}, err
		}

		if !bestSet || val > bestVal {
			best = m
			bestVal = val
			bestSet = true
		}
	}

	return best, nil
}

// minimax returns the value of b, depth plies deep, relative to viewer. b's
// side to move maximizes when it is viewer, minimizes otherwise.
func (a *MinimaxAgent) minimax(ctx context.Context, b Board, depth int, viewer engine.Color) (float64, error) {
	if err := checkContext(ctx); err != nil {
		return 0, err
	}

	if depth <= 0 || b.IsGameOver() {
		return leafValue(a.Eval, b, viewer)
	}

	moves := b.LegalMoves()
	if len(moves) == 0 {
		return leafValue(a.Eval, b, viewer)
	}

	maximizing := b.Turn() == viewer

	var best float64
	set := false

	for _, m := range moves {
		if err := b.Push(m); err != nil {
			return 0, err
		}
		val, err := a.minimax(ctx, b, depth-1, viewer)
		b.Pop()
		if err != nil {
			return 0, err
		}

		switch {
		case !set:
			best = val
			set = true
		case maximizing && val > best:
			best = val
		case !maximizing && val < best:
			best = val
		}
	}

	return best, nil
}
