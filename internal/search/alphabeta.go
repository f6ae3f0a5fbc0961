package search

import (
	"context"
	"math"

	"github.com/Mgrdich/TermChess/internal/engine"
	"github.com/Mgrdich/TermChess/internal/evaluator"
)

// AlphaBetaAgent selects moves with fail-hard alpha-beta pruning to a fixed
// depth. The maximizer breaks out of its move loop on a fail-high (alpha >=
// beta); the minimizer breaks out on a fail-low (beta <= alpha) — the
// minimizer side of that pruning was historically left as a no-op here,
// which silently turned the search back into plain minimax, so both
// branches now actually break.
type AlphaBetaAgent struct {
	Eval     evaluator.Evaluator
	MaxDepth int
}

// NewAlphaBetaAgent builds an AlphaBetaAgent searching to maxDepth plies. A
// non-positive maxDepth is clamped to 1, so a misconfigured agent still
// searches instead of silently returning the root's static evaluation.
func NewAlphaBetaAgent(eval evaluator.Evaluator, maxDepth int) *AlphaBetaAgent {
	if maxDepth < 1 {
		maxDepth = 1
	}
	return &AlphaBetaAgent{Eval: eval, MaxDepth: maxDepth}
}

// SelectMove returns the move with the best alpha-beta value for the side
// to move in b.
func (a *AlphaBetaAgent) SelectMove(ctx context.Context, b Board) (engine.Move, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return engine.Move{}, ErrNoLegalMoves
	}

	viewer := b.Turn()
	alpha, beta := math.Inf(-1), math.Inf(1)

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
		val, err := a.search(ctx, b, a.MaxDepth-1, alpha, beta, viewer)
		b.Pop()
		if err != nil {
			return engine.Move{}, err
		}

		if !bestSet || val > bestVal {
			best = m
			bestVal = val
			bestSet = true
		}
		if val > alpha {
			alpha = val
		}
	}

	return best, nil
}

// search returns the alpha-beta value of b, depth plies deep, relative to
// viewer, within window [alpha, beta].
func (a *AlphaBetaAgent) search(ctx context.Context, b Board, depth int, alpha, beta float64, viewer engine.Color) (float64, error) {
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

	if b.Turn() == viewer {
		return a.maximize(ctx, b, moves, depth, alpha, beta, viewer)
	}
	return a.minimize(ctx, b, moves, depth, alpha, beta, viewer)
}

func (a *AlphaBetaAgent) maximize(ctx context.Context, b Board, moves []engine.Move, depth int, alpha, beta float64, viewer engine.Color) (float64, error) {
	best := math.Inf(-1)
	for _, m := range moves {
		if err := b.Push(m); err != nil {
			return 0, err
		}
		val, err := a.search(ctx, b, depth-1, alpha, beta, viewer)
		b.Pop()
		if err != nil {
			return 0, err
		}

		if val > best {
			best = val
		}
		if val > alpha {
			alpha = val
		}
		if alpha >= beta {
			break
		}
	}
	return best, nil
}

func (a *AlphaBetaAgent) minimize(ctx context.Context, b Board, moves []engine.Move, depth int, alpha, beta float64, viewer engine.Color) (float64, error) {
	best := math.Inf(1)
	for _, m := range moves {
		if err := b.Push(m); err != nil {
			return 0, err
		}
		val, err := a.search(ctx, b, depth-1, alpha, beta, viewer)
		b.Pop()
		if err != nil {
			return 0, err
		}

		if val < best {
			best = val
		}
		if val < beta {
			beta = val
		}
		if beta <= alpha {
			break
		}
	}
	return best, nil
}
