package search

import (
	"context"
	"math"

	"github.com/Mgrdich/TermChess/internal/engine"
	"github.com/Mgrdich/TermChess/internal/evaluator"
)

// QuiescenceAgent is AlphaBetaAgent extended with a quiescence search at the
// horizon: instead of trusting the static evaluation of whatever position
// the fixed depth limit happens to land on, it keeps searching "volatile"
// moves (captures, and any move giving check) until the position quiets
// down or QuiescenceDepth is exhausted. This avoids the horizon effect where
// a depth-limited search stops right after a losing capture and never sees
// the recapture.
//
// When the side to move is in check, every legal move is volatile: the only
// way out of check is to play one of them, so none can be skipped just
// because it doesn't capture or check in return (the "general quiescence"
// shape, as opposed to considering captures only).
type QuiescenceAgent struct {
	Eval            evaluator.Evaluator
	MaxDepth        int
	QuiescenceDepth int
}

// NewQuiescenceAgent builds a QuiescenceAgent searching to maxDepth plies
// before handing off to a quiescence search bounded by quiescenceDepth. A
// non-positive maxDepth is clamped to 1 and a negative quiescenceDepth to 0,
// so a misconfigured agent still searches instead of silently returning the
// root's static evaluation.
func NewQuiescenceAgent(eval evaluator.Evaluator, maxDepth, quiescenceDepth int) *QuiescenceAgent {
	if maxDepth < 1 {
		maxDepth = 1
	}
	if quiescenceDepth < 0 {
		quiescenceDepth = 0
	}
	return &QuiescenceAgent{Eval: eval, MaxDepth: maxDepth, QuiescenceDepth: quiescenceDepth}
}

// SelectMove returns the move with the best value for the side to move in
// b, as judged by alpha-beta search extended with quiescence at the
// horizon.
func (a *QuiescenceAgent) SelectMove(ctx context.Context, b Board) (engine.Move, error) {
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

func (a *QuiescenceAgent) search(ctx context.Context, b Board, depth int, alpha, beta float64, viewer engine.Color) (float64, error) {
	if err := checkContext(ctx); err != nil {
		return 0, err
	}

	if b.IsGameOver() {
		return leafValue(a.Eval, b, viewer)
	}

	if depth <= 0 {
		return a.quiesce(ctx, b, a.QuiescenceDepth, alpha, beta, viewer)
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

func (a *QuiescenceAgent) maximize(ctx context.Context, b Board, moves []engine.Move, depth int, alpha, beta float64, viewer engine.Color) (float64, error) {
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

func (a *QuiescenceAgent) minimize(ctx context.Context, b Board, moves []engine.Move, depth int, alpha, beta float64, viewer engine.Color) (float64, error) {
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

// quiesce extends the search past the horizon over volatile moves only. The
// stand-pat value — the static evaluation of the current position, used as
// both the node's floor and its alpha/beta clamp — is computed exactly
// once and reused for both roles, rather than being evaluated separately
// for each. alpha and beta are clamped relative to viewer, the side to move
// at the root of the whole search, never hardcoded to White regardless of
// whose turn it actually is at this node.
func (a *QuiescenceAgent) quiesce(ctx context.Context, b Board, depth int, alpha, beta float64, viewer engine.Color) (float64, error) {
	if err := checkContext(ctx); err != nil {
		return 0, err
	}

	standPat, err := leafValue(a.Eval, b, viewer)
	if err != nil {
		return 0, err
	}

	maximizing := b.Turn() == viewer

	if maximizing {
		if standPat >= beta {
			return standPat, nil
		}
		if standPat > alpha {
			alpha = standPat
		}
	} else {
		if standPat <= alpha {
			return standPat, nil
		}
		if standPat < beta {
			beta = standPat
		}
	}

	if depth <= 0 {
		if maximizing {
			return alpha, nil
		}
		return beta, nil
	}

	moves := a.volatileMoves(b)
	if len(moves) == 0 {
		if maximizing {
			return alpha, nil
		}
		return beta, nil
	}

	for _, m := range moves {
		if err := b.Push(m); err != nil {
			return 0, err
		}
		val, err := a.quiesce(ctx, b, depth-1, alpha, beta, viewer)
		b.Pop()
		if err != nil {
			return 0, err
		}

		if maximizing {
			if val >= beta {
				return val, nil
			}
			if val > alpha {
				alpha = val
			}
		} else {
			if val <= alpha {
				return val, nil
			}
			if val < beta {
				beta = val
			}
		}
	}

	if maximizing {
		return alpha, nil
	}
	return beta, nil
}

// volatileMoves returns the moves a quiescence search should still consider:
// every legal move when the side to move is in check (there is no quiet
// alternative to resolving check), otherwise only captures and moves that
// give check.
func (a *QuiescenceAgent) volatileMoves(b Board) []engine.Move {
	moves := b.LegalMoves()
	if b.InCheck() {
		return moves
	}

	volatile := moves[:0:0]
	for _, m := range moves {
		if b.IsCapture(m) || b.GivesCheck(m) {
			volatile = append(volatile, m)
		}
	}
	return volatile
}
