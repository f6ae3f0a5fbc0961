// Package search implements move-selection agents that walk a position's
// game tree to a bounded depth and choose the move judged best under an
// Evaluator: plain minimax, alpha-beta pruning, and alpha-beta extended with
// a quiescence search at the horizon.
//
// Every agent scores nodes from a single fixed viewpoint: the side to move
// at the root of the search. That score is produced by score.ToFloat, the
// one place a PovScore is ever turned into a comparable float64, so no
// agent accidentally compares numbers relative to two different sides.
package search

import (
	"context"
	"errors"

	"github.com/Mgrdich/TermChess/internal/engine"
	"github.com/Mgrdich/TermChess/internal/evaluator"
	"github.com/Mgrdich/TermChess/internal/score"
)

// Board is the black-box capability a search agent needs from a position.
// *engine.Board satisfies this directly.
type Board interface {
	LegalMoves() []engine.Move
	Push(m engine.Move) error
	Pop()
	Turn() engine.Color
	IsGameOver() bool
	InCheck() bool
	GivesCheck(m engine.Move) bool
	IsCapture(m engine.Move) bool
	ToFEN() string
}

// ErrNoLegalMoves is returned by SelectMove when the position has no moves
// to choose from (checkmate or stalemate).
var ErrNoLegalMoves = errors.New("search: no legal moves available")

// Agent selects a move for the side to move in a position.
type Agent interface {
	SelectMove(ctx context.Context, b Board) (engine.Move, error)
}

// leafValue evaluates b and converts the result to a float64 relative to
// viewer. It is the only place plain nodes (not quiescence stand-pat nodes)
// turn a PovScore into a number, so every agent's leaf handling stays
// consistent.
func leafValue(eval evaluator.Evaluator, b Board, viewer engine.Color) (float64, error) {
	pov, err := eval.Evaluate(b)
	if err != nil {
		return 0, err
	}
	return score.ToFloat(pov, viewer), nil
}

// checkContext reports whether ctx has been cancelled.
func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
