// Package evaluator implements position evaluators for the search agents in
// internal/search: a pure-material evaluator and an adapter around an
// external UCI engine subprocess.
package evaluator

import (
	"fmt"

	"github.com/Mgrdich/TermChess/internal/engine"
	"github.com/Mgrdich/TermChess/internal/score"
)

// Board is the black-box capability an evaluator needs from a position: its
// side to move, whether the game has ended, whether that side is in check,
// and a FEN rendering. internal/engine.Board satisfies this directly.
type Board interface {
	Turn() engine.Color
	IsGameOver() bool
	InCheck() bool
	ToFEN() string
}

// Evaluator scores a position from the point of view of the side to move.
type Evaluator interface {
	Evaluate(b Board) (score.PovScore, error)
	Quit() error
}

// Error wraps an evaluator failure so callers can distinguish it from other
// search errors (engine crash, malformed protocol response, and so on).
type Error struct {
	Evaluator string
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("evaluator %s failed: %v", e.Evaluator, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
