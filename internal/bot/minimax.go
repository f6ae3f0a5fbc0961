package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mgrdich/TermChess/internal/engine"
	"github.com/Mgrdich/TermChess/internal/evaluator"
	"github.com/Mgrdich/TermChess/internal/search"
)

// minimaxEngine implements the Medium and Hard bots on top of package
// search: Medium searches with plain alpha-beta pruning, Hard additionally
// extends the horizon with a quiescence search. Neither does iterative
// deepening or move ordering; the only tuning knobs are search depth,
// quiescence depth, and the time limit each SelectMove call gets.
type minimaxEngine struct {
	name            string
	difficulty      Difficulty
	maxDepth        int
	quiescenceDepth int
	timeLimit       time.Duration
	eval            evaluator.Evaluator
	closed          bool
}

// agent builds the search.Agent for this engine's current difficulty and
// depth settings. Rebuilt per call rather than cached: these are small
// value holders and Configure may have changed the depths since the last
// move.
func (e *minimaxEngine) agent() search.Agent {
	if e.difficulty == Hard {
		return search.NewQuiescenceAgent(e.eval, e.maxDepth, e.quiescenceDepth)
	}
	return search.NewAlphaBetaAgent(e.eval, e.maxDepth)
}

// Name returns the human-readable name of this engine.
func (e *minimaxEngine) Name() string {
	return e.name
}

// Close releases resources held by the engine. minimaxEngine holds none;
// it exists to satisfy Engine and to guard against use after Close.
func (e *minimaxEngine) Close() error {
	e.closed = true
	return nil
}

// Configure accepts "search_depth", "quiescence_depth", and "time_limit"
// keys. Unrecognized keys are rejected so a typo doesn't silently no-op.
func (e *minimaxEngine) Configure(options map[string]any) error {
	for key, value := range options {
		switch key {
		case "search_depth":
			depth, ok := value.(int)
			if !ok {
				return fmt.Errorf("search_depth must be an int, got %T", value)
			}
			if depth < 1 || depth > 20 {
				return fmt.Errorf("search_depth must be 1-20, got %d", depth)
			}
			e.maxDepth = depth

		case "quiescence_depth":
			depth, ok := value.(int)
			if !ok {
				return fmt.Errorf("quiescence_depth must be an int, got %T", value)
			}
			if depth < 0 || depth > 20 {
				return fmt.Errorf("quiescence_depth must be 0-20, got %d", depth)
			}
			e.quiescenceDepth = depth

		case "time_limit":
			limit, ok := value.(time.Duration)
			if !ok {
				return fmt.Errorf("time_limit must be a time.Duration, got %T", value)
			}
			if limit <= 0 {
				return fmt.Errorf("time_limit must be positive, got %v", limit)
			}
			e.timeLimit = limit

		default:
			return fmt.Errorf("unknown minimax option %q", key)
		}
	}

	return nil
}

// Info returns metadata about this engine.
func (e *minimaxEngine) Info() Info {
	return Info{
		Name:       e.name,
		Author:     "TermChess",
		Version:    "2.0",
		Type:       TypeInternal,
		Difficulty: e.difficulty,
		Features: map[string]bool{
			"alpha_beta": true,
			"quiescence": e.difficulty == Hard,
		},
	}
}

// SelectMove returns the move found by alpha-beta (Medium) or alpha-beta
// extended with quiescence (Hard) search, bounded by the engine's time
// limit.
func (e *minimaxEngine) SelectMove(ctx context.Context, board *engine.Board) (engine.Move, error) {
	if e.closed {
		return engine.Move{}, errors.New("engine is closed")
	}

	moves := board.LegalMoves()
	if len(moves) == 0 {
		return engine.Move{}, errors.New("no legal moves available")
	}
	if len(moves) == 1 {
		return moves[0], nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeLimit)
	defer cancel()

	move, err := e.agent().SelectMove(ctx, board.Copy())
	if err != nil {
		if errors.Is(err, search.ErrNoLegalMoves) {
			return engine.Move{}, errors.New("no legal moves available")
		}
		return engine.Move{}, err
	}
	return move, nil
}
