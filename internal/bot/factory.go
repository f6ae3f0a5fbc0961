package bot

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Mgrdich/TermChess/internal/evaluator"
)

// EngineOption is a functional option for engine creation.
type EngineOption func(*engineConfig) error

// engineConfig holds configuration options for engine creation.
type engineConfig struct {
	difficulty      Difficulty
	timeLimit       time.Duration
	searchDepth     int
	quiescenceDepth int
	uciEnginePath   string
	options         map[string]any
}

// WithTimeLimit sets a custom time limit for move selection.
func WithTimeLimit(d time.Duration) EngineOption {
	return func(c *engineConfig) error {
		if d <= 0 {
			return fmt.Errorf("time limit must be positive")
		}
		c.timeLimit = d
		return nil
	}
}

// WithSearchDepth sets a custom search depth for minimax engines.
func WithSearchDepth(depth int) EngineOption {
	return func(c *engineConfig) error {
		if depth < 1 || depth > 20 {
			return fmt.Errorf("search depth must be 1-20")
		}
		c.searchDepth = depth
		return nil
	}
}

// WithQuiescenceDepth sets a custom quiescence search depth for the Hard
// minimax engine. Ignored by Medium, which does not run a quiescence
// search.
func WithQuiescenceDepth(depth int) EngineOption {
	return func(c *engineConfig) error {
		if depth < 0 || depth > 20 {
			return fmt.Errorf("quiescence depth must be 0-20")
		}
		c.quiescenceDepth = depth
		return nil
	}
}

// WithUCIEnginePath configures a minimax engine to evaluate positions with
// an external UCI-speaking engine subprocess (e.g. Stockfish) at path,
// instead of the built-in material evaluator. An empty path (the default)
// keeps the material evaluator.
func WithUCIEnginePath(path string) EngineOption {
	return func(c *engineConfig) error {
		c.uciEnginePath = path
		return nil
	}
}

// WithOptions sets custom options as a map.
func WithOptions(opts map[string]any) EngineOption {
	return func(c *engineConfig) error {
		c.options = opts
		return nil
	}
}

// NewRandomEngine creates an Easy bot with random move selection.
func NewRandomEngine(opts ...EngineOption) (Engine, error) {
	cfg := &engineConfig{
		difficulty: Easy,
		timeLimit:  2 * time.Second,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return &randomEngine{
		name:      "Easy Bot",
		timeLimit: cfg.timeLimit,
		closed:    0, // atomic: 0 = open
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// NewMinimaxEngine creates a Medium or Hard bot using minimax with alpha-beta pruning.
func NewMinimaxEngine(difficulty Difficulty, opts ...EngineOption) (Engine, error) {
	cfg := &engineConfig{difficulty: difficulty}

	// Set defaults based on difficulty
	switch difficulty {
	case Medium:
		cfg.timeLimit = 4 * time.Second
		cfg.searchDepth = 4
	case Hard:
		cfg.timeLimit = 8 * time.Second
		cfg.searchDepth = 6
		cfg.quiescenceDepth = 4
	default:
		return nil, fmt.Errorf("invalid difficulty for minimax: %d (expected Medium or Hard)", difficulty)
	}

	// Apply custom options
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	eval, err := buildEvaluator(cfg)
	if err != nil {
		return nil, err
	}

	// Create the minimax engine
	name := fmt.Sprintf("%s Bot", difficulty.String())

	return &minimaxEngine{
		name:            name,
		difficulty:      cfg.difficulty,
		maxDepth:        cfg.searchDepth,
		quiescenceDepth: cfg.quiescenceDepth,
		timeLimit:       cfg.timeLimit,
		eval:            eval,
		closed:          false,
	}, nil
}

// buildEvaluator returns the material evaluator, unless cfg names an
// external UCI engine binary, in which case it launches that engine and
// returns an adapter around it. A launch or handshake failure is returned
// to the caller rather than silently falling back to material, since a
// configured engine path that cannot be used is a configuration error.
func buildEvaluator(cfg *engineConfig) (evaluator.Evaluator, error) {
	if cfg.uciEnginePath == "" {
		return evaluator.NewMaterial(), nil
	}

	uci, err := evaluator.NewUCI(cfg.uciEnginePath)
	if err != nil {
		return nil, fmt.Errorf("launching UCI engine %q: %w", cfg.uciEnginePath, err)
	}
	return uci, nil
}
