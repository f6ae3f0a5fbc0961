// Package score implements the tagged centipawn/mate score representation
// search agents and evaluators exchange, along with the point-of-view
// wrapper (PovScore) that pins a Score to the side it was computed for.
package score

import (
	"fmt"
	"math"

	"github.com/Mgrdich/TermChess/internal/engine"
)

// Kind discriminates the variants a Score can hold.
type Kind uint8

const (
	// KindCp is a plain centipawn evaluation.
	KindCp Kind = iota
	// KindMate is a forced mate in N plies (N's sign indicates who mates whom).
	KindMate
	// KindMateGiven marks a position where the side the score is relative to
	// has just been checkmated: the worst possible outcome for that side.
	// Distinct from KindMate so that "mated now" and "mate in 0" are never
	// sign-ambiguous (Mate(0).Negate() == Mate(0) would otherwise collapse
	// both roles onto the same value).
	KindMateGiven
	// KindMateDelivered is the Negate mirror of KindMateGiven: the side the
	// score is relative to has just delivered mate, the best possible
	// outcome for that side.
	KindMateDelivered
	// KindPosInf is the positive alpha-beta window sentinel.
	KindPosInf
	// KindNegInf is the negative alpha-beta window sentinel.
	KindNegInf
)

// Score is a tagged evaluation value: a centipawn count, a signed
// mate-in-N-plies distance, or one of the two infinite window sentinels.
//
// For Mate, a positive N means the side the score is relative to delivers
// mate in N plies; a negative N means that side is mated in -N plies. Faster
// mates are better when delivering (N=1 beats N=3) and worse when being
// mated (N=-1 is worse than N=-3, since a longer survival is preferable).
type Score struct {
	Kind Kind
	N    int
}

// Cp builds a centipawn score.
func Cp(n int) Score { return Score{Kind: KindCp, N: n} }

// Mate builds a mate-in-N-plies score. Positive N delivers mate, negative N
// is mated.
func Mate(n int) Score { return Score{Kind: KindMate, N: n} }

// MateGiven is the score for a position where the side to move is already
// checkmated: mate has been delivered against them. Always relative to the
// mated side, so it is the worst possible score for whatever side it is
// paired with in a PovScore.
var MateGiven = Score{Kind: KindMateGiven}

// PosInf and NegInf are the alpha-beta window sentinels: no finite score
// (mate included) ever outranks them.
var (
	PosInf = Score{Kind: KindPosInf}
	NegInf = Score{Kind: KindNegInf}
)

// IsMate reports whether s represents a forced mate, including the
// MateGiven/mate-delivered terminal sentinels.
func (s Score) IsMate() bool {
	return s.Kind == KindMate || s.Kind == KindMateGiven || s.Kind == KindMateDelivered
}

// Negate flips a score to the opposing side's point of view.
func (s Score) Negate() Score {
	switch s.Kind {
	case KindCp:
		return Cp(-s.N)
	case KindMate:
		return Mate(-s.N)
	case KindMateGiven:
		return Score{Kind: KindMateDelivered}
	case KindMateDelivered:
		return Score{Kind: KindMateGiven}
	case KindPosInf:
		return NegInf
	case KindNegInf:
		return PosInf
	default:
		return s
	}
}

func (s Score) String() string {
	switch s.Kind {
	case KindCp:
		return fmt.Sprintf("cp(%d)", s.N)
	case KindMate:
		return fmt.Sprintf("mate(%d)", s.N)
	case KindMateGiven:
		return "mated"
	case KindMateDelivered:
		return "mate-delivered"
	case KindPosInf:
		return "+inf"
	case KindNegInf:
		return "-inf"
	default:
		return "unknown"
	}
}

// PovScore pins a Score to the side (Turn) it was computed relative to.
// Evaluators always return a PovScore relative to the side to move.
type PovScore struct {
	Score Score
	Turn  engine.Color
}

// New builds a PovScore relative to turn.
func New(s Score, turn engine.Color) PovScore {
	return PovScore{Score: s, Turn: turn}
}

// Relative returns the score exactly as stored, relative to p.Turn.
func (p PovScore) Relative() Score { return p.Score }

// Pov returns the score from side's point of view, negating if side differs
// from the side the score is already relative to.
func (p PovScore) Pov(side engine.Color) Score {
	if side == p.Turn {
		return p.Score
	}
	return p.Score.Negate()
}

// mateValue anchors mate scores far outside any realistic centipawn range
// so that Cp scores never outrank a mate score in the wrong direction.
const mateValue = 1_000_000.0

// ToFloat converts a PovScore to a float64 from viewer's point of view. Mate
// scores map to large magnitudes offset by distance-to-mate so a nearer
// mate always compares as strictly better than a more distant one. This is
// the one conversion search agents use to compare nodes; callers never
// reach into Score directly for arithmetic.
func ToFloat(p PovScore, viewer engine.Color) float64 {
	s := p.Pov(viewer)
	switch s.Kind {
	case KindCp:
		return float64(s.N)
	case KindMate:
		if s.N >= 0 {
			return mateValue - float64(s.N)
		}
		return -mateValue - float64(s.N)
	case KindMateGiven:
		return -mateValue
	case KindMateDelivered:
		return mateValue
	case KindPosInf:
		return math.Inf(1)
	case KindNegInf:
		return math.Inf(-1)
	default:
		return 0
	}
}
