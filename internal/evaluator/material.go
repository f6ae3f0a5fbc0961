package evaluator

import (
	"strings"

	"github.com/Mgrdich/TermChess/internal/engine"
	"github.com/Mgrdich/TermChess/internal/score"
)

// Piece values in centipawns, following conventional engine weights.
const (
	pawnValue   = 100
	knightValue = 310
	bishopValue = 320
	rookValue   = 500
	queenValue  = 900

	// tempoBonus rewards White for being on move, mirroring the small edge
	// of moving first; it is applied from White's perspective regardless of
	// which side the resulting PovScore is ultimately relative to.
	tempoBonus = 50
)

var pieceCentipawns = map[byte]int{
	'P': pawnValue,
	'N': knightValue,
	'B': bishopValue,
	'R': rookValue,
	'Q': queenValue,
}

// Material is a checkmate-aware material counter: it returns MateGiven when
// the side to move is already checkmated, and otherwise the material
// balance (White pieces minus Black pieces) plus a small White tempo bonus,
// read directly off the FEN piece-placement field.
type Material struct{}

// NewMaterial constructs a Material evaluator. It holds no state and never
// fails to construct.
func NewMaterial() *Material {
	return &Material{}
}

// Evaluate implements Evaluator.
func (m *Material) Evaluate(b Board) (score.PovScore, error) {
	turn := b.Turn()

	if b.IsGameOver() && b.InCheck() {
		return score.New(score.MateGiven, turn), nil
	}

	fen := b.ToFEN()
	placement := fen
	if idx := strings.IndexByte(fen, ' '); idx >= 0 {
		placement = fen[:idx]
	}

	// whiteCentric is positive when White holds the material edge, negative
	// when Black does, following the FEN convention of uppercase for White.
	whiteCentric := 0
	for i := 0; i < len(placement); i++ {
		ch := placement[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
			whiteCentric += pieceCentipawns[ch]
		case ch >= 'a' && ch <= 'z':
			whiteCentric -= pieceCentipawns[ch-'a'+'A']
		}
	}

	if turn == engine.White {
		whiteCentric += tempoBonus
	} else {
		whiteCentric -= tempoBonus
	}

	relative := whiteCentric
	if turn == engine.Black {
		relative = -whiteCentric
	}

	return score.New(score.Cp(relative), turn), nil
}

// Quit is a no-op: Material holds no external process or resource.
func (m *Material) Quit() error { return nil }
