package engine

// GameStatus represents the current state of a chess game.
type GameStatus int

const (
	// Ongoing indicates the game is still in progress.
	Ongoing GameStatus = iota

	// Checkmate indicates the player to move is in checkmate.
	// The opponent wins.
	Checkmate

	// Stalemate indicates the player to move has no legal moves
	// but is not in check. The game is a draw.
	Stalemate

	// DrawInsufficientMaterial indicates a draw due to insufficient
	// material to checkmate (e.g., King vs King, King+Bishop vs King).
	DrawInsufficientMaterial

	// DrawFiftyMoveRule indicates a draw can be claimed under the
	// fifty-move rule (50 moves without pawn move or capture).
	DrawFiftyMoveRule

	// DrawSeventyFiveMoveRule indicates an automatic draw under the
	// seventy-five-move rule (75 moves without pawn move or capture).
	DrawSeventyFiveMoveRule

	// DrawThreefoldRepetition indicates a draw can be claimed due to
	// threefold repetition of the position.
	DrawThreefoldRepetition

	// DrawFivefoldRepetition indicates an automatic draw due to
	// fivefold repetition of the position.
	DrawFivefoldRepetition
)

// String returns a human-readable string representation of the game status.
func (s GameStatus) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawInsufficientMaterial:
		return "draw (insufficient material)"
	case DrawFiftyMoveRule:
		return "draw (fifty-move rule)"
	case DrawSeventyFiveMoveRule:
		return "draw (seventy-five-move rule)"
	case DrawThreefoldRepetition:
		return "draw (threefold repetition)"
	case DrawFivefoldRepetition:
		return "draw (fivefold repetition)"
	default:
		return "unknown"
	}
}

// Status returns the current game status by checking for checkmate, stalemate,
// and draw conditions in order of priority.
//
// The algorithm checks:
// 1. If no legal moves exist:
//   - If in check -> Checkmate
//   - If not in check -> Stalemate
//
// 2. Automatic draws (no player action required):
//   - Insufficient material
//   - Seventy-five-move rule
//   - Fivefold repetition
//
// 3. Otherwise -> Ongoing
//
// Threefold repetition and the fifty-move rule end the game only when a
// player claims them; see CanClaimDraw.
func (b *Board) Status() GameStatus {
	// Generate all legal moves for the active player
	legalMoves := b.LegalMoves()

	// If no legal moves exist, check for checkmate or stalemate
	if len(legalMoves) == 0 {
		if b.InCheck() {
			return Checkmate
		}
		return Stalemate
	}

	if b.hasInsufficientMaterial() {
		return DrawInsufficientMaterial
	}

	if b.repetitionCount() >= 5 {
		return DrawFivefoldRepetition
	}

	if b.HalfMoveClock >= 150 {
		return DrawSeventyFiveMoveRule
	}

	return Ongoing
}

// IsGameOver returns true if the game has ended automatically (checkmate,
// stalemate, or an automatic draw). It does not account for draws that
// require a claim; use CanClaimDraw for those.
func (b *Board) IsGameOver() bool {
	status := b.Status()
	return status != Ongoing
}

// CanClaimDraw returns true if the player to move may claim a draw under
// the threefold repetition or fifty-move rule. These draws are not
// automatic: the game remains Ongoing (per Status) until claimed.
func (b *Board) CanClaimDraw() bool {
	if b.IsGameOver() {
		return false
	}
	if b.repetitionCount() >= 3 {
		return true
	}
	if b.HalfMoveClock >= 100 {
		return true
	}
	return false
}

// hasInsufficientMaterial returns true if neither side has enough material
// to deliver checkmate (bare kings, king+minor vs king, or king+bishop vs
// king+bishop of the same color are the only recognized cases here).
func (b *Board) hasInsufficientMaterial() bool {
	var whiteMinor, blackMinor int
	var whiteBishopColor, blackBishopColor = -1, -1

	for sq := Square(0); sq < 64; sq++ {
		piece := b.Squares[sq]
		if piece.IsEmpty() || piece.Type() == King {
			continue
		}
		switch piece.Type() {
		case Pawn, Rook, Queen:
			return false
		case Knight:
			if piece.Color() == White {
				whiteMinor++
			} else {
				blackMinor++
			}
		case Bishop:
			squareColor := (int(sq.File()) + int(sq.Rank())) % 2
			if piece.Color() == White {
				whiteMinor++
				whiteBishopColor = squareColor
			} else {
				blackMinor++
				blackBishopColor = squareColor
			}
		}
		if whiteMinor > 1 || blackMinor > 1 {
			return false
		}
	}

	if whiteMinor == 0 && blackMinor == 0 {
		return true
	}
	if whiteMinor == 1 && blackMinor == 0 {
		return true
	}
	if whiteMinor == 0 && blackMinor == 1 {
		return true
	}
	if whiteMinor == 1 && blackMinor == 1 && whiteBishopColor >= 0 && blackBishopColor >= 0 {
		return whiteBishopColor == blackBishopColor
	}
	return false
}

// Winner returns the color of the winning player and whether there is a winner.
// Returns (Black, true) if White is checkmated, (White, true) if Black is checkmated,
// or (0, false) for stalemate, draws, or ongoing games.
func (b *Board) Winner() (Color, bool) {
	if b.Status() == Checkmate {
		// The player to move is checkmated, so the opponent wins
		if b.ActiveColor == White {
			return Black, true
		}
		return White, true
	}
	return 0, false // No winner (draw, stalemate, or ongoing)
}

// repetitionCount returns the number of times the current position
// has occurred in the game history. The current position's hash
// is included in the history (added after the last move was made).
func (b *Board) repetitionCount() int {
	count := 0
	for _, hash := range b.History {
		if hash == b.Hash {
			count++
		}
	}
	return count
}
