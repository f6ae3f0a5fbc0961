package engine

// knightOffsets are the eight (file, rank) deltas a knight can jump to.
var knightOffsets = [8][2]int{
	{+2, +1}, {+2, -1}, {-2, +1}, {-2, -1},
	{+1, +2}, {+1, -2}, {-1, +2}, {-1, -2},
}

// kingOffsets are the eight adjacent (file, rank) deltas a king can step to.
var kingOffsets = [8][2]int{
	{+1, +1}, {+1, -1}, {-1, +1}, {-1, -1},
	{+1, 0}, {-1, 0}, {0, +1}, {0, -1},
}

// diagonalDirections are the four bishop sliding directions.
var diagonalDirections = [4][2]int{
	{+1, +1}, {+1, -1}, {-1, +1}, {-1, -1},
}

// orthogonalDirections are the four rook sliding directions.
var orthogonalDirections = [4][2]int{
	{+1, 0}, {-1, 0}, {0, +1}, {0, -1},
}

// opposite returns the other color.
func opposite(c Color) Color {
	if c == White {
		return Black
	}
	return White
}

// generateKnightMoves generates all pseudo-legal knight moves for the active color.
func (b *Board) generateKnightMoves() []Move {
	var moves []Move
	for sq := Square(0); sq < 64; sq++ {
		piece := b.Squares[sq]
		if piece.IsEmpty() || piece.Type() != Knight || piece.Color() != b.ActiveColor {
			continue
		}
		file, rank := sq.File(), sq.Rank()
		for _, off := range knightOffsets {
			toFile, toRank := file+off[0], rank+off[1]
			if toFile < 0 || toFile > 7 || toRank < 0 || toRank > 7 {
				continue
			}
			to := NewSquare(toFile, toRank)
			target := b.Squares[to]
			if target.IsEmpty() || target.Color() != b.ActiveColor {
				moves = append(moves, Move{From: sq, To: to})
			}
		}
	}
	return moves
}

// generateKingMoves generates all pseudo-legal, non-castling king moves for the active color.
func (b *Board) generateKingMoves() []Move {
	var moves []Move
	for sq := Square(0); sq < 64; sq++ {
		piece := b.Squares[sq]
		if piece.IsEmpty() || piece.Type() != King || piece.Color() != b.ActiveColor {
			continue
		}
		file, rank := sq.File(), sq.Rank()
		for _, off := range kingOffsets {
			toFile, toRank := file+off[0], rank+off[1]
			if toFile < 0 || toFile > 7 || toRank < 0 || toRank > 7 {
				continue
			}
			to := NewSquare(toFile, toRank)
			target := b.Squares[to]
			if target.IsEmpty() || target.Color() != b.ActiveColor {
				moves = append(moves, Move{From: sq, To: to})
			}
		}
	}
	return moves
}

// generateSlidingMoves generates pseudo-legal moves for a slider piece type
// (Bishop, Rook, or Queen) along the given set of directions.
func (b *Board) generateSlidingMoves(pieceType PieceType, directions [][2]int) []Move {
	var moves []Move
	for sq := Square(0); sq < 64; sq++ {
		piece := b.Squares[sq]
		if piece.IsEmpty() || piece.Type() != pieceType || piece.Color() != b.ActiveColor {
			continue
		}
		file, rank := sq.File(), sq.Rank()
		for _, dir := range directions {
			for dist := 1; dist <= 7; dist++ {
				toFile, toRank := file+dir[0]*dist, rank+dir[1]*dist
				if toFile < 0 || toFile > 7 || toRank < 0 || toRank > 7 {
					break
				}
				to := NewSquare(toFile, toRank)
				target := b.Squares[to]
				if target.IsEmpty() {
					moves = append(moves, Move{From: sq, To: to})
					continue
				}
				if target.Color() != b.ActiveColor {
					moves = append(moves, Move{From: sq, To: to})
				}
				break
			}
		}
	}
	return moves
}

// generateBishopMoves generates all pseudo-legal bishop moves for the active color.
func (b *Board) generateBishopMoves() []Move {
	return b.generateSlidingMoves(Bishop, diagonalDirections[:])
}

// generateRookMoves generates all pseudo-legal rook moves for the active color.
func (b *Board) generateRookMoves() []Move {
	return b.generateSlidingMoves(Rook, orthogonalDirections[:])
}

// generateQueenMoves generates all pseudo-legal queen moves for the active color.
func (b *Board) generateQueenMoves() []Move {
	both := append(append([][2]int{}, diagonalDirections[:]...), orthogonalDirections[:]...)
	return b.generateSlidingMoves(Queen, both)
}

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

// generatePawnMovesFull generates pseudo-legal pawn moves including promotions
// and en passant captures, used by PseudoLegalMoves and Perft. The simpler
// generatePawnMoves (no promotion/en passant) remains for direct testing.
func (b *Board) generatePawnMovesFull() []Move {
	var moves []Move

	var direction, startRank, promoteRank int
	if b.ActiveColor == White {
		direction, startRank, promoteRank = 1, 1, 7
	} else {
		direction, startRank, promoteRank = -1, 6, 0
	}

	addMove := func(from, to Square) {
		if to.Rank() == promoteRank {
			for _, p := range promotionPieces {
				moves = append(moves, Move{From: from, To: to, Promotion: p})
			}
		} else {
			moves = append(moves, Move{From: from, To: to})
		}
	}

	for sq := Square(0); sq < 64; sq++ {
		piece := b.Squares[sq]
		if piece.IsEmpty() || piece.Type() != Pawn || piece.Color() != b.ActiveColor {
			continue
		}
		file, rank := sq.File(), sq.Rank()

		forwardRank := rank + direction
		if forwardRank >= 0 && forwardRank <= 7 {
			forwardSq := NewSquare(file, forwardRank)
			if b.Squares[forwardSq].IsEmpty() {
				addMove(sq, forwardSq)

				if rank == startRank {
					twoForwardSq := NewSquare(file, rank+2*direction)
					if b.Squares[twoForwardSq].IsEmpty() {
						moves = append(moves, Move{From: sq, To: twoForwardSq})
					}
				}
			}
		}

		for _, fileOffset := range []int{-1, 1} {
			captureFile := file + fileOffset
			captureRank := rank + direction
			if captureFile < 0 || captureFile > 7 || captureRank < 0 || captureRank > 7 {
				continue
			}
			captureSq := NewSquare(captureFile, captureRank)
			target := b.Squares[captureSq]

			if !target.IsEmpty() && target.Color() != b.ActiveColor {
				addMove(sq, captureSq)
			} else if target.IsEmpty() && b.EnPassantSq >= 0 && captureSq == Square(b.EnPassantSq) {
				moves = append(moves, Move{From: sq, To: captureSq})
			}
		}
	}

	return moves
}

// generateCastlingMoves generates pseudo-legal castling king moves (the king
// travels two squares). Legality of the passed-through and destination
// squares is checked here; LegalMoves additionally confirms the king does
// not finish in check.
func (b *Board) generateCastlingMoves() []Move {
	var moves []Move

	var rank int
	var kingSide, queenSide uint8
	if b.ActiveColor == White {
		rank = 0
		kingSide, queenSide = CastleWhiteKing, CastleWhiteQueen
	} else {
		rank = 7
		kingSide, queenSide = CastleBlackKing, CastleBlackQueen
	}

	kingSq := NewSquare(4, rank)
	king := b.Squares[kingSq]
	if king.IsEmpty() || king.Type() != King || king.Color() != b.ActiveColor {
		return moves
	}

	opp := opposite(b.ActiveColor)
	if b.IsSquareAttacked(kingSq, opp) {
		return moves
	}

	if b.CastlingRights&kingSide != 0 {
		fSq := NewSquare(5, rank)
		gSq := NewSquare(6, rank)
		if b.Squares[fSq].IsEmpty() && b.Squares[gSq].IsEmpty() &&
			!b.IsSquareAttacked(fSq, opp) && !b.IsSquareAttacked(gSq, opp) {
			moves = append(moves, Move{From: kingSq, To: gSq})
		}
	}

	if b.CastlingRights&queenSide != 0 {
		dSq := NewSquare(3, rank)
		cSq := NewSquare(2, rank)
		bSq := NewSquare(1, rank)
		if b.Squares[dSq].IsEmpty() && b.Squares[cSq].IsEmpty() && b.Squares[bSq].IsEmpty() &&
			!b.IsSquareAttacked(dSq, opp) && !b.IsSquareAttacked(cSq, opp) {
			moves = append(moves, Move{From: kingSq, To: cSq})
		}
	}

	return moves
}

// PseudoLegalMoves generates all pseudo-legal moves for the active color:
// moves that follow each piece's movement rules but may leave the mover's
// own king in check.
func (b *Board) PseudoLegalMoves() []Move {
	var moves []Move
	moves = append(moves, b.generatePawnMovesFull()...)
	moves = append(moves, b.generateKnightMoves()...)
	moves = append(moves, b.generateBishopMoves()...)
	moves = append(moves, b.generateRookMoves()...)
	moves = append(moves, b.generateQueenMoves()...)
	moves = append(moves, b.generateKingMoves()...)
	moves = append(moves, b.generateCastlingMoves()...)
	return moves
}

// findKing returns the square of the king of the given color, or NoSquare
// if no such king is on the board.
func (b *Board) findKing(color Color) Square {
	for sq := Square(0); sq < 64; sq++ {
		piece := b.Squares[sq]
		if !piece.IsEmpty() && piece.Type() == King && piece.Color() == color {
			return sq
		}
	}
	return NoSquare
}

// LegalMoves returns all fully legal moves for the active color: pseudo-legal
// moves filtered to exclude any that leave the mover's own king in check.
func (b *Board) LegalMoves() []Move {
	pseudo := b.PseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	mover := b.ActiveColor

	for _, m := range pseudo {
		trial := b.Copy()
		trial.applyMoveRaw(m)
		kingSq := trial.findKing(mover)
		if kingSq == NoSquare || !trial.IsSquareAttacked(kingSq, opposite(mover)) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsLegalMove returns true if m is a legal move in the current position.
func (b *Board) IsLegalMove(m Move) bool {
	if m.From == m.To || !m.From.IsValid() || !m.To.IsValid() {
		return false
	}
	piece := b.PieceAt(m.From)
	if piece.IsEmpty() || piece.Color() != b.ActiveColor {
		return false
	}
	for _, lm := range b.LegalMoves() {
		if lm.From == m.From && lm.To == m.To && lm.Promotion == m.Promotion {
			return true
		}
	}
	return false
}
