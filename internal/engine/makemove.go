package engine

import (
	"fmt"
)

// undoState captures everything needed to reverse a single applyMoveRaw call.
type undoState struct {
	move            Move
	captured        Piece
	capturedSq      Square
	isCastle        bool
	prevCastling    uint8
	prevEnPassant   int8
	prevHalfMove    uint8
	prevFullMove    uint16
	prevHash        uint64
	prevActiveColor Color
}

// Copy returns a deep copy of the board. The copy's own undo stack starts
// empty: copies are used for trial move application, not for unmaking moves
// made on the original.
func (b *Board) Copy() *Board {
	cp := *b
	cp.History = make([]uint64, len(b.History))
	copy(cp.History, b.History)
	cp.undoStack = nil
	return &cp
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// applyMoveRaw mutates the board to reflect m without any legality
// checking. It updates piece placement, castling rights, the en passant
// square, the half-move clock, the full move number, the active color, and
// the Zobrist hash. It does not touch History; callers append to it as
// needed (MakeMove and Push do; the LegalMoves trial copies do not).
func (b *Board) applyMoveRaw(m Move) {
	piece := b.Squares[m.From]
	color := piece.Color()
	captured := b.Squares[m.To]

	isEnPassant := piece.Type() == Pawn && captured.IsEmpty() && m.From.File() != m.To.File()
	isCastle := piece.Type() == King && absInt(int(m.To)-int(m.From)) == 2

	b.Squares[m.To] = piece
	b.Squares[m.From] = Piece(Empty)

	if isEnPassant {
		capSq := NewSquare(m.To.File(), m.From.Rank())
		b.Squares[capSq] = Piece(Empty)
	}

	if isCastle {
		rank := m.From.Rank()
		if m.To.File() == 6 {
			rookFrom, rookTo := NewSquare(7, rank), NewSquare(5, rank)
			b.Squares[rookTo] = b.Squares[rookFrom]
			b.Squares[rookFrom] = Piece(Empty)
		} else if m.To.File() == 2 {
			rookFrom, rookTo := NewSquare(0, rank), NewSquare(3, rank)
			b.Squares[rookTo] = b.Squares[rookFrom]
			b.Squares[rookFrom] = Piece(Empty)
		}
	}

	if m.Promotion != Empty {
		b.Squares[m.To] = NewPiece(color, m.Promotion)
	}

	b.EnPassantSq = -1
	if piece.Type() == Pawn && absInt(m.To.Rank()-m.From.Rank()) == 2 {
		b.EnPassantSq = int8(NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2))
	}

	if piece.Type() == King {
		if color == White {
			b.CastlingRights &^= CastleWhiteKing | CastleWhiteQueen
		} else {
			b.CastlingRights &^= CastleBlackKing | CastleBlackQueen
		}
	}
	clearRookRight := func(sq Square) {
		switch sq {
		case NewSquare(0, 0):
			b.CastlingRights &^= CastleWhiteQueen
		case NewSquare(7, 0):
			b.CastlingRights &^= CastleWhiteKing
		case NewSquare(0, 7):
			b.CastlingRights &^= CastleBlackQueen
		case NewSquare(7, 7):
			b.CastlingRights &^= CastleBlackKing
		}
	}
	clearRookRight(m.From)
	clearRookRight(m.To)

	if piece.Type() == Pawn || !captured.IsEmpty() || isEnPassant {
		b.HalfMoveClock = 0
	} else if b.HalfMoveClock < 255 {
		b.HalfMoveClock++
	}

	if color == Black {
		b.FullMoveNum++
	}

	b.ActiveColor = opposite(color)
	b.Hash = b.ComputeHash()
}

// MakeMove validates m against the current position and, if legal, applies
// it and records the resulting hash in History. The board is left
// unchanged if m is illegal.
func (b *Board) MakeMove(m Move) error {
	piece := b.Squares[m.From]
	if piece.IsEmpty() {
		return fmt.Errorf("illegal move %s: no piece on %s", m, m.From)
	}
	if piece.Color() != b.ActiveColor {
		return fmt.Errorf("illegal move %s: piece on %s belongs to the opponent", m, m.From)
	}
	if m.From == m.To {
		return fmt.Errorf("illegal move %s: source and destination are the same square", m)
	}
	if !b.IsLegalMove(m) {
		return fmt.Errorf("illegal move %s", m)
	}

	b.applyMoveRaw(m)
	b.History = append(b.History, b.Hash)
	return nil
}

// Push validates and applies m like MakeMove, additionally recording undo
// information so the move can be reversed with Pop. Pushing and then
// popping leaves the board exactly as it was (same pieces, rights, en
// passant square, clocks, hash, and history).
func (b *Board) Push(m Move) error {
	piece := b.Squares[m.From]
	if piece.IsEmpty() || piece.Color() != b.ActiveColor {
		return fmt.Errorf("illegal move %s", m)
	}
	if !b.IsLegalMove(m) {
		return fmt.Errorf("illegal move %s", m)
	}

	captured := b.Squares[m.To]
	capturedSq := m.To
	isEnPassant := piece.Type() == Pawn && captured.IsEmpty() && m.From.File() != m.To.File()
	if isEnPassant {
		capturedSq = NewSquare(m.To.File(), m.From.Rank())
		captured = b.Squares[capturedSq]
	}
	isCastle := piece.Type() == King && absInt(int(m.To)-int(m.From)) == 2

	state := undoState{
		move:            m,
		captured:        captured,
		capturedSq:      capturedSq,
		isCastle:        isCastle,
		prevCastling:    b.CastlingRights,
		prevEnPassant:   b.EnPassantSq,
		prevHalfMove:    b.HalfMoveClock,
		prevFullMove:    b.FullMoveNum,
		prevHash:        b.Hash,
		prevActiveColor: b.ActiveColor,
	}
	b.undoStack = append(b.undoStack, state)

	b.applyMoveRaw(m)
	b.History = append(b.History, b.Hash)
	return nil
}

// Pop reverses the most recent Push. It is a no-op if there is nothing to
// undo.
func (b *Board) Pop() {
	if len(b.undoStack) == 0 {
		return
	}
	state := b.undoStack[len(b.undoStack)-1]
	b.undoStack = b.undoStack[:len(b.undoStack)-1]

	if len(b.History) > 0 {
		b.History = b.History[:len(b.History)-1]
	}

	m := state.move
	movedPiece := b.Squares[m.To]
	if m.Promotion != Empty {
		movedPiece = NewPiece(movedPiece.Color(), Pawn)
	}
	b.Squares[m.From] = movedPiece
	b.Squares[m.To] = Piece(Empty)
	b.Squares[state.capturedSq] = state.captured

	if state.isCastle {
		rank := m.From.Rank()
		if m.To.File() == 6 {
			rookFrom, rookTo := NewSquare(5, rank), NewSquare(7, rank)
			b.Squares[rookTo] = b.Squares[rookFrom]
			b.Squares[rookFrom] = Piece(Empty)
		} else if m.To.File() == 2 {
			rookFrom, rookTo := NewSquare(3, rank), NewSquare(0, rank)
			b.Squares[rookTo] = b.Squares[rookFrom]
			b.Squares[rookFrom] = Piece(Empty)
		}
	}

	b.CastlingRights = state.prevCastling
	b.EnPassantSq = state.prevEnPassant
	b.HalfMoveClock = state.prevHalfMove
	b.FullMoveNum = state.prevFullMove
	b.Hash = state.prevHash
	b.ActiveColor = state.prevActiveColor
}

// Turn returns the color to move, satisfying the black-box board contract
// search agents depend on.
func (b *Board) Turn() Color {
	return b.ActiveColor
}

// InCheck returns true if the active color's king is currently attacked.
func (b *Board) InCheck() bool {
	kingSq := b.findKing(b.ActiveColor)
	if kingSq == NoSquare {
		return false
	}
	return b.IsSquareAttacked(kingSq, opposite(b.ActiveColor))
}

// GivesCheck returns true if playing m would place the opponent's king in
// check. m is assumed to be a legal move in the current position.
func (b *Board) GivesCheck(m Move) bool {
	trial := b.Copy()
	trial.applyMoveRaw(m)
	return trial.InCheck()
}

// IsCapture returns true if m captures an enemy piece, including en
// passant captures.
func (b *Board) IsCapture(m Move) bool {
	if !b.Squares[m.To].IsEmpty() {
		return true
	}
	piece := b.Squares[m.From]
	if piece.Type() == Pawn && b.EnPassantSq >= 0 && m.To == Square(b.EnPassantSq) && m.From.File() != m.To.File() {
		return true
	}
	return false
}
