package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// straightSlide moves a piece along a file or rank over empty squares.
func straightSlide(s *State, m chess.Move, _ chess.Kind) error {
	if m.FileDelta() != 0 && m.RankDelta() != 0 {
		return errors.Wrap(errors.ErrShapeViolation, "not on the same file or rank")
	}
	if !isPathClear(&s.Board, m) {
		return errors.Wrap(errors.ErrShapeViolation, "straight path is blocked")
	}
	return relocate(s, m)
}

// diagonalSlide moves a piece along a diagonal over empty squares.
func diagonalSlide(s *State, m chess.Move, _ chess.Kind) error {
	if abs(m.FileDelta()) != abs(m.RankDelta()) {
		return errors.Wrap(errors.ErrShapeViolation, "not on a diagonal")
	}
	if !isPathClear(&s.Board, m) {
		return errors.Wrap(errors.ErrShapeViolation, "diagonal path is blocked")
	}
	return relocate(s, m)
}

// knightJump moves a knight in its L shape. Intervening squares are ignored.
func knightJump(s *State, m chess.Move, _ chess.Kind) error {
	df, dr := abs(m.FileDelta()), abs(m.RankDelta())
	if !(df == 1 && dr == 2) && !(df == 2 && dr == 1) {
		return errors.Wrap(errors.ErrShapeViolation, "knight must jump one by two")
	}
	return relocate(s, m)
}

// kingStep moves a king to an adjacent square.
func kingStep(s *State, m chess.Move, _ chess.Kind) error {
	if abs(m.FileDelta()) > 1 || abs(m.RankDelta()) > 1 {
		return errors.Wrap(errors.ErrShapeViolation, "king steps one square")
	}
	return relocate(s, m)
}

// isPathClear reports whether every square strictly between the ends of a
// straight or diagonal move is empty.
func isPathClear(board *chess.Board, m chess.Move) bool {
	df, dr := sign(m.FileDelta()), sign(m.RankDelta())
	for sq := m.From.Offset(df, dr); sq != m.To; sq = sq.Offset(df, dr) {
		if !board.IsEmpty(sq) {
			return false
		}
	}
	return true
}

// relocate moves the piece unless it would land on one of its own.
func relocate(s *State, m chess.Move) error {
	if err := checkLanding(&s.Board, m); err != nil {
		return err
	}
	s.Board.Relocate(m.From, m.To)
	return nil
}

// checkLanding rejects a destination held by a piece of the mover's colour.
func checkLanding(board *chess.Board, m chess.Move) error {
	mover, target := board.Get(m.From), board.Get(m.To)
	if !target.IsEmpty() && target.Colour == mover.Colour {
		return errors.Wrap(errors.ErrShapeViolation, "destination holds own piece")
	}
	return nil
}
