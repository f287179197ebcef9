package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// pawnStep advances a pawn one square onto an empty square.
func pawnStep(s *State, m chess.Move, promotion chess.Kind) error {
	pawn := s.Board.Get(m.From)
	if m.FileDelta() != 0 || m.RankDelta() != pawn.Colour.Forward() {
		return errors.Wrap(errors.ErrShapeViolation, "pawn step is one square forward")
	}
	if !s.Board.IsEmpty(m.To) {
		return errors.Wrap(errors.ErrShapeViolation, "pawn step is blocked")
	}
	return movePawn(s, m, pawn, promotion)
}

// pawnDoubleStep advances an unmoved pawn two squares over empty squares.
func pawnDoubleStep(s *State, m chess.Move, promotion chess.Kind) error {
	pawn := s.Board.Get(m.From)
	fwd := pawn.Colour.Forward()
	if m.FileDelta() != 0 || m.RankDelta() != 2*fwd {
		return errors.Wrap(errors.ErrShapeViolation, "double step is two squares forward")
	}
	if pawn.Moved {
		return errors.Wrap(errors.ErrShapeViolation, "double step needs an unmoved pawn")
	}
	if !s.Board.IsEmpty(m.From.Offset(0, fwd)) || !s.Board.IsEmpty(m.To) {
		return errors.Wrap(errors.ErrShapeViolation, "double step is blocked")
	}
	return movePawn(s, m, pawn, promotion)
}

// pawnCapture takes diagonally forward, including en passant.
func pawnCapture(s *State, m chess.Move, promotion chess.Kind) error {
	pawn := s.Board.Get(m.From)
	if abs(m.FileDelta()) != 1 || m.RankDelta() != pawn.Colour.Forward() {
		return errors.Wrap(errors.ErrShapeViolation, "pawn captures one square diagonally forward")
	}

	target := s.Board.Get(m.To)
	if !target.IsEmpty() {
		if target.Colour == pawn.Colour {
			return errors.Wrap(errors.ErrShapeViolation, "destination holds own piece")
		}
		return movePawn(s, m, pawn, promotion)
	}

	passed := chess.Sq(m.To.File, m.From.Rank)
	if !canCaptureEnPassant(s, passed, pawn.Colour) {
		return errors.Wrap(errors.ErrShapeViolation, "nothing to capture")
	}
	if err := movePawn(s, m, pawn, promotion); err != nil {
		return err
	}
	s.Board.Remove(passed)
	return nil
}

// canCaptureEnPassant reports whether the previous move was an enemy pawn
// double step landing on passed.
func canCaptureEnPassant(s *State, passed chess.Square, colour chess.Colour) bool {
	if !s.HasLastMove || !s.LastMoveDoubleStep || s.LastMove.To != passed {
		return false
	}
	return s.Board.Get(passed).Is(chess.Pawn, colour.Opposite())
}

// movePawn relocates the pawn, promoting it on the far rank.
func movePawn(s *State, m chess.Move, pawn chess.Piece, promotion chess.Kind) error {
	promotes := m.To.Rank == pawn.Colour.PromotionRank()
	if promotes {
		if err := checkPromotion(promotion); err != nil {
			return err
		}
	}
	s.Board.Relocate(m.From, m.To)
	if promotes {
		promoted := s.Board.Get(m.To)
		promoted.Kind = promotion
		s.Board.Set(m.To, promoted)
	}
	return nil
}

// checkPromotion validates a promotion choice.
func checkPromotion(promotion chess.Kind) error {
	switch {
	case promotion == chess.Empty:
		return errors.ErrPromotionRequired
	case !promotion.CanPromoteTo():
		return errors.Wrapf(errors.ErrPromotionIllegal, "cannot promote to %s", promotion)
	default:
		return nil
	}
}
