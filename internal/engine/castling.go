package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// castle moves an unmoved king two files toward an unmoved rook of its own
// colour and brings the rook to the square the king crossed.
func castle(s *State, m chess.Move, _ chess.Kind) error {
	if m.RankDelta() != 0 || abs(m.FileDelta()) != 2 {
		return errors.Wrap(errors.ErrShapeViolation, "castling moves the king two files")
	}
	king := s.Board.Get(m.From)
	if king.Moved {
		return errors.Wrap(errors.ErrCastleUnavailable, "king has moved")
	}

	dir := sign(m.FileDelta())
	crossed := m.From.Offset(dir, 0)
	if !s.Board.IsEmpty(crossed) || !s.Board.IsEmpty(m.To) {
		return errors.Wrap(errors.ErrCastleUnavailable, "king's path is occupied")
	}

	rookSq, ok := findCastlingRook(&s.Board, m.To, dir, king.Colour)
	if !ok {
		return errors.Wrap(errors.ErrCastleUnavailable, "no unmoved rook on that side")
	}

	for _, sq := range []chess.Square{m.From, crossed, m.To} {
		if isSquareAttacked(*s, m.From, sq) {
			return errors.Wrapf(errors.ErrCastleUnavailable, "king would cross attacked square %s", sq)
		}
	}

	s.Board.Relocate(m.From, m.To)
	s.Board.Relocate(rookSq, crossed)
	return nil
}

// findCastlingRook scans outward from the king's destination. The first
// piece met must be an unmoved rook of the given colour.
func findCastlingRook(board *chess.Board, from chess.Square, dir int, colour chess.Colour) (chess.Square, bool) {
	for sq := from.Offset(dir, 0); sq.Valid(); sq = sq.Offset(dir, 0) {
		p := board.Get(sq)
		if p.IsEmpty() {
			continue
		}
		return sq, p.Is(chess.Rook, colour) && !p.Moved
	}
	return chess.Square{}, false
}

// isSquareAttacked reports whether the king standing on kingSq would be in
// check if it stood on sq instead.
func isSquareAttacked(s State, kingSq, sq chess.Square) bool {
	trial := s
	king := trial.Board.Remove(kingSq)
	trial.Board.Set(sq, king)
	trial.ToMove = king.Colour
	return IsInCheck(trial)
}
