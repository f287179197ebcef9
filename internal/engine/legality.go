package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// TryMove checks move against state and, if legal, returns the state after
// it. The input state is never modified; on error the returned state equals
// the input.
//
// promotion names the piece a pawn becomes on the far rank; pass chess.Empty
// when no promotion is intended. When verifySelfCheck is false the move is
// judged on shape alone and may leave the mover's king attacked; the check
// predicate relies on this.
func TryMove(state State, move chess.Move, promotion chess.Kind, verifySelfCheck bool) (State, error) {
	if move.IsNull() {
		return state, &errors.MoveError{Err: errors.ErrNullMove, Move: move}
	}
	if !move.From.Valid() || !move.To.Valid() {
		return state, &errors.MoveError{Err: errors.ErrOutOfBounds, Move: move}
	}

	piece := state.Board.Get(move.From)
	if piece.IsEmpty() {
		return state, &errors.MoveError{Err: errors.ErrEmptyOrigin, Move: move}
	}
	target := state.Board.Get(move.To)
	if !target.IsEmpty() && target.Colour == piece.Colour {
		return state, &errors.MoveError{Err: errors.ErrSameColourCapture, Move: move, Piece: piece}
	}

	if verifySelfCheck {
		after, err := TryMove(state, move, promotion, false)
		if err != nil {
			return state, err
		}
		after.ToMove = state.ToMove
		if IsInCheck(after) {
			return state, &errors.MoveError{Err: errors.ErrSelfCheck, Move: move, Piece: piece}
		}
	}

	if piece.Colour != state.ToMove {
		return state, &errors.MoveError{Err: errors.ErrWrongTurn, Move: move, Piece: piece}
	}
	if state.DrawCounterExhausted() {
		return state, &errors.MoveError{Err: errors.ErrDrawLimitReached, Move: move, Piece: piece}
	}

	// The rules read the incoming double-step flag for en passant.
	next := state
	if err := applyPieceRules(&next, move, piece, promotion); err != nil {
		return state, &errors.MoveError{Err: err, Move: move, Piece: piece}
	}

	next.ToMove = piece.Colour.Opposite()
	next.LastMove = move
	next.HasLastMove = true
	next.LastMoveDoubleStep = piece.Kind == chess.Pawn && abs(move.RankDelta()) == 2
	if piece.Kind == chess.Pawn || !target.IsEmpty() {
		next.MovesBeforeDraw = DrawLimit
	} else {
		next.MovesBeforeDraw--
	}
	if piece.Colour == chess.Black {
		next.FullMoveNumber++
	}
	return next, nil
}

// rule validates one way a piece may move. On success it performs the move
// on s; on failure it leaves s untouched and returns why it did not apply.
type rule func(s *State, m chess.Move, promotion chess.Kind) error

// rulesFor returns the movement rules of a piece kind in the order they are
// tried.
func rulesFor(kind chess.Kind) []rule {
	switch kind {
	case chess.Pawn:
		return []rule{pawnStep, pawnDoubleStep, pawnCapture}
	case chess.Knight:
		return []rule{knightJump}
	case chess.Bishop:
		return []rule{diagonalSlide}
	case chess.Rook:
		return []rule{straightSlide}
	case chess.Queen:
		return []rule{straightSlide, diagonalSlide}
	case chess.King:
		return []rule{kingStep, castle}
	default:
		return nil
	}
}

// applyPieceRules runs the first rule of the piece's kind that accepts the
// move. If none does, every rule's failure is returned together.
func applyPieceRules(s *State, m chess.Move, piece chess.Piece, promotion chess.Kind) error {
	failures := &errors.RuleErrors{Piece: piece.Kind}
	for _, r := range rulesFor(piece.Kind) {
		err := r(s, m, promotion)
		if err == nil {
			return nil
		}
		failures.Add(err)
	}
	return failures
}
