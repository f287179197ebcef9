// Package engine decides move legality and derives check, mate and draw
// conditions. TryMove is the single legality authority; every other query
// in the repository is built on it.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// DrawLimit is the value the move-limit counter resets to after a pawn move
// or capture.
const DrawLimit = 100

// State is everything needed to judge the next move. It is a plain value:
// copying a State copies the board, so speculative moves work on copies and
// never roll back.
type State struct {
	Board  chess.Board
	ToMove chess.Colour

	// LastMove is meaningful only when HasLastMove is set.
	LastMove           chess.Move
	HasLastMove        bool
	LastMoveDoubleStep bool

	// MovesBeforeDraw counts down to zero, at which point no further move
	// is accepted.
	MovesBeforeDraw int
	FullMoveNumber  int
}

// NewState returns an empty board with White to move.
func NewState() State {
	return State{
		Board:           chess.NewBoard(),
		ToMove:          chess.White,
		MovesBeforeDraw: DrawLimit,
		FullMoveNumber:  1,
	}
}

// NewStandardState returns the standard starting position.
func NewStandardState() State {
	s := NewState()
	s.Board.SetupInitialPosition()
	return s
}

// EnPassantTarget returns the square a pawn skipped over on the previous
// move, if that move was a pawn double step.
func (s State) EnPassantTarget() (chess.Square, bool) {
	if !s.HasLastMove || !s.LastMoveDoubleStep {
		return chess.Square{}, false
	}
	from, to := s.LastMove.From, s.LastMove.To
	return chess.Sq(to.File, (from.Rank+to.Rank)/2), true
}

// DrawCounterExhausted reports whether the move-limit counter has run out.
func (s State) DrawCounterExhausted() bool {
	return s.MovesBeforeDraw <= 0
}
