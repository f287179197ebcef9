package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Outcome classifies a position for the side to move.
type Outcome int

const (
	Ongoing Outcome = iota
	Check
	Checkmate
	Stalemate
	Draw
)

// String returns the lower-case name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// IsOver reports whether no further move can be played.
func (o Outcome) IsOver() bool {
	return o == Checkmate || o == Stalemate || o == Draw
}

// ParseOutcome converts a name produced by String back to an Outcome.
func ParseOutcome(name string) (Outcome, error) {
	for o := Ongoing; o <= Draw; o++ {
		if strings.EqualFold(name, o.String()) {
			return o, nil
		}
	}
	return Ongoing, fmt.Errorf("unknown outcome %q", name)
}

// IsCheckmate returns true if the side to move is in check with no legal move.
func IsCheckmate(state State) bool {
	return IsInCheck(state) && !hasMovesIgnoringDrawCounter(state)
}

// IsStalemate returns true if the side to move is not in check but has no
// legal move.
func IsStalemate(state State) bool {
	return !IsInCheck(state) && !hasMovesIgnoringDrawCounter(state)
}

// IsDraw returns true once the move-limit counter is exhausted.
func IsDraw(state State) bool {
	return state.DrawCounterExhausted()
}

// IsGameOver returns true on checkmate, stalemate or an exhausted draw counter.
func IsGameOver(state State) bool {
	return Status(state).IsOver()
}

// Winner returns the side that delivered checkmate. Any other position has
// no winner.
func Winner(state State) (chess.Colour, bool) {
	if !IsCheckmate(state) {
		return chess.White, false
	}
	return state.ToMove.Opposite(), true
}

// Status classifies the position. Mate and stalemate take precedence over
// the draw counter.
func Status(state State) Outcome {
	inCheck := IsInCheck(state)
	if !hasMovesIgnoringDrawCounter(state) {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}
	if IsDraw(state) {
		return Draw
	}
	if inCheck {
		return Check
	}
	return Ongoing
}

// hasMovesIgnoringDrawCounter asks whether the side to move would have a
// legal move if the counter were not exhausted, so that running out of
// moves is not mistaken for mate or stalemate.
func hasMovesIgnoringDrawCounter(state State) bool {
	trial := state
	if trial.DrawCounterExhausted() {
		trial.MovesBeforeDraw = DrawLimit
	}
	return HasLegalMoves(trial)
}
