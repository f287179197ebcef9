package notation

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// FormatMove writes coordinate notation: origin, destination and an
// optional promotion letter, e.g. "e2e4" or "e7e8Q".
func FormatMove(move chess.Move, promotion chess.Kind) string {
	if promotion == chess.Empty {
		return move.String()
	}
	return move.String() + string(promotion.Letter())
}

// ParseMove reads coordinate notation. The promotion letter may be either
// case; whether the choice is allowed is left to the engine.
func ParseMove(text string) (chess.Move, chess.Kind, error) {
	s := strings.TrimSpace(text)
	if len(s) != 4 && len(s) != 5 {
		return chess.Move{}, chess.Empty, &errors.NotationError{
			Err: errors.ErrUnparsableNotation, Text: text, Detail: "want four or five characters",
		}
	}

	from, err := chess.ParseSquare(s[:2])
	if err != nil {
		return chess.Move{}, chess.Empty, &errors.NotationError{Err: errors.ErrUnparsableNotation, Text: text, Detail: err.Error()}
	}
	to, err := chess.ParseSquare(s[2:4])
	if err != nil {
		return chess.Move{}, chess.Empty, &errors.NotationError{Err: errors.ErrUnparsableNotation, Text: text, Detail: err.Error()}
	}

	promotion := chess.Empty
	if len(s) == 5 {
		promotion = chess.KindFromLetter(s[4])
		if promotion == chess.Empty {
			return chess.Move{}, chess.Empty, &errors.NotationError{
				Err: errors.ErrUnparsableNotation, Text: text, Detail: "unknown promotion letter",
			}
		}
	}
	return chess.Move{From: from, To: to}, promotion, nil
}

// LooksLikeCoordinates reports whether text has the shape of coordinate
// notation rather than algebraic.
func LooksLikeCoordinates(text string) bool {
	s := strings.TrimSpace(text)
	if len(s) != 4 && len(s) != 5 {
		return false
	}
	if _, err := chess.ParseSquare(s[:2]); err != nil {
		return false
	}
	if _, err := chess.ParseSquare(s[2:4]); err != nil {
		return false
	}
	return len(s) == 4 || chess.KindFromLetter(s[4]) != chess.Empty
}
