package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// HasInsufficientMaterial returns true if neither side has mating material.
// It is advisory only: the engine still ends games solely by mate,
// stalemate or the move-limit counter.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(state State) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for _, sq := range chess.Squares() {
		piece := state.Board.Get(sq)
		if piece.IsEmpty() || piece.Kind == chess.King {
			continue
		}

		switch piece.Kind {
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}

		if piece.Colour == chess.White {
			whitePieces = append(whitePieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				whiteBishopOnLight = isLightSquare(sq)
			}
		} else {
			blackPieces = append(blackPieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				blackBishopOnLight = isLightSquare(sq)
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
// a8 is light.
func isLightSquare(sq chess.Square) bool {
	return (sq.File+sq.Rank)%2 == 0
}

// HasStandardMaterial reports whether each side has exactly the material of
// the starting position.
func HasStandardMaterial(state State) bool {
	expected := map[chess.Kind]int{
		chess.Pawn:   8,
		chess.Rook:   2,
		chess.Knight: 2,
		chess.Bishop: 2,
		chess.Queen:  1,
		chess.King:   1,
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for kind, n := range expected {
			if state.Board.Count(kind, colour) != n {
				return false
			}
		}
	}
	return true
}
