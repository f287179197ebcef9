package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the side to move has its king attacked.
// A board without that king is never in check.
//
// An attack is any opponent piece that could move onto the king's square if
// it were the opponent's turn. The trial copy ignores the draw counter and
// offers a queen for pawns capturing onto the last rank.
func IsInCheck(state State) bool {
	return len(findAttackers(state, true)) > 0
}

// Attackers returns the squares of opponent pieces giving check to the side
// to move.
func Attackers(state State) []chess.Square {
	return findAttackers(state, false)
}

func findAttackers(state State, first bool) []chess.Square {
	kingSq, ok := state.Board.FindKing(state.ToMove)
	if !ok {
		return nil
	}

	trial := state
	trial.ToMove = state.ToMove.Opposite()
	trial.MovesBeforeDraw = DrawLimit

	var out []chess.Square
	for _, from := range trial.Board.Occupied(trial.ToMove) {
		if _, err := TryMove(trial, chess.Move{From: from, To: kingSq}, chess.Queen, false); err != nil {
			continue
		}
		out = append(out, from)
		if first {
			break
		}
	}
	return out
}
