package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns every move the side to move may make, ordered by
// origin then destination (a8 first). Pawn moves onto the last rank appear
// once; any promotion choice makes them legal.
func LegalMoves(state State) []chess.Move {
	var moves []chess.Move
	for _, from := range state.Board.Occupied(state.ToMove) {
		moves = append(moves, LegalMovesFrom(state, from)...)
	}
	return moves
}

// LegalMovesFrom returns the legal moves of the piece on from.
func LegalMovesFrom(state State, from chess.Square) []chess.Move {
	var moves []chess.Move
	for _, to := range chess.Squares() {
		m := chess.Move{From: from, To: to}
		if isLegal(state, m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(state State) bool {
	for _, from := range state.Board.Occupied(state.ToMove) {
		for _, to := range chess.Squares() {
			if isLegal(state, chess.Move{From: from, To: to}) {
				return true
			}
		}
	}
	return false
}

// isLegal tests a move on a disposable copy of the state.
func isLegal(state State, m chess.Move) bool {
	_, err := TryMove(state, m, chess.Queen, true)
	return err == nil
}
