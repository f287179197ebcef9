package notation

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// FormatAlgebraic writes move in short algebraic notation as played from
// state, e.g. "Nbd2", "exd5", "e8=Q+", "O-O" or "Qh4#". The move must be
// legal in state.
func FormatAlgebraic(state engine.State, move chess.Move, promotion chess.Kind) (string, error) {
	after, err := engine.TryMove(state, move, promotion, true)
	if err != nil {
		return "", err
	}

	piece := state.Board.Get(move.From)
	target := state.Board.Get(move.To)

	var sb strings.Builder
	switch {
	case piece.Kind == chess.King && abs(move.FileDelta()) == 2:
		if move.FileDelta() > 0 {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}

	case piece.Kind == chess.Pawn:
		capture := move.FileDelta() != 0
		if capture {
			sb.WriteByte(move.From.FileLetter())
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.String())
		if after.Board.Get(move.To).Kind != chess.Pawn {
			sb.WriteByte('=')
			sb.WriteByte(promotion.Letter())
		}

	default:
		sb.WriteByte(piece.Kind.Letter())
		sb.WriteString(disambiguation(state, move, piece.Kind))
		if !target.IsEmpty() {
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.String())
	}

	switch {
	case engine.IsCheckmate(after):
		sb.WriteByte('#')
	case engine.IsInCheck(after):
		sb.WriteByte('+')
	}
	return sb.String(), nil
}

// disambiguation returns the shortest origin hint that singles out move
// among pieces of the same kind able to reach the same square.
func disambiguation(state engine.State, move chess.Move, kind chess.Kind) string {
	var rivals []chess.Square
	for _, from := range state.Board.Occupied(state.ToMove) {
		if from == move.From || state.Board.Get(from).Kind != kind {
			continue
		}
		if _, err := engine.TryMove(state, chess.Move{From: from, To: move.To}, chess.Queen, true); err == nil {
			rivals = append(rivals, from)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		sameFile = sameFile || sq.File == move.From.File
		sameRank = sameRank || sq.Rank == move.From.Rank
	}
	switch {
	case !sameFile:
		return string(move.From.FileLetter())
	case !sameRank:
		return string(move.From.RankDigit())
	default:
		return move.From.String()
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
