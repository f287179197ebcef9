// Package output renders boards, move lists and scenario reports.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// DefaultLineLength is used when a writer is given no line length.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteMoveList writes plies as a numbered move list, e.g.
// "1. f3 e5 2. g4 Qh4# 0-1", wrapping at maxLineLength. An empty result
// leaves the result marker off.
func WriteMoveList(w io.Writer, plies []game.Ply, result string, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)

	for i, ply := range plies {
		switch {
		case ply.Colour == chess.White:
			ow.Write(fmt.Sprintf("%d.", ply.Number))
		case i == 0:
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", ply.Number))
		}
		ow.Write(ply.Algebraic)
	}

	if result != "" {
		ow.Write(result)
	}
	ow.NewLine()
}

// Result returns the game result marker: "1-0", "0-1", "1/2-1/2" or "*"
// while the game goes on.
func Result(g *game.Game) string {
	switch g.Status() {
	case engine.Checkmate:
		if winner, _ := g.Winner(); winner == chess.White {
			return "1-0"
		}
		return "0-1"
	case engine.Stalemate, engine.Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// MoveTexts lists every legal move of state in algebraic notation. A pawn
// move to the last rank is listed once per promotion piece.
func MoveTexts(state engine.State) []string {
	var out []string
	for _, m := range engine.LegalMoves(state) {
		for _, promotion := range promotionChoices(state, m) {
			text, err := notation.FormatAlgebraic(state, m, promotion)
			if err != nil {
				continue
			}
			out = append(out, text)
		}
	}
	return out
}

// CoordinateTexts lists every legal move of state in coordinate notation.
func CoordinateTexts(state engine.State) []string {
	var out []string
	for _, m := range engine.LegalMoves(state) {
		for _, promotion := range promotionChoices(state, m) {
			out = append(out, notation.FormatMove(m, promotion))
		}
	}
	return out
}

var promotionKinds = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

func promotionChoices(state engine.State, m chess.Move) []chess.Kind {
	piece := state.Board.Get(m.From)
	if piece.Kind == chess.Pawn && m.To.Rank == piece.Colour.PromotionRank() {
		return promotionKinds
	}
	return []chess.Kind{chess.Empty}
}

// WriteMoves writes texts separated by spaces and wrapped at maxLineLength.
func WriteMoves(w io.Writer, texts []string, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)
	for _, text := range texts {
		ow.Write(text)
	}
	ow.NewLine()
}
