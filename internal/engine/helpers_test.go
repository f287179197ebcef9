package engine

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// position builds a state from the placement field of a board string.
// Pawns off their starting rank are marked as moved; everything else is
// unmoved.
func position(tb testing.TB, placement string, toMove chess.Colour) State {
	tb.Helper()

	s := NewState()
	s.ToMove = toMove

	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		tb.Fatalf("placement %q has %d ranks", placement, len(ranks))
	}
	for rank, row := range ranks {
		file := 0
		for _, c := range []byte(row) {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind := chess.KindFromLetter(c)
			if kind == chess.Empty {
				tb.Fatalf("placement %q: bad letter %q", placement, c)
			}
			colour := chess.White
			if c >= 'a' {
				colour = chess.Black
			}
			p := chess.NewPiece(kind, colour)
			if kind == chess.Pawn && rank != colour.PawnRank() {
				p.Moved = true
			}
			s.Board.Set(chess.Sq(file, rank), p)
			file++
		}
	}
	return s
}

// parseMove reads coordinate notation with an optional promotion letter.
func parseMove(tb testing.TB, text string) (chess.Move, chess.Kind) {
	tb.Helper()
	if len(text) != 4 && len(text) != 5 {
		tb.Fatalf("bad move %q", text)
	}
	m := chess.MoveOf(text[:2], text[2:4])
	promotion := chess.Empty
	if len(text) == 5 {
		promotion = chess.KindFromLetter(text[4])
	}
	return m, promotion
}

// play applies each move with full verification, failing the test on the
// first rejection.
func play(tb testing.TB, s State, moves ...string) State {
	tb.Helper()
	for _, text := range moves {
		m, promotion := parseMove(tb, text)
		next, err := TryMove(s, m, promotion, true)
		if err != nil {
			tb.Fatalf("TryMove(%s) error = %v", text, err)
		}
		s = next
	}
	return s
}

func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
