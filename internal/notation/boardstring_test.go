package notation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestParseBoardString_Standard(t *testing.T) {
	got, err := ParseBoardString(StandardBoardString)
	testutil.RequireNoError(t, err)

	if diff := cmp.Diff(engine.NewStandardState(), got); diff != "" {
		t.Errorf("standard position mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatBoardString_Standard(t *testing.T) {
	got := FormatBoardString(engine.NewStandardState())
	testutil.AssertEqual(t, got, StandardBoardString)
}

func TestBoardString_RoundTrip(t *testing.T) {
	positions := testutil.OraclePositions()
	positions["fools mate"] = testutil.FoolsMate
	positions["stalemated"] = testutil.Stalemated

	for name, fen := range positions {
		t.Run(name, func(t *testing.T) {
			state, err := ParseBoardString(fen)
			testutil.RequireNoError(t, err)
			testutil.AssertEqual(t, FormatBoardString(state), fen)
		})
	}
}

func TestBoardString_AfterMoves(t *testing.T) {
	state := engine.NewStandardState()
	for _, m := range []chess.Move{
		chess.MoveOf("e2", "e4"),
		chess.MoveOf("c7", "c5"),
		chess.MoveOf("g1", "f3"),
	} {
		var err error
		state, err = engine.TryMove(state, m, chess.Empty, true)
		testutil.RequireNoError(t, err)
	}

	want := "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"
	testutil.AssertEqual(t, FormatBoardString(state), want)
}

func TestBoardString_CastlingRightsAfterRookMove(t *testing.T) {
	state := MustParseBoardString("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	state, err := engine.TryMove(state, chess.MoveOf("h1", "h2"), chess.Empty, true)
	testutil.RequireNoError(t, err)
	state, err = engine.TryMove(state, chess.MoveOf("e8", "d8"), chess.Empty, true)
	testutil.RequireNoError(t, err)

	testutil.AssertContains(t, FormatBoardString(state), " w Q - ")
}

func TestParseBoardString_MovedFlags(t *testing.T) {
	state := MustParseBoardString("r3k2r/1p6/8/8/4P3/8/8/R3K2R w Kq - 0 1")

	tests := []struct {
		square string
		moved  bool
	}{
		{"e1", false}, // White keeps K
		{"h1", false},
		{"a1", true}, // Q missing
		{"e8", false},
		{"a8", false},
		{"h8", true},
		{"b7", false},
		{"e4", true},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			p := state.Board.Get(chess.MustSquare(tt.square))
			if p.Moved != tt.moved {
				t.Errorf("%s on %s moved = %v, want %v", p, tt.square, p.Moved, tt.moved)
			}
		})
	}
}

func TestParseBoardString_NoRightsMarksKing(t *testing.T) {
	state := MustParseBoardString("r3k2r/8/8/8/8/8/8/R3K2R w k - 0 1")

	testutil.AssertTrue(t, state.Board.Get(chess.MustSquare("e1")).Moved, "white king")
	testutil.AssertFalse(t, state.Board.Get(chess.MustSquare("e8")).Moved, "black king")

	_, err := engine.TryMove(state, chess.MoveOf("e1", "g1"), chess.Empty, true)
	testutil.AssertErrorIs(t, err, errors.ErrCastleUnavailable)
}

func TestParseBoardString_EnPassant(t *testing.T) {
	state, err := ParseBoardString(testutil.EnPassant)
	testutil.RequireNoError(t, err)

	testutil.AssertTrue(t, state.HasLastMove)
	testutil.AssertTrue(t, state.LastMoveDoubleStep)
	testutil.AssertEqual(t, state.LastMove, chess.MoveOf("f7", "f5"))

	after, err := engine.TryMove(state, chess.MoveOf("e5", "f6"), chess.Empty, true)
	testutil.RequireNoError(t, err)
	testutil.AssertTrue(t, after.Board.IsEmpty(chess.MustSquare("f5")), "captured pawn removed")

	// d5 was not the last double step.
	_, err = engine.TryMove(state, chess.MoveOf("e5", "d6"), chess.Empty, true)
	testutil.AssertErrorIs(t, err, errors.ErrShapeViolation)
}

func TestParseBoardString_Clocks(t *testing.T) {
	tests := []struct {
		fen      string
		counter  int
		fullMove int
	}{
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", 100, 1},
		{"4k3/8/8/8/8/8/8/4K3 w - - 37 60", 63, 60},
		{"4k3/8/8/8/8/8/8/4K3 b - - 100 80", 0, 80},
		{"4k3/8/8/8/8/8/8/4K3 b - - 150 80", 0, 80},
	}
	for _, tt := range tests {
		t.Run(tt.fen, func(t *testing.T) {
			state := MustParseBoardString(tt.fen)
			testutil.AssertEqual(t, state.MovesBeforeDraw, tt.counter)
			testutil.AssertEqual(t, state.FullMoveNumber, tt.fullMove)
		})
	}
}

func TestParseBoardString_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		field string
	}{
		{"too few fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", "fields"},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1", "placement"},
		{"bad piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1", "placement"},
		{"digit nine", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"long rank", "rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"short rank", "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"pawn on back rank", "rnbqkbnP/pppppppp/8/8/8/8/PPPPPPP1/RNBQKBNR w KQkq - 0 1", "placement"},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", "side"},
		{"bad castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KX - 0 1", "castling"},
		{"repeated castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KK - 0 1", "castling"},
		{"en passant wrong rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1", "en passant"},
		{"en passant without pawn", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e6 0 1", "en passant"},
		{"en passant bad square", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z6 0 1", "en passant"},
		{"negative clock", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1", "halfmove clock"},
		{"word clock", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1", "halfmove clock"},
		{"zero fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0", "fullmove number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBoardString(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrMalformedBoardString)

			var bse *errors.BoardStringError
			if !errors.As(err, &bse) {
				t.Fatalf("error %v is not a BoardStringError", err)
			}
			testutil.AssertEqual(t, bse.Field, tt.field)
		})
	}
}

func TestMustParseBoardString_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseBoardString did not panic")
		}
	}()
	MustParseBoardString("not a board")
}

func TestFormatBoardString_EmptyBoard(t *testing.T) {
	got := FormatBoardString(engine.NewState())
	testutil.AssertTrue(t, strings.HasPrefix(got, "8/8/8/8/8/8/8/8 w - - "), got)
}
