package notation

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestParseAlgebraic(t *testing.T) {
	rank := func(c byte) int {
		r, _ := chess.RankFromDigit(c)
		return r
	}

	tests := []struct {
		text string
		want Request
	}{
		{"e4", Request{Kind: chess.Pawn, FromFile: Unknown, FromRank: Unknown, To: chess.MustSquare("e4")}},
		{"Pe4", Request{Kind: chess.Pawn, KindGiven: true, FromFile: Unknown, FromRank: Unknown, To: chess.MustSquare("e4")}},
		{"Nf3", Request{Kind: chess.Knight, KindGiven: true, FromFile: Unknown, FromRank: Unknown, To: chess.MustSquare("f3")}},
		{"N:f3+!", Request{Kind: chess.Knight, KindGiven: true, FromFile: Unknown, FromRank: Unknown, To: chess.MustSquare("f3")}},
		{"Nbd2", Request{Kind: chess.Knight, KindGiven: true, FromFile: 1, FromRank: Unknown, To: chess.MustSquare("d2")}},
		{"R1a3", Request{Kind: chess.Rook, KindGiven: true, FromFile: Unknown, FromRank: rank('1'), To: chess.MustSquare("a3")}},
		{"Qh4xe1", Request{Kind: chess.Queen, KindGiven: true, FromFile: 7, FromRank: rank('4'), To: chess.MustSquare("e1")}},
		{"exd5", Request{Kind: chess.Pawn, FromFile: 4, FromRank: Unknown, To: chess.MustSquare("d5")}},
		{"e8=Q", Request{Kind: chess.Pawn, FromFile: Unknown, FromRank: Unknown, To: chess.MustSquare("e8"), Promotion: chess.Queen}},
		{"bxa1N#", Request{Kind: chess.Pawn, FromFile: 1, FromRank: Unknown, To: chess.MustSquare("a1"), Promotion: chess.Knight}},
		{"e2-e4", Request{Kind: chess.Pawn, FromFile: 4, FromRank: rank('2'), To: chess.MustSquare("e4")}},
		{"O-O", Request{Castle: Kingside, Kind: chess.King, FromFile: Unknown, FromRank: Unknown}},
		{"0-0-0", Request{Castle: Queenside, Kind: chess.King, FromFile: Unknown, FromRank: Unknown}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseAlgebraic(tt.text)
			testutil.RequireNoError(t, err)
			tt.want.Text = tt.text
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestParseAlgebraic_Errors(t *testing.T) {
	for _, text := range []string{"", "hello", "Nz4", "e9", "Kxx", "O-O-O-O", "Raeb1", "Nf3Q", "Ke2=R"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseAlgebraic(text)
			testutil.AssertErrorIs(t, err, errors.ErrUnparsableNotation)
		})
	}
}

func TestRequest_HasOrigin(t *testing.T) {
	req, err := ParseAlgebraic("Ng1f3")
	testutil.RequireNoError(t, err)
	testutil.AssertTrue(t, req.HasOrigin())

	req, err = ParseAlgebraic("Ngf3")
	testutil.RequireNoError(t, err)
	testutil.AssertFalse(t, req.HasOrigin())
}

func TestFromAlgebraic(t *testing.T) {
	const knights = "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1"

	tests := []struct {
		name      string
		fen       string
		text      string
		want      chess.Move
		promotion chess.Kind
	}{
		{"pawn push", StandardBoardString, "e4", chess.MoveOf("e2", "e4"), chess.Empty},
		{"knight", StandardBoardString, "Nf3", chess.MoveOf("g1", "f3"), chess.Empty},
		{"long algebraic", StandardBoardString, "e2-e4", chess.MoveOf("e2", "e4"), chess.Empty},
		{"full origin with piece", StandardBoardString, "Ng1f3", chess.MoveOf("g1", "f3"), chess.Empty},
		{"full origin rook", "4k3/8/8/8/8/8/8/R3K2R w - - 0 1", "Ra1b1", chess.MoveOf("a1", "b1"), chess.Empty},
		{"black reply", testutil.BlackToMove, "Nc6", chess.MoveOf("b8", "c6"), chess.Empty},
		{"file hint", knights, "Nbd2", chess.MoveOf("b1", "d2"), chess.Empty},
		{"other file hint", knights, "Nfd2", chess.MoveOf("f1", "d2"), chess.Empty},
		{"rank hint", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "R5a3", chess.MoveOf("a5", "a3"), chess.Empty},
		{"kingside", testutil.Kiwipete, "O-O", chess.MoveOf("e1", "g1"), chess.Empty},
		{"queenside", testutil.Kiwipete, "O-O-O", chess.MoveOf("e1", "c1"), chess.Empty},
		{"capture", testutil.Kiwipete, "Nxf7", chess.MoveOf("e5", "f7"), chess.Empty},
		{"en passant", testutil.EnPassant, "exf6", chess.MoveOf("e5", "f6"), chess.Empty},
		{"promotion", testutil.Promotion, "a8=Q", chess.MoveOf("a7", "a8"), chess.Queen},
		{"capture promotion", testutil.Promotion, "axb8=N", chess.MoveOf("a7", "b8"), chess.Knight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := MustParseBoardString(tt.fen)

			m, promotion, err := FromAlgebraic(state, tt.text)
			testutil.RequireNoError(t, err)
			testutil.AssertEqual(t, m, tt.want)
			testutil.AssertEqual(t, promotion, tt.promotion)
		})
	}
}

func TestFromAlgebraic_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		text    string
		wantErr error
	}{
		{"ambiguous knight", "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", "Nd2", errors.ErrAmbiguousNotation},
		{"ambiguous rook", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "Ra3", errors.ErrAmbiguousNotation},
		{"no pawn reaches", StandardBoardString, "e5", errors.ErrUnparsableNotation},
		{"wrong piece letter", StandardBoardString, "Bg1f3", errors.ErrUnparsableNotation},
		{"castle through own bishop", "4k3/8/8/8/8/8/8/4KB1R w K - 0 1", "O-O", errors.ErrCastleUnavailable},
		{"castle onto own knight", StandardBoardString, "O-O", errors.ErrSameColourCapture},
		{"pinned knight", "4r1k1/8/8/8/8/8/4N3/4K3 w - - 0 1", "Nc3", errors.ErrSelfCheck},
		{"promotion missing", testutil.Promotion, "a8", errors.ErrPromotionRequired},
		{"promotion to king", testutil.Promotion, "a8=K", errors.ErrPromotionIllegal},
		{"not notation", StandardBoardString, "zz", errors.ErrUnparsableNotation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := MustParseBoardString(tt.fen)

			_, _, err := FromAlgebraic(state, tt.text)
			testutil.AssertErrorIs(t, err, tt.wantErr)

			var ne *errors.NotationError
			if !errors.As(err, &ne) {
				t.Fatalf("error %v is not a NotationError", err)
			}
			testutil.AssertEqual(t, ne.Text, tt.text)
		})
	}
}
