package testutil

// Board strings shared by tests across packages. Each names a position that
// exercises a particular corner of the rules.
const (
	InitialPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// ItalianGame is reached after 1.e4 e5 2.Nf3 Nc6 3.Bc4 Bc5.
	ItalianGame = "r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4"

	// Kiwipete has castling both ways, pins, and an en passant capture in
	// reach for Black after a double step.
	Kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// EnPassant has a black pawn that just double-stepped beside a white one.
	EnPassant = "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3"

	// Promotion has a white pawn one step from promoting, by push or capture.
	Promotion = "1n5k/P7/8/8/8/8/8/4K3 w - - 0 1"

	// Endgame is a sparse rook ending from the perft suite.
	Endgame = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

	// Tactical has checks, promotions and one castling right.
	Tactical = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"

	// BlackToMove is the standard position after 1.e4.
	BlackToMove = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"

	// FoolsMate is the position after 1.f3 e5 2.g4 Qh4#.
	FoolsMate = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

	// Stalemated has Black to move with no legal move and not in check.
	Stalemated = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)

// OraclePositions lists the positions compared against an independent move
// generator.
func OraclePositions() map[string]string {
	return map[string]string{
		"initial":       InitialPosition,
		"italian":       ItalianGame,
		"kiwipete":      Kiwipete,
		"en passant":    EnPassant,
		"promotion":     Promotion,
		"endgame":       Endgame,
		"tactical":      Tactical,
		"black to move": BlackToMove,
	}
}
