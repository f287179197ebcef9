package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// StandardBoardString is the board string of the standard starting position.
const StandardBoardString = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// homeFile is the file kings start on.
const homeFile = 4

// ParseBoardString imports a six-field board string (FEN layout).
//
// Castling rights are carried by Moved flags: a missing right marks the
// corner rook as moved, and a colour with no rights at all has its king
// marked as moved. An en passant square is accepted only when an enemy pawn
// stands just past it, and it becomes that pawn's double step as the last
// move. The halfmove clock is turned into the draw counter.
func ParseBoardString(s string) (engine.State, error) {
	parts := strings.Fields(s)
	if len(parts) != 6 {
		return engine.State{}, malformed("fields", "want 6 fields, got %d", len(parts))
	}

	state := engine.NewState()

	if err := parsePiecePositions(&state.Board, parts[0]); err != nil {
		return engine.State{}, err
	}
	if err := parseSideToMove(&state, parts[1]); err != nil {
		return engine.State{}, err
	}
	if err := parseCastlingRights(&state.Board, parts[2]); err != nil {
		return engine.State{}, err
	}
	if err := parseEnPassant(&state, parts[3]); err != nil {
		return engine.State{}, err
	}
	if err := parseClocks(&state, parts[4], parts[5]); err != nil {
		return engine.State{}, err
	}
	return state, nil
}

// MustParseBoardString is like ParseBoardString but panics on error.
func MustParseBoardString(s string) engine.State {
	state, err := ParseBoardString(s)
	if err != nil {
		panic(err)
	}
	return state
}

func malformed(field, format string, args ...interface{}) error {
	return &errors.BoardStringError{
		Err:    errors.ErrMalformedBoardString,
		Field:  field,
		Detail: fmt.Sprintf(format, args...),
	}
}

// parsePiecePositions parses the piece placement field.
func parsePiecePositions(board *chess.Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return malformed("placement", "want 8 ranks, got %d", len(ranks))
	}

	for rank, row := range ranks {
		file := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				if file > chess.BoardSize {
					return malformed("placement", "rank %c is too long", chess.Sq(0, rank).RankDigit())
				}
				continue
			}

			kind := chess.KindFromLetter(c)
			if kind == chess.Empty {
				return malformed("placement", "invalid piece character %q", c)
			}
			if file >= chess.BoardSize {
				return malformed("placement", "rank %c is too long", chess.Sq(0, rank).RankDigit())
			}

			colour := chess.White
			if c >= 'a' {
				colour = chess.Black
			}
			if kind == chess.Pawn && (rank == 0 || rank == chess.BoardSize-1) {
				return malformed("placement", "pawn on %s", chess.Sq(file, rank))
			}

			p := chess.NewPiece(kind, colour)
			switch kind {
			case chess.Pawn:
				p.Moved = rank != colour.PawnRank()
			case chess.King:
				p.Moved = rank != colour.HomeRank() || file != homeFile
			case chess.Rook:
				p.Moved = rank != colour.HomeRank() || (file != 0 && file != chess.BoardSize-1)
			}
			board.Set(chess.Sq(file, rank), p)
			file++
		}
		if file != chess.BoardSize {
			return malformed("placement", "rank %c has %d files", chess.Sq(0, rank).RankDigit(), file)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(state *engine.State, side string) error {
	switch side {
	case "w":
		state.ToMove = chess.White
	case "b":
		state.ToMove = chess.Black
	default:
		return malformed("side", "want w or b, got %q", side)
	}
	return nil
}

// castlingRight ties a castling letter to the corner rook it depends on.
type castlingRight struct {
	letter byte
	colour chess.Colour
	file   int
}

var castlingRights = []castlingRight{
	{'K', chess.White, chess.BoardSize - 1},
	{'Q', chess.White, 0},
	{'k', chess.Black, chess.BoardSize - 1},
	{'q', chess.Black, 0},
}

// parseCastlingRights applies the castling field by marking the pieces that
// lost their rights as moved.
func parseCastlingRights(board *chess.Board, field string) error {
	granted := make(map[byte]bool)
	if field != "-" {
		for i := 0; i < len(field); i++ {
			c := field[i]
			if strings.IndexByte("KQkq", c) < 0 {
				return malformed("castling", "invalid letter %q", c)
			}
			if granted[c] {
				return malformed("castling", "repeated letter %q", c)
			}
			granted[c] = true
		}
	}

	remaining := map[chess.Colour]int{}
	for _, right := range castlingRights {
		if granted[right.letter] {
			remaining[right.colour]++
			continue
		}
		markMoved(board, chess.Sq(right.file, right.colour.HomeRank()), chess.Rook, right.colour)
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if remaining[colour] > 0 {
			continue
		}
		if sq, ok := board.FindKing(colour); ok {
			markMoved(board, sq, chess.King, colour)
		}
	}
	return nil
}

func markMoved(board *chess.Board, sq chess.Square, kind chess.Kind, colour chess.Colour) {
	p := board.Get(sq)
	if p.Is(kind, colour) {
		p.Moved = true
		board.Set(sq, p)
	}
}

// parseEnPassant parses the en passant target square field and rebuilds the
// double step that produced it.
func parseEnPassant(state *engine.State, field string) error {
	if field == "-" {
		return nil
	}
	target, err := chess.ParseSquare(field)
	if err != nil {
		return malformed("en passant", "%v", err)
	}

	enemy := state.ToMove.Opposite()
	fwd := enemy.Forward()
	if target.Rank != enemy.PawnRank()+fwd {
		return malformed("en passant", "%s is not on the skipped rank", target)
	}
	landed := target.Offset(0, fwd)
	origin := target.Offset(0, -fwd)
	if !state.Board.Get(landed).Is(chess.Pawn, enemy) {
		return malformed("en passant", "no %s pawn on %s", strings.ToLower(enemy.String()), landed)
	}
	if !state.Board.IsEmpty(target) || !state.Board.IsEmpty(origin) {
		return malformed("en passant", "%s pawn cannot have just passed %s", strings.ToLower(enemy.String()), target)
	}

	state.LastMove = chess.Move{From: origin, To: landed}
	state.HasLastMove = true
	state.LastMoveDoubleStep = true
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(state *engine.State, halfmove, fullmove string) error {
	clock, err := strconv.Atoi(halfmove)
	if err != nil || clock < 0 {
		return malformed("halfmove clock", "want a non-negative number, got %q", halfmove)
	}
	number, err := strconv.Atoi(fullmove)
	if err != nil || number < 1 {
		return malformed("fullmove number", "want a positive number, got %q", fullmove)
	}

	state.MovesBeforeDraw = engine.DrawLimit - clock
	if state.MovesBeforeDraw < 0 {
		state.MovesBeforeDraw = 0
	}
	state.FullMoveNumber = number
	return nil
}

// FormatBoardString exports state as a six-field board string.
func FormatBoardString(state engine.State) string {
	var sb strings.Builder

	writePiecePositions(&sb, &state.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, state.ToMove)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, &state.Board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, state)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", engine.DrawLimit-state.MovesBeforeDraw, state.FullMoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.Sq(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, side chess.Colour) {
	if side == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights derives the castling letters from the Moved flags of
// the kings and corner rooks.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, right := range castlingRights {
		home := right.colour.HomeRank()
		king := board.Get(chess.Sq(homeFile, home))
		rook := board.Get(chess.Sq(right.file, home))
		if king.Is(chess.King, right.colour) && !king.Moved && rook.Is(chess.Rook, right.colour) && !rook.Moved {
			sb.WriteByte(right.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, state engine.State) {
	if sq, ok := state.EnPassantTarget(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
}
