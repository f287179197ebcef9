// Package game is the controller collaborators drive: it owns one engine
// state, applies moves given as squares, coordinates or notation, and
// answers the check, mate and draw queries.
//
// A Game is not safe for concurrent use.
package game

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// Ply is one applied half-move.
type Ply struct {
	Number     int // full move number the ply belongs to
	Colour     chess.Colour
	Move       chess.Move
	Promotion  chess.Kind
	Coordinate string // e.g. "e7e8Q"
	Algebraic  string // e.g. "e8=Q+"
}

// String returns the ply in move-list form, e.g. "12. Nf3" or "12... Nf6".
func (p Ply) String() string {
	if p.Colour == chess.White {
		return fmt.Sprintf("%d. %s", p.Number, p.Algebraic)
	}
	return fmt.Sprintf("%d... %s", p.Number, p.Algebraic)
}

// Game is a position plus the plies that led to it.
type Game struct {
	state engine.State

	// snapshots[i] is the state before plies[i].
	snapshots []engine.State
	plies     []Ply
}

// New starts a game from the standard position.
func New() *Game {
	return FromState(engine.NewStandardState())
}

// NewEmpty starts a game on an empty board with White to move.
func NewEmpty() *Game {
	return FromState(engine.NewState())
}

// FromState starts a game from an arbitrary state.
func FromState(state engine.State) *Game {
	return &Game{state: state}
}

// FromBoardString starts a game from a six-field board string.
func FromBoardString(s string) (*Game, error) {
	state, err := notation.ParseBoardString(s)
	if err != nil {
		return nil, err
	}
	return FromState(state), nil
}

// State returns a copy of the current state.
func (g *Game) State() engine.State {
	return g.state
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.state.ToMove
}

// Board returns a copy of the current board.
func (g *Game) Board() chess.Board {
	return g.state.Board
}

// ApplyMove plays move with an optional promotion choice. On error the game
// is unchanged.
func (g *Game) ApplyMove(move chess.Move, promotion chess.Kind) error {
	next, err := engine.TryMove(g.state, move, promotion, true)
	if err != nil {
		return err
	}

	san, err := notation.FormatAlgebraic(g.state, move, promotion)
	if err != nil {
		return err
	}
	if next.Board.Get(move.To).Kind == g.state.Board.Get(move.From).Kind {
		promotion = chess.Empty
	}

	g.snapshots = append(g.snapshots, g.state)
	g.plies = append(g.plies, Ply{
		Number:     g.state.FullMoveNumber,
		Colour:     g.state.ToMove,
		Move:       move,
		Promotion:  promotion,
		Coordinate: notation.FormatMove(move, promotion),
		Algebraic:  san,
	})
	g.state = next
	return nil
}

// ApplyCoordinates plays a move given as board indices, file 0 being the a
// file and rank 0 the eighth rank.
func (g *Game) ApplyCoordinates(fromFile, fromRank, toFile, toRank int, promotion chess.Kind) error {
	return g.ApplyMove(chess.Move{
		From: chess.Sq(fromFile, fromRank),
		To:   chess.Sq(toFile, toRank),
	}, promotion)
}

// ApplyAlgebraic plays a move in short algebraic notation such as "Nf3".
func (g *Game) ApplyAlgebraic(text string) error {
	move, promotion, err := notation.FromAlgebraic(g.state, text)
	if err != nil {
		return err
	}
	return g.ApplyMove(move, promotion)
}

// ApplyNotation plays a move in coordinate notation such as "e7e8Q".
func (g *Game) ApplyNotation(text string) error {
	move, promotion, err := notation.ParseMove(text)
	if err != nil {
		return err
	}
	return g.ApplyMove(move, promotion)
}

// Play accepts either coordinate or algebraic notation.
func (g *Game) Play(text string) error {
	if notation.LooksLikeCoordinates(text) {
		return g.ApplyNotation(text)
	}
	return g.ApplyAlgebraic(text)
}

// PlayAll plays each move in turn and stops at the first failure, which is
// reported with the ply it happened on.
func (g *Game) PlayAll(moves ...string) error {
	for i, text := range moves {
		if err := g.Play(text); err != nil {
			return &errors.GameError{Err: err, PlyNum: i + 1, MoveText: text}
		}
	}
	return nil
}

// Notation writes move in short algebraic notation for the current position.
func (g *Game) Notation(move chess.Move, promotion chess.Kind) (string, error) {
	return notation.FormatAlgebraic(g.state, move, promotion)
}

// BoardString exports the current position.
func (g *Game) BoardString() string {
	return notation.FormatBoardString(g.state)
}

// LegalMoves returns every legal move in the current position.
func (g *Game) LegalMoves() []chess.Move {
	return engine.LegalMoves(g.state)
}

// LegalMovesFrom returns the legal moves of the piece on sq.
func (g *Game) LegalMovesFrom(sq chess.Square) []chess.Move {
	return engine.LegalMovesFrom(g.state, sq)
}

func (g *Game) IsCheck() bool     { return engine.IsInCheck(g.state) }
func (g *Game) IsCheckmate() bool { return engine.IsCheckmate(g.state) }
func (g *Game) IsStalemate() bool { return engine.IsStalemate(g.state) }
func (g *Game) IsDraw() bool      { return engine.IsDraw(g.state) }
func (g *Game) IsGameOver() bool  { return engine.IsGameOver(g.state) }

// Winner returns the side that delivered checkmate.
func (g *Game) Winner() (chess.Colour, bool) {
	return engine.Winner(g.state)
}

// Status classifies the current position.
func (g *Game) Status() engine.Outcome {
	return engine.Status(g.state)
}

// HasInsufficientMaterial reports a dead position. It is informational and
// does not end the game.
func (g *Game) HasInsufficientMaterial() bool {
	return engine.HasInsufficientMaterial(g.state)
}

// History returns the applied plies, oldest first.
func (g *Game) History() []Ply {
	out := make([]Ply, len(g.plies))
	copy(out, g.plies)
	return out
}

// Len returns the number of applied plies.
func (g *Game) Len() int {
	return len(g.plies)
}

// Undo takes back the last n plies.
func (g *Game) Undo(n int) error {
	if n < 1 {
		return errors.Wrapf(errors.ErrNoHistory, "invalid undo count %d", n)
	}
	if n > len(g.plies) {
		return errors.Wrapf(errors.ErrNoHistory, "cannot undo %d plies, only %d played", n, len(g.plies))
	}

	keep := len(g.plies) - n
	g.state = g.snapshots[keep]
	g.snapshots = g.snapshots[:keep]
	g.plies = g.plies[:keep]
	return nil
}
