// Package notation converts between engine moves and text: short algebraic
// notation, coordinate notation and board strings.
package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Castle identifies a castling request.
type Castle int

const (
	NoCastle Castle = iota
	Kingside
	Queenside
)

// Unknown marks an origin file or rank the notation did not give.
const Unknown = -1

// Request is parsed algebraic notation before it is matched against a
// position.
type Request struct {
	Text      string
	Castle    Castle
	Kind      chess.Kind
	KindGiven bool
	FromFile  int
	FromRank  int
	To        chess.Square
	Promotion chess.Kind
}

// HasOrigin reports whether the notation named the origin square outright.
func (r Request) HasOrigin() bool {
	return r.FromFile != Unknown && r.FromRank != Unknown
}

// decoration is stripped before parsing.
const decoration = "x+#!?=:-"

// ParseAlgebraic reads short algebraic notation such as "e4", "Nbd2",
// "exd5", "e8=Q", "R1a3", "Ra1b1" or "O-O-O". Capture, check and annotation
// marks are ignored, so "Nf3" and "N:f3+!" are the same request. A four
// character body is always a whole origin square followed by the
// destination.
func ParseAlgebraic(text string) (Request, error) {
	req := Request{
		Text:     text,
		Kind:     chess.Pawn,
		FromFile: Unknown,
		FromRank: Unknown,
	}

	s := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || strings.ContainsRune(decoration, r) {
			return -1
		}
		return r
	}, text)

	switch s {
	case "OO", "00":
		req.Castle = Kingside
		req.Kind = chess.King
		return req, nil
	case "OOO", "000":
		req.Castle = Queenside
		req.Kind = chess.King
		return req, nil
	}

	if n := len(s); n > 2 && isPieceCode(s[n-1]) {
		req.Promotion = chess.KindFromLetter(s[n-1])
		s = s[:n-1]
	}
	if len(s) > 0 && (isPieceCode(s[0]) || s[0] == 'P') {
		req.Kind = chess.KindFromLetter(s[0])
		req.KindGiven = true
		s = s[1:]
	}
	if req.Promotion != chess.Empty && req.Kind != chess.Pawn {
		return Request{}, &errors.NotationError{Err: errors.ErrUnparsableNotation, Text: text, Detail: "only pawns promote"}
	}

	var ok bool
	switch len(s) {
	case 2:
		req.To, ok = parseSquare(s)
	case 3:
		req.To, ok = parseSquare(s[1:])
		if ok {
			ok = parseDisambiguator(&req, s[0])
		}
	case 4:
		var from chess.Square
		from, ok = parseSquare(s[:2])
		if ok {
			req.FromFile, req.FromRank = from.File, from.Rank
			req.To, ok = parseSquare(s[2:])
		}
	}
	if !ok {
		return Request{}, &errors.NotationError{Err: errors.ErrUnparsableNotation, Text: text}
	}
	return req, nil
}

// isPieceCode reports whether c names a piece other than a pawn.
func isPieceCode(c byte) bool {
	return strings.IndexByte("NBRQK", c) >= 0
}

func parseSquare(s string) (chess.Square, bool) {
	sq, err := chess.ParseSquare(s)
	return sq, err == nil
}

func parseDisambiguator(req *Request, c byte) bool {
	if file, ok := chess.FileFromLetter(c); ok {
		req.FromFile = file
		return true
	}
	if rank, ok := chess.RankFromDigit(c); ok {
		req.FromRank = rank
		return true
	}
	return false
}

// Resolve finds the one legal move in state that req describes.
//
// Every piece of the requested kind and colour whose square matches the
// partial origin is tried. More than one legal candidate is ambiguous; no
// legal candidate is unparsable, with the engine's reason attached when
// there was exactly one piece to try.
func Resolve(state engine.State, req Request) (chess.Move, error) {
	if req.Castle != NoCastle {
		return resolveCastle(state, req)
	}

	if req.HasOrigin() {
		m := chess.Move{From: chess.Sq(req.FromFile, req.FromRank), To: req.To}
		if req.KindGiven && state.Board.Get(m.From).Kind != req.Kind {
			return chess.Move{}, &errors.NotationError{
				Err:    errors.ErrUnparsableNotation,
				Text:   req.Text,
				Detail: fmt.Sprintf("no %s on %s", strings.ToLower(req.Kind.String()), m.From),
			}
		}
		if _, err := engine.TryMove(state, m, req.Promotion, true); err != nil {
			return chess.Move{}, &errors.NotationError{Err: errors.Join(errors.ErrUnparsableNotation, err), Text: req.Text}
		}
		return m, nil
	}

	var (
		found      []chess.Move
		candidates int
		lastErr    error
	)
	for _, from := range state.Board.Occupied(state.ToMove) {
		if !matchesOrigin(state, req, from) {
			continue
		}
		candidates++
		m := chess.Move{From: from, To: req.To}
		if _, err := engine.TryMove(state, m, req.Promotion, true); err != nil {
			lastErr = err
			continue
		}
		found = append(found, m)
	}

	switch {
	case len(found) == 1:
		return found[0], nil
	case len(found) > 1:
		return chess.Move{}, &errors.NotationError{
			Err:    errors.ErrAmbiguousNotation,
			Text:   req.Text,
			Detail: fmt.Sprintf("%d pieces can move there", len(found)),
		}
	case candidates == 1:
		return chess.Move{}, &errors.NotationError{Err: errors.Join(errors.ErrUnparsableNotation, lastErr), Text: req.Text}
	default:
		return chess.Move{}, &errors.NotationError{
			Err:    errors.ErrUnparsableNotation,
			Text:   req.Text,
			Detail: fmt.Sprintf("%d candidates, none legal", candidates),
		}
	}
}

func matchesOrigin(state engine.State, req Request, from chess.Square) bool {
	if state.Board.Get(from).Kind != req.Kind {
		return false
	}
	if req.FromFile != Unknown && from.File != req.FromFile {
		return false
	}
	if req.FromRank != Unknown && from.Rank != req.FromRank {
		return false
	}
	return true
}

func resolveCastle(state engine.State, req Request) (chess.Move, error) {
	kingSq, ok := state.Board.FindKing(state.ToMove)
	if !ok {
		return chess.Move{}, &errors.NotationError{Err: errors.ErrUnparsableNotation, Text: req.Text, Detail: "no king"}
	}
	dir := 2
	if req.Castle == Queenside {
		dir = -2
	}
	m := chess.Move{From: kingSq, To: kingSq.Offset(dir, 0)}
	if _, err := engine.TryMove(state, m, chess.Empty, true); err != nil {
		return chess.Move{}, &errors.NotationError{Err: errors.Join(errors.ErrUnparsableNotation, err), Text: req.Text}
	}
	return m, nil
}

// FromAlgebraic parses text and resolves it against state.
func FromAlgebraic(state engine.State, text string) (chess.Move, chess.Kind, error) {
	req, err := ParseAlgebraic(text)
	if err != nil {
		return chess.Move{}, chess.Empty, err
	}
	m, err := Resolve(state, req)
	if err != nil {
		return chess.Move{}, chess.Empty, err
	}
	return m, req.Promotion, nil
}
