// Package errors provides sentinel errors and error types for the chess rules engine.
// Every rejection the engine, notation codec or controller produces wraps one of
// the sentinels below, so callers classify failures with errors.Is() and pull
// context out with errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Sentinel errors for rule violations.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrNullMove indicates a move whose origin equals its destination.
	ErrNullMove = errors.New("null move")

	// ErrOutOfBounds indicates a coordinate outside the 8x8 board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrEmptyOrigin indicates there is no piece on the origin square.
	ErrEmptyOrigin = errors.New("no piece on origin square")

	// ErrSameColourCapture indicates the destination holds a piece of the mover's colour.
	ErrSameColourCapture = errors.New("destination occupied by own piece")

	// ErrWrongTurn indicates the piece does not belong to the side to move.
	ErrWrongTurn = errors.New("not this side's turn")

	// ErrDrawLimitReached indicates the move-limit draw counter is exhausted.
	ErrDrawLimitReached = errors.New("move limit reached")

	// ErrShapeViolation indicates the piece cannot move that way.
	ErrShapeViolation = errors.New("piece cannot move that way")

	// ErrSelfCheck indicates the move would leave the mover's own king in check.
	ErrSelfCheck = errors.New("move leaves king in check")

	// ErrPromotionRequired indicates a pawn reached the last rank without a promotion choice.
	ErrPromotionRequired = errors.New("promotion piece required")

	// ErrPromotionIllegal indicates a promotion to pawn or king.
	ErrPromotionIllegal = errors.New("illegal promotion piece")

	// ErrCastleUnavailable indicates castling preconditions are not met.
	ErrCastleUnavailable = errors.New("castling unavailable")
)

// Sentinel errors for notation and input handling.
var (
	// ErrAmbiguousNotation indicates more than one legal move matches the notation.
	ErrAmbiguousNotation = errors.New("ambiguous notation")

	// ErrUnparsableNotation indicates notation that is malformed or matches no legal move.
	ErrUnparsableNotation = errors.New("unparsable notation")

	// ErrMalformedBoardString indicates a board string that cannot be imported.
	ErrMalformedBoardString = errors.New("malformed board string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrScenario indicates a scenario whose outcome did not match its expectation.
	ErrScenario = errors.New("scenario mismatch")

	// ErrNoHistory indicates an undo past the first recorded position.
	ErrNoHistory = errors.New("not enough moves to undo")
)

// names maps stable identifiers to sentinels. More specific entries come
// first so Name reports the most telling sentinel in an aggregate.
var names = []struct {
	name string
	err  error
}{
	{"null-move", ErrNullMove},
	{"out-of-bounds", ErrOutOfBounds},
	{"empty-origin", ErrEmptyOrigin},
	{"same-colour-capture", ErrSameColourCapture},
	{"self-check", ErrSelfCheck},
	{"wrong-turn", ErrWrongTurn},
	{"draw-limit", ErrDrawLimitReached},
	{"promotion-required", ErrPromotionRequired},
	{"promotion-illegal", ErrPromotionIllegal},
	{"castle-unavailable", ErrCastleUnavailable},
	{"shape-violation", ErrShapeViolation},
	{"ambiguous-notation", ErrAmbiguousNotation},
	{"unparsable-notation", ErrUnparsableNotation},
	{"malformed-board-string", ErrMalformedBoardString},
	{"invalid-config", ErrInvalidConfig},
	{"scenario", ErrScenario},
	{"no-history", ErrNoHistory},
}

// ByName returns the sentinel registered under name, e.g. "self-check",
// or nil if the name is unknown.
func ByName(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range names {
		if n.name == name {
			return n.err
		}
	}
	return nil
}

// Name returns the identifier of the first sentinel err wraps, or "" if none.
func Name(err error) string {
	if err == nil {
		return ""
	}
	for _, n := range names {
		if errors.Is(err, n.err) {
			return n.name
		}
	}
	return ""
}

// Names lists every registered identifier.
func Names() []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.name
	}
	return out
}

// MoveError wraps a legality failure with the move and the piece that
// attempted it.
type MoveError struct {
	Err   error       // The underlying error
	Move  chess.Move  // The rejected move
	Piece chess.Piece // Piece on the origin square (Empty if none)
}

// Error returns a formatted error message including the move.
func (e *MoveError) Error() string {
	var parts []string
	if e.Move.From.Valid() && e.Move.To.Valid() {
		parts = append(parts, "move "+e.Move.String())
	} else {
		parts = append(parts, fmt.Sprintf("move %v-%v", e.Move.From, e.Move.To))
	}
	if !e.Piece.IsEmpty() {
		parts = append(parts, strings.ToLower(e.Piece.String()))
	}
	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// RuleErrors aggregates every sub-rule failure for a piece kind when no
// movement rule matched. errors.Is matches any of the collected errors.
type RuleErrors struct {
	Piece chess.Kind
	Errs  []error
}

// Add appends a sub-rule failure.
func (e *RuleErrors) Add(err error) {
	if err != nil {
		e.Errs = append(e.Errs, err)
	}
}

// Error joins the collected failures.
func (e *RuleErrors) Error() string {
	if len(e.Errs) == 0 {
		return strings.ToLower(e.Piece.String()) + ": " + ErrShapeViolation.Error()
	}
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return strings.ToLower(e.Piece.String()) + ": " + strings.Join(msgs, "; ")
}

// Unwrap exposes every collected failure to errors.Is() and errors.As().
func (e *RuleErrors) Unwrap() []error {
	if len(e.Errs) == 0 {
		return []error{ErrShapeViolation}
	}
	return e.Errs
}

// NotationError represents a failure to parse or resolve move notation.
type NotationError struct {
	Err    error  // The underlying error
	Text   string // The notation as given
	Detail string // What went wrong (optional)
}

// Error returns a formatted error message with the offending text.
func (e *NotationError) Error() string {
	msg := fmt.Sprintf("notation %q", e.Text)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *NotationError) Unwrap() error {
	return e.Err
}

// BoardStringError represents a board string import failure.
type BoardStringError struct {
	Err    error  // The underlying error
	Field  string // Which field failed: placement, side, castling, en passant, clocks
	Detail string // What was found instead
}

// Error returns a formatted error message with field context.
func (e *BoardStringError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}
	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return ErrMalformedBoardString.Error()
}

// Unwrap returns the underlying error.
func (e *BoardStringError) Unwrap() error {
	return e.Err
}

// GameError wraps errors with scenario context: the file and scenario
// name, the ply reached and the move text being played.
type GameError struct {
	Err      error  // The underlying error
	Scenario string // Scenario name
	PlyNum   int    // 1-based ply where the error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	File     string // Source file name (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}
	if e.Scenario != "" {
		parts = append(parts, fmt.Sprintf("scenario %q", e.Scenario))
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
