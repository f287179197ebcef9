package scenario

import (
	"fmt"
	"strings"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// Result is the outcome of replaying one scenario.
type Result struct {
	Scenario string
	File     string
	Plies    int            // moves applied
	Status   engine.Outcome // status of the final position
	Board    string         // board string of the final position
	Failures []string       // one line per unmet expectation
	Err      error          // nil when the scenario passed
	Elapsed  time.Duration
}

// Passed reports whether every expectation held.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Options tune a run.
type Options struct {
	// MaxPlies rejects scenarios longer than this (0 = no limit).
	MaxPlies int

	// Trace, when set, is called after every accepted move.
	Trace func(sc *Scenario, ply game.Ply)
}

// Run replays sc and checks its expectations.
func Run(sc *Scenario, opts Options) Result {
	start := time.Now()
	res := Result{Scenario: sc.Name, File: sc.File}

	g, err := startGame(sc.Start)
	if err != nil {
		res.Err = sc.fail(err, 0, "")
		res.Elapsed = time.Since(start)
		return res
	}

	if opts.MaxPlies > 0 && len(sc.Moves) > opts.MaxPlies {
		res.Err = sc.fail(errors.Wrapf(errors.ErrScenario, "%d moves exceeds the limit of %d", len(sc.Moves), opts.MaxPlies), 0, "")
		res.Elapsed = time.Since(start)
		return res
	}

	for i, step := range sc.Moves {
		if err := playStep(g, step); err != nil {
			res.Err = sc.fail(err, i+1, step.Move)
			break
		}
		if step.Error == "" && opts.Trace != nil {
			h := g.History()
			opts.Trace(sc, h[len(h)-1])
		}
	}

	res.Plies = g.Len()
	res.Status = g.Status()
	res.Board = g.BoardString()

	if res.Err == nil {
		res.Failures = check(g, sc.Expect)
		if len(res.Failures) > 0 {
			res.Err = sc.fail(errors.Wrap(errors.ErrScenario, strings.Join(res.Failures, "; ")), 0, "")
		}
	}
	res.Elapsed = time.Since(start)
	return res
}

func (sc *Scenario) fail(err error, ply int, move string) error {
	return &errors.GameError{Err: err, Scenario: sc.Name, PlyNum: ply, MoveText: move, File: sc.File}
}

func startGame(start string) (*game.Game, error) {
	if start == "" || start == StandardStart {
		return game.New(), nil
	}
	return game.FromBoardString(start)
}

// playStep plays one move. A step that names an error passes only when the
// move is rejected with that error.
func playStep(g *game.Game, step Step) error {
	err := g.Play(step.Move)
	if step.Error == "" {
		return err
	}

	want := errors.ByName(step.Error)
	switch {
	case err == nil:
		return errors.Wrapf(errors.ErrScenario, "move was accepted, want %s", step.Error)
	case !errors.Is(err, want):
		return errors.Wrapf(errors.ErrScenario, "rejected as %s (%v), want %s", errors.Name(err), err, step.Error)
	default:
		return nil
	}
}

// check compares the final position against expect and describes every
// mismatch.
func check(g *game.Game, expect Expect) []string {
	var failures []string

	if expect.Outcome != "" {
		want, _ := engine.ParseOutcome(expect.Outcome)
		if got := g.Status(); got != want {
			failures = append(failures, fmt.Sprintf("outcome is %s, want %s", got, want))
		}
	}

	if expect.Winner != "" {
		got := "none"
		if w, ok := g.Winner(); ok {
			got = strings.ToLower(w.String())
		}
		if got != expect.Winner {
			failures = append(failures, fmt.Sprintf("winner is %s, want %s", got, expect.Winner))
		}
	}

	if expect.Board != "" {
		failures = append(failures, compareBoards(g.BoardString(), expect.Board)...)
	}

	if expect.LegalMoves != nil {
		if got := len(g.LegalMoves()); got != *expect.LegalMoves {
			failures = append(failures, fmt.Sprintf("%d legal moves, want %d", got, *expect.LegalMoves))
		}
	}

	if expect.InsufficientMaterial != nil {
		if got := g.HasInsufficientMaterial(); got != *expect.InsufficientMaterial {
			failures = append(failures, fmt.Sprintf("insufficient material is %v, want %v", got, *expect.InsufficientMaterial))
		}
	}
	return failures
}

var boardFields = []string{"placement", "side to move", "castling", "en passant", "halfmove clock", "fullmove number"}

// compareBoards reports each board string field that differs.
func compareBoards(got, want string) []string {
	g, w := strings.Fields(got), strings.Fields(want)
	var diffs []string
	for i, name := range boardFields {
		if i >= len(g) || i >= len(w) {
			break
		}
		if g[i] != w[i] {
			diffs = append(diffs, fmt.Sprintf("%s is %q, want %q", name, g[i], w[i]))
		}
	}
	return diffs
}
