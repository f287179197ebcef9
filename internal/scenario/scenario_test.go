package scenario

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func loadString(t *testing.T, doc string) []Scenario {
	t.Helper()
	scenarios, err := Load(strings.NewReader(doc), "inline.yaml")
	testutil.RequireNoError(t, err)
	return scenarios
}

func TestRulesFile(t *testing.T) {
	scenarios, err := LoadFile("testdata/rules.yaml")
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, len(scenarios), 8)

	for i := range scenarios {
		sc := &scenarios[i]
		t.Run(sc.Name, func(t *testing.T) {
			res := Run(sc, Options{})
			if !res.Passed() {
				t.Fatalf("scenario failed: %v", res.Err)
			}
			testutil.AssertEqual(t, res.File, "testdata/rules.yaml")
		})
	}
}

func TestLoadFile_UnknownErrorName(t *testing.T) {
	_, err := LoadFile("testdata/invalid.yaml")
	testutil.AssertErrorIs(t, err, errors.ErrScenario)
	testutil.AssertContains(t, err.Error(), `unknown error "no-such-error"`)
	testutil.AssertContains(t, err.Error(), `scenario "unknown error name"`)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.yaml")
	testutil.AssertError(t, err)
}

func TestLoad_Empty(t *testing.T) {
	scenarios, err := Load(strings.NewReader(""), "empty.yaml")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(scenarios), 0)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		target error
		detail string
	}{
		{
			name:   "unknown field",
			doc:    "- name: a\n  movez: [e4]\n",
			target: errors.ErrScenario,
			detail: "movez",
		},
		{
			name:   "missing name",
			doc:    "- moves: [e4]\n",
			target: errors.ErrScenario,
			detail: "Name is required",
		},
		{
			name:   "bad outcome",
			doc:    "- name: a\n  expect:\n    outcome: resigned\n",
			target: errors.ErrScenario,
			detail: "must be one of",
		},
		{
			name:   "bad winner",
			doc:    "- name: a\n  expect:\n    winner: grey\n",
			target: errors.ErrScenario,
			detail: "Winner",
		},
		{
			name:   "duplicate name",
			doc:    "- name: a\n- name: a\n",
			target: errors.ErrScenario,
			detail: "duplicate",
		},
		{
			name:   "bad start",
			doc:    "- name: a\n  start: \"8/8/8 w - - 0 1\"\n",
			target: errors.ErrMalformedBoardString,
			detail: "start",
		},
		{
			name:   "bad expected board",
			doc:    "- name: a\n  expect:\n    board: \"8/8/8/8/8/8/8/8 x - - 0 1\"\n",
			target: errors.ErrMalformedBoardString,
			detail: "expect.board",
		},
		{
			name:   "move is a list",
			doc:    "- name: a\n  moves:\n    - [e4]\n",
			target: errors.ErrScenario,
			detail: "string or a mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc), "inline.yaml")
			testutil.AssertErrorIs(t, err, tt.target)
			if err != nil {
				testutil.AssertContains(t, err.Error(), tt.detail)
			}
		})
	}
}

func TestStep_UnmarshalYAML(t *testing.T) {
	var steps []Step
	doc := "- e4\n- {move: e5, error: wrong-turn}\n- move: Nf3\n"
	testutil.RequireNoError(t, yaml.Unmarshal([]byte(doc), &steps))
	testutil.AssertEqual(t, steps, []Step{
		{Move: "e4"},
		{Move: "e5", Error: "wrong-turn"},
		{Move: "Nf3"},
	})
}

func TestStep_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal([]Step{{Move: "e4"}, {Move: "e5", Error: "wrong-turn"}})
	testutil.RequireNoError(t, err)
	testutil.AssertContains(t, string(out), "- e4\n")
	testutil.AssertNotContains(t, string(out), "move: e4")

	var back []Step
	testutil.RequireNoError(t, yaml.Unmarshal(out, &back))
	testutil.AssertEqual(t, back, []Step{{Move: "e4"}, {Move: "e5", Error: "wrong-turn"}})
}

func TestSelect(t *testing.T) {
	scenarios := []Scenario{
		{Name: "a", Tags: []string{"mate"}},
		{Name: "b", Tags: []string{"pawns", "draws"}},
		{Name: "c"},
	}

	names := func(in []Scenario) []string {
		var out []string
		for _, sc := range in {
			out = append(out, sc.Name)
		}
		return out
	}

	testutil.AssertEqual(t, names(Select(scenarios, nil)), []string{"a", "b", "c"})
	testutil.AssertEqual(t, names(Select(scenarios, []string{"draws"})), []string{"b"})
	testutil.AssertEqual(t, names(Select(scenarios, []string{"mate", "pawns"})), []string{"a", "b"})
	testutil.AssertEqual(t, len(Select(scenarios, []string{"castling"})), 0)
	testutil.AssertTrue(t, scenarios[1].HasTag("pawns"))
	testutil.AssertFalse(t, scenarios[2].HasTag("pawns"))
}

func TestRun_ExpectationMismatch(t *testing.T) {
	sc := loadString(t, `
- name: too early
  moves: [e4]
  expect:
    outcome: checkmate
    winner: white
    legal_moves: 3
    insufficient_material: true
    board: "rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 1"
`)[0]

	res := Run(&sc, Options{})
	testutil.AssertFalse(t, res.Passed())
	testutil.AssertErrorIs(t, res.Err, errors.ErrScenario)
	testutil.AssertEqual(t, res.Plies, 1)
	testutil.AssertEqual(t, res.Status, engine.Ongoing)
	testutil.AssertEqual(t, res.Failures, []string{
		"outcome is ongoing, want checkmate",
		"winner is none, want white",
		`placement is "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR", want "rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR"`,
		`en passant is "e3", want "d3"`,
		"20 legal moves, want 3",
		"insufficient material is false, want true",
	})
}

func TestRun_MoveRejected(t *testing.T) {
	sc := loadString(t, `
- name: blocked bishop
  moves: [e4, e5, Bc1c4]
`)[0]

	res := Run(&sc, Options{})
	testutil.AssertFalse(t, res.Passed())
	testutil.AssertErrorIs(t, res.Err, errors.ErrUnparsableNotation)

	var gerr *errors.GameError
	testutil.AssertTrue(t, errors.As(res.Err, &gerr))
	testutil.AssertEqual(t, gerr.PlyNum, 3)
	testutil.AssertEqual(t, gerr.MoveText, "Bc1c4")
	testutil.AssertEqual(t, res.Plies, 2)
	testutil.AssertEqual(t, len(res.Failures), 0)
}

func TestRun_WrongRejection(t *testing.T) {
	tests := []struct {
		name   string
		step   string
		detail string
	}{
		{"accepted", "{move: e4, error: wrong-turn}", "move was accepted"},
		{"other error", "{move: e7e5, error: self-check}", "rejected as wrong-turn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := loadString(t, "- name: x\n  moves:\n    - "+tt.step+"\n")[0]
			res := Run(&sc, Options{})
			testutil.AssertErrorIs(t, res.Err, errors.ErrScenario)
			testutil.AssertContains(t, res.Err.Error(), tt.detail)
		})
	}
}

func TestRun_MaxPlies(t *testing.T) {
	sc := loadString(t, "- name: long\n  moves: [e4, e5, Nf3]\n")[0]

	res := Run(&sc, Options{MaxPlies: 2})
	testutil.AssertErrorIs(t, res.Err, errors.ErrScenario)
	testutil.AssertContains(t, res.Err.Error(), "exceeds the limit of 2")
	testutil.AssertEqual(t, res.Plies, 0)

	res = Run(&sc, Options{MaxPlies: 3})
	testutil.AssertNil(t, res.Err)
	testutil.AssertEqual(t, res.Plies, 3)
}

func TestRun_Trace(t *testing.T) {
	sc := loadString(t, `
- name: traced
  moves:
    - f3
    - {move: e2e4, error: wrong-turn}
    - e5
    - g4
    - Qh4
`)[0]

	var seen []string
	res := Run(&sc, Options{Trace: func(got *Scenario, ply game.Ply) {
		testutil.AssertEqual(t, got.Name, "traced")
		seen = append(seen, ply.String())
	}})
	testutil.AssertNil(t, res.Err)
	testutil.AssertEqual(t, res.Status, engine.Checkmate)
	testutil.AssertEqual(t, seen, []string{"1. f3", "1... e5", "2. g4", "2... Qh4#"})
}

func TestRun_StandardStartIsDefault(t *testing.T) {
	for _, start := range []string{"", StandardStart} {
		sc := Scenario{Name: "start", Start: start}
		res := Run(&sc, Options{})
		testutil.AssertNil(t, res.Err)
		testutil.AssertEqual(t, res.Board, testutil.InitialPosition)
	}
}
