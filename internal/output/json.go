package output

import (
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/scenario"
)

// JSONResult represents a scenario result in JSON format.
type JSONResult struct {
	Scenario  string   `json:"scenario"`
	File      string   `json:"file,omitempty"`
	Passed    bool     `json:"passed"`
	Plies     int      `json:"plies"`
	Outcome   string   `json:"outcome"`
	Board     string   `json:"board,omitempty"`
	Failures  []string `json:"failures,omitempty"`
	Error     string   `json:"error,omitempty"`
	ElapsedMS float64  `json:"elapsedMs"`
}

// JSONReport holds every result of a run plus the totals.
type JSONReport struct {
	Results []*JSONResult `json:"results"`
	Passed  int           `json:"passed"`
	Failed  int           `json:"failed"`
}

// JSONPosition represents a game position in JSON format.
type JSONPosition struct {
	Board      string   `json:"board"`
	ToMove     string   `json:"toMove"` // "white" or "black"
	Outcome    string   `json:"outcome"`
	Winner     string   `json:"winner,omitempty"`
	Result     string   `json:"result"`
	Moves      []string `json:"moves"`
	History    []string `json:"history,omitempty"`
	MaterialOK bool     `json:"sufficientMaterial"`
}

// ResultToJSON converts a scenario result to JSON format.
func ResultToJSON(r scenario.Result) *JSONResult {
	jr := &JSONResult{
		Scenario:  r.Scenario,
		File:      r.File,
		Passed:    r.Passed(),
		Plies:     r.Plies,
		Outcome:   r.Status.String(),
		Board:     r.Board,
		Failures:  r.Failures,
		ElapsedMS: float64(r.Elapsed.Microseconds()) / 1000,
	}
	if r.Err != nil {
		jr.Error = r.Err.Error()
	}
	return jr
}

// PositionToJSON converts the current position of g to JSON format.
func PositionToJSON(g *game.Game) *JSONPosition {
	jp := &JSONPosition{
		Board:      g.BoardString(),
		ToMove:     strings.ToLower(g.ToMove().String()),
		Outcome:    g.Status().String(),
		Result:     Result(g),
		Moves:      MoveTexts(g.State()),
		MaterialOK: !g.HasInsufficientMaterial(),
	}
	if jp.Moves == nil {
		jp.Moves = []string{}
	}
	if winner, ok := g.Winner(); ok {
		jp.Winner = strings.ToLower(winner.String())
	}
	for _, ply := range g.History() {
		jp.History = append(jp.History, ply.Algebraic)
	}
	return jp
}

// WritePositionJSON writes the current position of g as indented JSON.
func WritePositionJSON(w io.Writer, g *game.Game) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(PositionToJSON(g))
}
