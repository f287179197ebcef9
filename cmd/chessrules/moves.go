package main

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// runMoves plays the given moves from the start position and lists what
// may be played next.
func runMoves(args []string, stdout, stderr io.Writer) int {
	fs, cf := newFlagSet("moves", stderr)
	fen := fs.String("fen", "", "Start from this board string")
	coords := fs.Bool("coordinates", false, "List moves in coordinate notation")
	jsonOutput := fs.Bool("json", false, "Write the position as JSON")
	showBoard := fs.Bool("board", false, "Draw the board before the moves")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, closeLog, err := cf.loadConfig(fs, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	defer closeLog()

	g := game.New()
	if *fen != "" {
		if g, err = game.FromBoardString(*fen); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
	}
	if err := g.PlayAll(fs.Args()...); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	cfg.Logf(2, "position %s\n", g.BoardString())

	out := cfg.OutputFile
	if *jsonOutput {
		if err := output.WritePositionJSON(out, g); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
		return 0
	}

	if *showBoard {
		style := output.StyleFor(&cfg.Display, isTerminal(stdout))
		if style.Colour {
			out = colourWriter(stdout)
		}
		if err := output.RenderBoard(out, g.Board(), style); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
	}

	texts := output.MoveTexts(g.State())
	if *coords {
		texts = output.CoordinateTexts(g.State())
	}
	if len(texts) > 0 {
		output.WriteMoves(out, texts, output.DefaultLineLength)
	}
	fmt.Fprintf(out, "%s, %d legal moves\n", output.DescribeStatus(g), len(texts))
	return 0
}
