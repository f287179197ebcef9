package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// Terminal color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// cellWidth is the number of columns each square takes.
const cellWidth = 2

// BoardStyle controls how RenderBoard draws a board.
type BoardStyle struct {
	Unicode     bool
	Colour      bool
	Coordinates bool
	Flipped     bool
}

// StyleFor resolves display settings into a style. isTerminal tells
// whether the destination is a terminal, which decides the auto colour
// mode.
func StyleFor(d *config.DisplayConfig, isTerminal bool) BoardStyle {
	return BoardStyle{
		Unicode:     d.Unicode,
		Colour:      d.UseColour(isTerminal),
		Coordinates: d.Coordinates,
		Flipped:     d.Flipped,
	}
}

// RenderBoard draws board with rank 8 at the top, or rank 1 when flipped.
func RenderBoard(w io.Writer, board chess.Board, style BoardStyle) error {
	bw := bufio.NewWriter(w)

	files := []int{0, 1, 2, 3, 4, 5, 6, 7}
	ranks := []int{0, 1, 2, 3, 4, 5, 6, 7}
	if style.Flipped {
		reverse(files)
		reverse(ranks)
	}

	for _, rank := range ranks {
		var line strings.Builder
		if style.Coordinates {
			line.WriteString(style.paint(Cyan, string(chess.Sq(0, rank).RankDigit())))
			line.WriteByte(' ')
		}
		for i, file := range files {
			text, colour := style.square(board.Get(chess.Sq(file, rank)))
			line.WriteString(style.paint(colour, text))
			if i < len(files)-1 {
				line.WriteString(padding(text))
			}
		}
		fmt.Fprintln(bw, line.String())
	}

	if style.Coordinates {
		var line strings.Builder
		line.WriteString("  ")
		for i, file := range files {
			letter := string(chess.Sq(file, 0).FileLetter())
			line.WriteString(style.paint(Cyan, letter))
			if i < len(files)-1 {
				line.WriteString(padding(letter))
			}
		}
		fmt.Fprintln(bw, line.String())
	}
	return bw.Flush()
}

func (s BoardStyle) square(p chess.Piece) (text, colour string) {
	if p.IsEmpty() {
		return ".", ""
	}
	if p.Colour == chess.White {
		colour = Blue
	} else {
		colour = Red
	}
	if s.Unicode {
		return string(p.Glyph()), colour
	}
	return string(p.Letter()), colour
}

func (s BoardStyle) paint(colour, text string) string {
	if !s.Colour || colour == "" {
		return text
	}
	return colour + text + Reset
}

// padding fills the rest of a cell after text. Glyphs are measured in
// terminal columns, not bytes.
func padding(text string) string {
	n := cellWidth - runewidth.StringWidth(text)
	if n < 1 {
		n = 1
	}
	return strings.Repeat(" ", n)
}

func reverse(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// ColourName returns "White" or "Black", coloured when style asks for it.
func (s BoardStyle) ColourName(c chess.Colour) string {
	if c == chess.White {
		return s.paint(Blue, "White")
	}
	return s.paint(Red, "Black")
}

// DescribeStatus summarises the position for the side to move, e.g.
// "White to move, in check" or "Checkmate, Black wins".
func DescribeStatus(g *game.Game) string {
	switch g.Status() {
	case engine.Checkmate:
		winner, _ := g.Winner()
		return fmt.Sprintf("Checkmate, %s wins", winner)
	case engine.Stalemate:
		return "Stalemate"
	case engine.Draw:
		return "Draw by move limit"
	case engine.Check:
		return fmt.Sprintf("%s to move, in check", g.ToMove())
	default:
		return fmt.Sprintf("%s to move", g.ToMove())
	}
}
