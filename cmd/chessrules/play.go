package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// command defines a play-loop command with its handler.
type command struct {
	name        string
	shortName   string
	description string
	usage       string
	handler     func(s *session, args []string) error
}

// session is one interactive game.
type session struct {
	id    string
	cfg   *config.Config
	out   io.Writer
	style output.BoardStyle
	game  *game.Game
	done  bool

	commands map[string]*command
}

func newSession(cfg *config.Config, out io.Writer, style output.BoardStyle) (*session, error) {
	s := &session{
		id:       uuid.New().String(),
		cfg:      cfg,
		out:      out,
		style:    style,
		commands: make(map[string]*command),
	}
	if err := s.reset(); err != nil {
		return nil, err
	}
	s.registerCommands()
	return s, nil
}

// reset starts over from the configured position.
func (s *session) reset() error {
	if s.cfg.Play.Start == "" {
		s.game = game.New()
		return nil
	}
	g, err := game.FromBoardString(s.cfg.Play.Start)
	if err != nil {
		return err
	}
	s.game = g
	return nil
}

func (s *session) register(cmd *command) {
	s.commands[cmd.name] = cmd
	if cmd.shortName != "" {
		s.commands[cmd.shortName] = cmd
	}
}

func (s *session) registerCommands() {
	s.register(&command{name: "move", shortName: "m", usage: "move <move>", description: "Play a move in algebraic or coordinate notation", handler: (*session).moveHandler})
	s.register(&command{name: "moves", usage: "moves", description: "List the legal moves", handler: (*session).movesHandler})
	s.register(&command{name: "board", shortName: "b", usage: "board", description: "Draw the board", handler: (*session).boardHandler})
	s.register(&command{name: "fen", usage: "fen", description: "Print the board string", handler: (*session).fenHandler})
	s.register(&command{name: "json", usage: "json", description: "Print the position as JSON", handler: (*session).jsonHandler})
	s.register(&command{name: "undo", shortName: "u", usage: "undo [n]", description: "Take back n plies (default 1)", handler: (*session).undoHandler})
	s.register(&command{name: "history", shortName: "h", usage: "history", description: "Print the moves played so far", handler: (*session).historyHandler})
	s.register(&command{name: "new", usage: "new", description: "Start again from the starting position", handler: (*session).newHandler})
	s.register(&command{name: "load", usage: "load <board string>", description: "Set up a position from a board string", handler: (*session).loadHandler})
	s.register(&command{name: "help", shortName: "?", usage: "help", description: "Show available commands", handler: (*session).helpHandler})
	s.register(&command{name: "quit", shortName: "q", usage: "quit", description: "Leave the session", handler: (*session).quitHandler})
}

// Execute runs one input line. A line that is not a command is played as
// a move. It returns false once the session should end.
func (s *session) Execute(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}

	fields := strings.Fields(line)
	cmd, ok := s.commands[strings.ToLower(fields[0])]
	var err error
	if ok {
		err = cmd.handler(s, fields[1:])
	} else {
		err = s.play(line)
	}
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		s.cfg.Logf(2, "[%s] %q rejected: %s\n", s.id, line, errors.Name(err))
	}
	return !s.done
}

// prompt shows whose turn it is.
func (s *session) prompt() string {
	return s.style.ColourName(s.game.ToMove()) + " " + s.cfg.Play.Prompt
}

func (s *session) play(text string) error {
	if err := s.game.Play(text); err != nil {
		return err
	}
	history := s.game.History()
	ply := history[len(history)-1]
	fmt.Fprintln(s.out, ply.String())
	s.cfg.Logf(2, "[%s] played %s (%s)\n", s.id, ply.Coordinate, ply.Algebraic)

	if status := s.game.Status(); status.IsOver() {
		fmt.Fprintf(s.out, "%s %s\n", output.DescribeStatus(s.game), output.Result(s.game))
		s.cfg.Logf(1, "[%s] game over after %d plies: %s\n", s.id, s.game.Len(), status)
	} else if s.cfg.Play.ShowMoves {
		return s.movesHandler(nil)
	}
	return nil
}

func (s *session) moveHandler(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: move <move>")
	}
	return s.play(strings.Join(args, " "))
}

func (s *session) movesHandler(_ []string) error {
	texts := output.MoveTexts(s.game.State())
	if len(texts) == 0 {
		fmt.Fprintln(s.out, "no legal moves")
		return nil
	}
	output.WriteMoves(s.out, texts, output.DefaultLineLength)
	return nil
}

func (s *session) boardHandler(_ []string) error {
	if err := output.RenderBoard(s.out, s.game.Board(), s.style); err != nil {
		return err
	}
	fmt.Fprintln(s.out, output.DescribeStatus(s.game))
	return nil
}

func (s *session) fenHandler(_ []string) error {
	fmt.Fprintln(s.out, s.game.BoardString())
	return nil
}

func (s *session) jsonHandler(_ []string) error {
	return output.WritePositionJSON(s.out, s.game)
}

func (s *session) undoHandler(args []string) error {
	n := 1
	if len(args) > 0 {
		var err error
		if n, err = strconv.Atoi(args[0]); err != nil || n < 1 {
			return fmt.Errorf("usage: undo [n], n a positive number")
		}
	}
	if err := s.game.Undo(n); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "took back %d, %s\n", n, strings.ToLower(output.DescribeStatus(s.game)))
	return nil
}

func (s *session) historyHandler(_ []string) error {
	output.WriteMoveList(s.out, s.game.History(), output.Result(s.game), output.DefaultLineLength)
	return nil
}

func (s *session) newHandler(_ []string) error {
	if err := s.reset(); err != nil {
		return err
	}
	s.cfg.Logf(1, "[%s] new game\n", s.id)
	return s.boardHandler(nil)
}

func (s *session) loadHandler(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: load <board string>")
	}
	g, err := game.FromBoardString(strings.Join(args, " "))
	if err != nil {
		return err
	}
	s.game = g
	s.cfg.Logf(1, "[%s] loaded %s\n", s.id, g.BoardString())
	return s.boardHandler(nil)
}

func (s *session) helpHandler(_ []string) error {
	seen := make(map[*command]bool)
	var cmds []*command
	for _, cmd := range s.commands {
		if !seen[cmd] {
			seen[cmd] = true
			cmds = append(cmds, cmd)
		}
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].name < cmds[j].name })

	for _, cmd := range cmds {
		usage := cmd.usage
		if cmd.shortName != "" {
			usage += " (" + cmd.shortName + ")"
		}
		fmt.Fprintf(s.out, "  %-24s %s\n", usage, cmd.description)
	}
	fmt.Fprintln(s.out, "Anything else is played as a move, e.g. e4, Nf3, O-O or e7e8Q.")
	return nil
}

func (s *session) quitHandler(_ []string) error {
	s.done = true
	return nil
}

func runPlay(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs, cf := newFlagSet("play", stderr)
	fen := fs.String("fen", "", "Start from this board string")
	historyFile := fs.String("history", "", "Keep readline history in this file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, closeLog, err := cf.loadConfig(fs, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	defer closeLog()
	if *fen != "" {
		cfg.Play.Start = *fen
	}
	if *historyFile != "" {
		cfg.Play.HistoryFile = *historyFile
	}

	style := output.StyleFor(&cfg.Display, isTerminal(stdout))
	out := stdout
	if style.Colour {
		out = colourWriter(stdout)
	}

	s, err := newSession(cfg, out, style)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.prompt(),
		HistoryFile:     cfg.Play.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdin:           io.NopCloser(stdin),
		Stdout:          out,
		Stderr:          stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer rl.Close()

	cfg.Logf(1, "[%s] session started from %s\n", s.id, s.game.BoardString())
	fmt.Fprintln(out, "Type 'help' for commands")
	_ = s.boardHandler(nil)

	for {
		rl.SetPrompt(s.prompt())
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if line == "" {
				break
			}
			continue
		}
		if err != nil {
			break
		}
		if !s.Execute(line) {
			break
		}
	}

	cfg.Logf(1, "[%s] session ended after %d plies\n", s.id, s.game.Len())
	return 0
}
