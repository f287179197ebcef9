// chessrules hosts the chess rules engine: an interactive play loop, a
// scenario verifier and a legal-move lister.
package main

import (
	"fmt"
	"io"
	"os"
)

const programVersion = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run dispatches to a subcommand and returns the process exit code:
// 0 on success, 1 when a move or scenario failed, 2 on bad usage or input.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	switch args[0] {
	case "play":
		return runPlay(args[1:], stdin, stdout, stderr)
	case "verify":
		return runVerify(args[1:], stdout, stderr)
	case "moves":
		return runMoves(args[1:], stdout, stderr)
	case "version", "-version", "--version":
		fmt.Fprintf(stdout, "chessrules version %s\n", programVersion)
		return 0
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Usage: chessrules <command> [flags] [args]

Commands:
  play     [-fen S] [-history F]                            interactive play loop
  verify   [-j N] [-json] [-fail-fast] [-tags T] FILE...    replay YAML scenario files
  moves    [-fen S] [-coordinates] [-json] [-board] [MOVE...] list legal moves after MOVEs
  version                                                   print the version

Every command also takes -config F, -v N, -q, -l F, -L F, -unicode,
-colour MODE, -flip and -nocoords.

Run 'chessrules <command> -h' for the flags of a command.
`)
}
