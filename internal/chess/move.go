package chess

import "fmt"

// Constants for board dimensions and algebraic coordinates.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Square is a zero-based (file, rank) pair. Rank index 0 is the eighth rank,
// so (0,0) is a8 and (7,7) is h1.
type Square struct {
	File int
	Rank int
}

// Sq builds a square from file and rank indices.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// FileLetter returns the algebraic file letter ('a'-'h').
func (s Square) FileLetter() byte {
	return byte(FileBase + s.File)
}

// RankDigit returns the algebraic rank digit ('1'-'8').
func (s Square) RankDigit() byte {
	return byte(RankBase + BoardSize - 1 - s.Rank)
}

// String returns the algebraic name of the square, e.g. "e4".
// Off-board squares render as their raw indices.
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{s.FileLetter(), s.RankDigit()})
}

// Offset returns the square shifted by the given file and rank deltas.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// FileFromLetter converts 'a'-'h' to a file index.
func FileFromLetter(c byte) (int, bool) {
	if c < FileBase || c >= FileBase+BoardSize {
		return 0, false
	}
	return int(c - FileBase), true
}

// RankFromDigit converts '1'-'8' to a rank index.
func RankFromDigit(c byte) (int, bool) {
	if c < RankBase || c >= RankBase+BoardSize {
		return 0, false
	}
	return BoardSize - 1 - int(c-RankBase), true
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("square %q: want two characters", name)
	}
	file, ok := FileFromLetter(name[0])
	if !ok {
		return Square{}, fmt.Errorf("square %q: bad file %q", name, name[0])
	}
	rank, ok := RankFromDigit(name[1])
	if !ok {
		return Square{}, fmt.Errorf("square %q: bad rank %q", name, name[1])
	}
	return Square{File: file, Rank: rank}, nil
}

// MustSquare is like ParseSquare but panics on error. Intended for
// constants and tests.
func MustSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

// Move is an ordered (origin, destination) pair.
type Move struct {
	From Square
	To   Square
}

// MoveOf builds a move from two algebraic square names. It panics on a bad
// name and is intended for tests and fixed tables.
func MoveOf(from, to string) Move {
	return Move{From: MustSquare(from), To: MustSquare(to)}
}

// IsNull returns true if origin and destination coincide.
func (m Move) IsNull() bool {
	return m.From == m.To
}

// FileDelta returns the signed file distance travelled.
func (m Move) FileDelta() int {
	return m.To.File - m.From.File
}

// RankDelta returns the signed rank-index distance travelled.
func (m Move) RankDelta() int {
	return m.To.Rank - m.From.Rank
}

// String returns coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// Less orders moves by origin then destination, scanning a8..h1.
func (m Move) Less(o Move) bool {
	if m.From != o.From {
		return squareIndex(m.From) < squareIndex(o.From)
	}
	return squareIndex(m.To) < squareIndex(o.To)
}

func squareIndex(s Square) int {
	return s.Rank*BoardSize + s.File
}
