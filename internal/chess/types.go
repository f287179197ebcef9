// Package chess provides core chess types: colours, pieces, squares, moves and the board.
package chess

// Colour represents the colour of a piece or player.
type Colour int8

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank index step a pawn of this colour advances by.
// Rank index 0 is the eighth rank, so White moves toward lower indices.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRank returns the rank index of the colour's back rank.
func (c Colour) HomeRank() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRank returns the rank index the colour's pawns start on.
func (c Colour) PawnRank() int {
	return c.HomeRank() + c.Forward()
}

// PromotionRank returns the rank index on which the colour's pawns promote.
func (c Colour) PromotionRank() int {
	return c.Opposite().HomeRank()
}

// Kind is the closed set of piece types. Empty marks a vacant square.
type Kind int8

const (
	Empty Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a kind.
// Unknown letters yield Empty.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return Empty
	}
}

// CanPromoteTo reports whether a pawn may be promoted to this kind.
func (k Kind) CanPromoteTo() bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// Piece is a board occupant. The zero value is an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
	// Moved is set the first time the piece is relocated and never reset.
	Moved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(kind Kind, colour Colour) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates an unmoved white piece.
func W(kind Kind) Piece {
	return NewPiece(kind, White)
}

// B creates an unmoved black piece.
func B(kind Kind) Piece {
	return NewPiece(kind, Black)
}

// IsEmpty returns true if the piece represents a vacant square.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Is reports whether p is a piece of the given kind and colour.
func (p Piece) Is(kind Kind, colour Colour) bool {
	return p.Kind == kind && p.Colour == colour
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// Glyph returns the Unicode chess symbol for the piece.
func (p Piece) Glyph() rune {
	if p.IsEmpty() {
		return ' '
	}
	white := []rune{' ', '♙', '♘', '♗', '♖', '♕', '♔'}
	black := []rune{' ', '♟', '♞', '♝', '♜', '♛', '♚'}
	if p.Colour == White {
		return white[p.Kind]
	}
	return black[p.Kind]
}

// String returns a readable description such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}
