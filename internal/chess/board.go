package chess

// Board is a fixed 8x8 grid of pieces indexed rank-major from a8. It is a
// plain array: assigning a Board copies every square, so copies never share
// storage.
type Board [BoardSize * BoardSize]Piece

// NewBoard creates a new empty board.
func NewBoard() Board {
	return Board{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Set(Sq(file, Black.HomeRank()), B(backRank[file]))
		b.Set(Sq(file, Black.PawnRank()), B(Pawn))
		b.Set(Sq(file, White.PawnRank()), W(Pawn))
		b.Set(Sq(file, White.HomeRank()), W(backRank[file]))
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	*b = Board{}
}

// Get returns the piece on the square. Off-board squares read as empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Piece{}
	}
	return b[squareIndex(sq)]
}

// Set places a piece on the square. Off-board squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if sq.Valid() {
		b[squareIndex(sq)] = p
	}
}

// Remove empties the square and returns what was there.
func (b *Board) Remove(sq Square) Piece {
	p := b.Get(sq)
	b.Set(sq, Piece{})
	return p
}

// IsEmpty reports whether the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// Relocate moves the piece on from to to, marking it as moved.
// Whatever stood on to is returned.
func (b *Board) Relocate(from, to Square) Piece {
	p := b.Remove(from)
	captured := b.Get(to)
	if !p.IsEmpty() {
		p.Moved = true
	}
	b.Set(to, p)
	return captured
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for i, p := range b {
		if p.Is(King, colour) {
			return Sq(i%BoardSize, i/BoardSize), true
		}
	}
	return Square{}, false
}

// Squares returns every square on the board in a8..h1 order.
func Squares() []Square {
	all := make([]Square, 0, BoardSize*BoardSize)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			all = append(all, Sq(file, rank))
		}
	}
	return all
}

// Occupied returns the squares holding pieces of the given colour.
func (b *Board) Occupied(colour Colour) []Square {
	var out []Square
	for i, p := range b {
		if !p.IsEmpty() && p.Colour == colour {
			out = append(out, Sq(i%BoardSize, i/BoardSize))
		}
	}
	return out
}

// Count returns how many pieces of the kind and colour are on the board.
func (b *Board) Count(kind Kind, colour Colour) int {
	n := 0
	for _, p := range b {
		if p.Is(kind, colour) {
			n++
		}
	}
	return n
}
