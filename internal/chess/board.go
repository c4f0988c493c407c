package chess

// Piece is the occupant of a square. A square without a real piece holds a
// Piece whose Type is Empty, so an occupant is never absent.
type Piece struct {
	Type     PieceType
	Colour   Colour
	Promoted bool
	Pos      Position
}

// NewPiece creates an unpromoted piece standing on pos.
func NewPiece(colour Colour, pieceType PieceType, pos Position) Piece {
	return Piece{Type: pieceType, Colour: colour, Pos: pos}
}

// EmptyPiece returns the sentinel occupant for pos.
func EmptyPiece(pos Position) Piece {
	return Piece{Type: Empty, Pos: pos}
}

// IsEmpty reports whether the piece is the empty sentinel.
func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

// Letter returns the FEN letter of the piece: uppercase for White, lowercase
// for Black, '.' for the empty sentinel.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Type.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// Square holds exactly one occupant and a transient attacked counter.
type Square struct {
	occupant Piece
	attacked int
}

// Occupant returns the piece on the square.
func (s *Square) Occupant() Piece {
	return s.occupant
}

// Board is the 8x8 grid of squares, indexed [file][rank]. It owns every piece
// on it and exposes no bounds checking: callers pass valid positions only.
type Board struct {
	squares [BoardSize][BoardSize]Square
}

// NewBoard creates a board with every square holding the empty sentinel.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset installs the empty sentinel on every square and zeroes the attack counters.
func (b *Board) Reset() {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			pos := Pos(file, rank)
			b.squares[file][rank] = Square{occupant: EmptyPiece(pos)}
		}
	}
}

// At returns the occupant of pos.
func (b *Board) At(pos Position) Piece {
	return b.squares[pos.File][pos.Rank].occupant
}

// IsOccupied reports whether a real piece stands on pos.
func (b *Board) IsOccupied(pos Position) bool {
	return !b.squares[pos.File][pos.Rank].occupant.IsEmpty()
}

// ColourAt returns the colour of the piece on pos. The second result is false
// when the square is empty, in which case the colour is meaningless.
func (b *Board) ColourAt(pos Position) (Colour, bool) {
	p := b.squares[pos.File][pos.Rank].occupant
	if p.IsEmpty() {
		return White, false
	}
	return p.Colour, true
}

// Place installs piece on pos, replacing whatever was there.
func (b *Board) Place(pos Position, piece Piece) {
	piece.Pos = pos
	b.squares[pos.File][pos.Rank].occupant = piece
}

// Clear installs the empty sentinel on pos.
func (b *Board) Clear(pos Position) {
	b.squares[pos.File][pos.Rank].occupant = EmptyPiece(pos)
}

// Take removes the occupant of pos and returns it, leaving the sentinel behind.
func (b *Board) Take(pos Position) Piece {
	p := b.squares[pos.File][pos.Rank].occupant
	b.Clear(pos)
	return p
}

// Attack increments the attacked counter of pos.
func (b *Board) Attack(pos Position) {
	b.squares[pos.File][pos.Rank].attacked++
}

// Attacked reports whether pos is marked attacked by the current marking pass.
func (b *Board) Attacked(pos Position) bool {
	return b.squares[pos.File][pos.Rank].attacked > 0
}

// AttackCount returns the number of attacks recorded on pos.
func (b *Board) AttackCount(pos Position) int {
	return b.squares[pos.File][pos.Rank].attacked
}

// ClearAttacks zeroes every attacked counter.
func (b *Board) ClearAttacks() {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			b.squares[file][rank].attacked = 0
		}
	}
}

// HasAttacks reports whether any square carries a non-zero attacked counter.
func (b *Board) HasAttacks() bool {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.squares[file][rank].attacked != 0 {
				return true
			}
		}
	}
	return false
}

// FindKing returns the position of the king of the given colour.
func (b *Board) FindKing(colour Colour) (Position, bool) {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			p := b.squares[file][rank].occupant
			if p.Type == King && p.Colour == colour {
				return Pos(file, rank), true
			}
		}
	}
	return NoPosition, false
}

// Pieces returns the positions of every piece of the given colour in
// file-major order.
func (b *Board) Pieces(colour Colour) []Position {
	var out []Position
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			p := b.squares[file][rank].occupant
			if !p.IsEmpty() && p.Colour == colour {
				out = append(out, Pos(file, rank))
			}
		}
	}
	return out
}
