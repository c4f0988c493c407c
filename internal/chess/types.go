// Package chess provides the core board, piece and move types of the rules engine.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
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

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index of the given colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PieceType represents a chess piece type. Empty is the type of the sentinel
// occupant installed on unoccupied squares.
type PieceType int

const (
	Empty PieceType = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Empty", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'K', 'Q', 'R', 'B', 'N', 'P'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceTypeFromLetter converts a piece letter in either case to a piece type.
// It returns Empty for anything else.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return Empty
	}
}

// IsSlider reports whether the piece type moves along rays.
func (p PieceType) IsSlider() bool {
	return p == Queen || p == Rook || p == Bishop
}

// Variant identifies the rule set a game is played under.
type Variant int

const (
	Classic Variant = iota
	Chess960
	HellishAcceleration
	Crazyhouse
	ChessEx
	KingOfTheHill
)

// String returns the string representation of a variant.
func (v Variant) String() string {
	names := []string{"classic", "chess960", "hellish-acceleration", "crazyhouse", "chess-ex", "king-of-the-hill"}
	if int(v) >= 0 && int(v) < len(names) {
		return names[v]
	}
	return "unknown"
}

// Playable reports whether the engine implements the variant's rules.
func (v Variant) Playable() bool {
	return v == Classic || v == Chess960
}

// Constants for board dimensions.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Position is a square on the board, addressed by 0-based file and rank.
type Position struct {
	File int
	Rank int
}

// NoPosition is the zero-information position used where no square applies.
var NoPosition = Position{File: -1, Rank: -1}

// Pos is shorthand for constructing a Position.
func Pos(file, rank int) Position {
	return Position{File: file, Rank: rank}
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.File >= 0 && p.File < BoardSize && p.Rank >= 0 && p.Rank < BoardSize
}

// Offset returns the position shifted by the given file and rank deltas.
func (p Position) Offset(df, dr int) Position {
	return Position{File: p.File + df, Rank: p.Rank + dr}
}

// IsLight reports whether the square is a light square.
func (p Position) IsLight() bool {
	return (p.File+p.Rank)%2 == 1
}

// String returns the algebraic name of the square, e.g. "e4".
func (p Position) String() string {
	if !p.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + p.File), byte(RankBase + p.Rank)})
}

// ParseSquare converts an algebraic square name such as "e4" into a Position.
func ParseSquare(s string) (Position, bool) {
	if len(s) != 2 {
		return NoPosition, false
	}
	p := Position{File: int(s[0]) - FileBase, Rank: int(s[1]) - RankBase}
	if !p.Valid() {
		return NoPosition, false
	}
	return p, true
}
