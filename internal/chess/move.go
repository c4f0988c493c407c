package chess

import "fmt"

// MoveKind categorizes the candidate moves produced by the generators.
type MoveKind int

const (
	NoCapture MoveKind = iota + 1
	Capture
	Promotion
	CaptureWithPromotion
	EnPassant
	LongPawnMove
	Castle
	Placement // piece-reserve drop; reserved, never generated
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	switch k {
	case NoCapture:
		return "NoCapture"
	case Capture:
		return "Capture"
	case Promotion:
		return "Promotion"
	case CaptureWithPromotion:
		return "CaptureWithPromotion"
	case EnPassant:
		return "EnPassant"
	case LongPawnMove:
		return "LongPawnMove"
	case Castle:
		return "Castle"
	case Placement:
		return "Placement"
	default:
		return "Unknown"
	}
}

// IsCapture returns true if the move removes an opposing piece.
func (k MoveKind) IsCapture() bool {
	return k == Capture || k == CaptureWithPromotion || k == EnPassant
}

// IsPromotion returns true if the move promotes a pawn.
func (k MoveKind) IsPromotion() bool {
	return k == Promotion || k == CaptureWithPromotion
}

// Move is a single candidate destination for one piece plus how it gets there.
type Move struct {
	To   Position
	Kind MoveKind
}

// String returns the destination and kind, e.g. "e4(LongPawnMove)".
func (m Move) String() string {
	return fmt.Sprintf("%s(%s)", m.To, m.Kind)
}

// MaxMoves is the capacity of a MoveList. No piece on any reachable position
// has more than 27 destinations.
const MaxMoves = 30

// MoveList is a bounded, ordered list of moves for one piece.
type MoveList struct {
	moves [MaxMoves]Move
	n     int
}

// Add appends a move. Exceeding MaxMoves is an invariant violation and panics.
func (l *MoveList) Add(to Position, kind MoveKind) {
	if l.n == MaxMoves {
		panic(fmt.Sprintf("chess: move list overflow adding %s", Move{To: to, Kind: kind}))
	}
	l.moves[l.n] = Move{To: to, Kind: kind}
	l.n++
}

// Clear empties the list.
func (l *MoveList) Clear() {
	l.n = 0
}

// Len returns the number of moves in the list.
func (l *MoveList) Len() int {
	return l.n
}

// At returns the i-th move.
func (l *MoveList) At(i int) Move {
	if i < 0 || i >= l.n {
		panic(fmt.Sprintf("chess: move index %d out of range [0,%d)", i, l.n))
	}
	return l.moves[i]
}

// Find returns the first move landing on to.
func (l *MoveList) Find(to Position) (Move, bool) {
	for i := 0; i < l.n; i++ {
		if l.moves[i].To == to {
			return l.moves[i], true
		}
	}
	return Move{}, false
}

// Moves returns a copy of the list contents.
func (l *MoveList) Moves() []Move {
	out := make([]Move, l.n)
	copy(out, l.moves[:l.n])
	return out
}

// Checker is an opposing piece currently attacking a king.
type Checker struct {
	Pos  Position
	Type PieceType
}

// MaxCheckers is the capacity of CheckingPieces: double check is the maximum
// reachable in a legal game.
const MaxCheckers = 2

// CheckingPieces is the bounded set of pieces giving check. Adding beyond
// capacity saturates and marks the set overflowed; this only happens while
// validating an illegal candidate or on a position that is not reachable.
type CheckingPieces struct {
	list       [MaxCheckers]Checker
	n          int
	overflowed bool
}

// Add records a checking piece.
func (c *CheckingPieces) Add(pos Position, pieceType PieceType) {
	if c.n == MaxCheckers {
		c.overflowed = true
		return
	}
	c.list[c.n] = Checker{Pos: pos, Type: pieceType}
	c.n++
}

// Clear empties the set.
func (c *CheckingPieces) Clear() {
	c.n = 0
	c.overflowed = false
}

// Len returns the number of recorded checkers.
func (c *CheckingPieces) Len() int {
	return c.n
}

// At returns the i-th checker.
func (c *CheckingPieces) At(i int) Checker {
	if i < 0 || i >= c.n {
		panic(fmt.Sprintf("chess: checker index %d out of range [0,%d)", i, c.n))
	}
	return c.list[i]
}

// Overflowed reports whether more than MaxCheckers attackers were seen.
func (c *CheckingPieces) Overflowed() bool {
	return c.overflowed
}

// Checkers returns a copy of the recorded checkers.
func (c *CheckingPieces) Checkers() []Checker {
	out := make([]Checker, c.n)
	copy(out, c.list[:c.n])
	return out
}

// Wing selects the side of the board a castling move goes to.
type Wing int

const (
	KingSide Wing = iota
	QueenSide
)

// String returns the string representation of a wing.
func (w Wing) String() string {
	if w == KingSide {
		return "king-side"
	}
	return "queen-side"
}

// CastlingRights holds the four independent castling permissions. A right only
// ever goes from true to false.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// AllCastlingRights returns rights with every castling option available.
func AllCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

// Has reports whether colour may still castle to wing.
func (r CastlingRights) Has(colour Colour, wing Wing) bool {
	switch {
	case colour == White && wing == KingSide:
		return r.WhiteKingSide
	case colour == White:
		return r.WhiteQueenSide
	case wing == KingSide:
		return r.BlackKingSide
	default:
		return r.BlackQueenSide
	}
}

// Revoke permanently removes colour's right to castle to wing.
func (r *CastlingRights) Revoke(colour Colour, wing Wing) {
	switch {
	case colour == White && wing == KingSide:
		r.WhiteKingSide = false
	case colour == White:
		r.WhiteQueenSide = false
	case wing == KingSide:
		r.BlackKingSide = false
	default:
		r.BlackQueenSide = false
	}
}

// RevokeAll removes both of colour's castling rights.
func (r *CastlingRights) RevokeAll(colour Colour) {
	r.Revoke(colour, KingSide)
	r.Revoke(colour, QueenSide)
}

// Any reports whether any castling right remains.
func (r CastlingRights) Any() bool {
	return r.WhiteKingSide || r.WhiteQueenSide || r.BlackKingSide || r.BlackQueenSide
}

// CastlingOrigins records the starting files of the king and the castling
// rooks. Classic chess uses e, h and a; Chess960 arrangements vary.
type CastlingOrigins struct {
	KingFile      int
	KingRookFile  int
	QueenRookFile int
}

// ClassicOrigins returns the castling origins of the standard starting position.
func ClassicOrigins() CastlingOrigins {
	return CastlingOrigins{KingFile: 4, KingRookFile: 7, QueenRookFile: 0}
}

// RookFile returns the origin file of the rook castling to wing.
func (o CastlingOrigins) RookFile(wing Wing) int {
	if wing == KingSide {
		return o.KingRookFile
	}
	return o.QueenRookFile
}

// EnPassantWindow is the capture opportunity opened by a two-square pawn
// advance. Target is the skipped square; Ply is the ply on which the advance
// was played. The window is usable only on the immediately following ply.
type EnPassantWindow struct {
	Target Position
	Ply    int
}

// ActiveAt reports whether the window may be used on the given ply.
func (w EnPassantWindow) ActiveAt(ply int) bool {
	return w.Target.Valid() && ply == w.Ply+1
}
