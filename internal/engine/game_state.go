package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// State is the resolver's classification of a position for the side to move.
type State int

const (
	InProgress State = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "InProgress"
	}
}

// Status reports the state of the position together with the game result.
type Status struct {
	State    State
	Result   chess.GameResult
	Checkers []chess.Checker
}

// MoveRecord is a move as played, with its source square.
type MoveRecord struct {
	From      chess.Position
	To        chess.Position
	Kind      chess.MoveKind
	Promotion chess.PieceType // Empty unless Kind is a promotion
}

// UCI returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
// Chess960 castles are written king-takes-rook.
func (m MoveRecord) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != chess.Empty {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// String returns the UCI form of the move.
func (m MoveRecord) String() string {
	return m.UCI()
}

// historyEntry holds everything needed to take back one ply.
type historyEntry struct {
	move     MoveRecord
	undo     undo
	rights   chess.CastlingRights
	ep       chess.EnPassantWindow
	halfmove int
	fullmove int
	status   Status
	result   chess.GameResult
}

// Game is one game in progress: the board, side to move, castling state,
// en-passant window, clocks, result and move history. A Game is not safe for
// concurrent use.
type Game struct {
	board    chess.Board
	variant  chess.Variant
	toMove   chess.Colour
	rights   chess.CastlingRights
	origins  [2]chess.CastlingOrigins
	ep       chess.EnPassantWindow
	ply      int
	halfmove int
	fullmove int
	status   Status
	result   chess.GameResult
	history  []historyEntry
	startFEN string
}

// Shuffler supplies the random numbers used to pick a Chess960 arrangement.
// *math/rand/v2.Rand satisfies it.
type Shuffler interface {
	IntN(n int) int
}

type gameOptions struct {
	shuffler Shuffler
	index    int
}

// Option configures NewGame.
type Option func(*gameOptions)

// WithShuffler sets the random source for Chess960 setups.
func WithShuffler(s Shuffler) Option {
	return func(o *gameOptions) {
		if s != nil {
			o.shuffler = s
		}
	}
}

// WithChess960Index fixes the Chess960 arrangement by its 0-959 number. A
// negative index draws one at random.
func WithChess960Index(n int) Option {
	return func(o *gameOptions) {
		o.index = n
	}
}

// NewGame sets up the starting position of variant. Chess960 arrangements
// come from the shuffler unless an index is given.
func NewGame(variant chess.Variant, opts ...Option) (*Game, error) {
	o := gameOptions{shuffler: defaultShuffler(), index: -1}
	for _, opt := range opts {
		opt(&o)
	}

	if !variant.Playable() {
		return nil, errors.Wrapf(errors.ErrUnsupportedVariantFeature, "variant %s", variant)
	}

	backRank := classicBackRank
	if variant == chess.Chess960 {
		index := o.index
		if index < 0 {
			index = o.shuffler.IntN(Chess960Positions)
		}
		var err error
		if backRank, err = Chess960BackRank(index); err != nil {
			return nil, err
		}
	}

	g := &Game{variant: variant}
	g.setup(backRank)
	g.startFEN = g.FEN()
	return g, nil
}

// setup installs backRank and a full row of pawns for both sides.
func (g *Game) setup(backRank [chess.BoardSize]chess.PieceType) {
	g.board.Reset()
	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		home := chess.HomeRank(colour)
		for file, pieceType := range backRank {
			g.board.Place(chess.Pos(file, home), chess.NewPiece(colour, pieceType, chess.Pos(file, home)))
			pawn := chess.Pos(file, pawnStartRank(colour))
			g.board.Place(pawn, chess.NewPiece(colour, chess.Pawn, pawn))
		}
		g.origins[colour] = originsOf(backRank)
	}

	g.toMove = chess.White
	g.rights = chess.AllCastlingRights()
	g.ep = noEnPassant()
	g.ply = 0
	g.halfmove = 0
	g.fullmove = 1
	g.status = Status{State: InProgress}
	g.result = chess.GameResult{}
	g.history = nil
}

// PieceAt returns the occupant of pos, or the empty sentinel off the board.
func (g *Game) PieceAt(pos chess.Position) chess.Piece {
	if !pos.Valid() {
		return chess.EmptyPiece(pos)
	}
	return g.board.At(pos)
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour { return g.toMove }

// Variant returns the rule set of the game.
func (g *Game) Variant() chess.Variant { return g.variant }

// Ply returns the number of half-moves played since the starting position.
func (g *Game) Ply() int { return g.ply }

// Halfmove returns the halfmove clock.
func (g *Game) Halfmove() int { return g.halfmove }

// Fullmove returns the fullmove number.
func (g *Game) Fullmove() int { return g.fullmove }

// CastlingRights returns the castling rights still held.
func (g *Game) CastlingRights() chess.CastlingRights { return g.rights }

// EnPassant returns the en-passant target usable on this ply, if any.
func (g *Game) EnPassant() (chess.Position, bool) {
	if g.ep.ActiveAt(g.ply) {
		return g.ep.Target, true
	}
	return chess.NoPosition, false
}

// Result returns the game result.
func (g *Game) Result() chess.GameResult { return g.result }

// StartFEN returns the FEN of the position the game started from.
func (g *Game) StartFEN() string { return g.startFEN }

// Status reports the position's state, the checkers and the game result.
func (g *Game) Status() Status {
	s := g.status
	s.Checkers = slices.Clone(g.status.Checkers)
	s.Result = g.result
	return s
}

// History returns the moves played so far, oldest first.
func (g *Game) History() []MoveRecord {
	out := make([]MoveRecord, len(g.history))
	for i, e := range g.history {
		out[i] = e.move
	}
	return out
}

// AttemptMove plays the piece on src to dst. promo selects the promotion
// piece and is ignored for other moves; Empty means queen. On any error the
// game is unchanged.
func (g *Game) AttemptMove(src, dst chess.Position, promo chess.PieceType) error {
	if g.result.Over() {
		return &errors.MoveError{Err: errors.ErrGameOver, From: src.String(), To: dst.String(), Ply: g.ply}
	}
	if !dst.Valid() {
		return &errors.MoveError{Err: errors.ErrInvalidSquare, From: src.String(), Ply: g.ply}
	}
	piece, err := g.checkSource(src)
	if err != nil {
		return err
	}

	moves := g.candidates(src)
	m, ok := moves.Find(dst)
	if !ok {
		return &errors.MoveError{Err: errors.ErrIllegalDestination, From: src.String(), To: dst.String(), Ply: g.ply}
	}

	if m.Kind.IsPromotion() {
		if promo, err = promotionChoice(promo); err != nil {
			return &errors.MoveError{Err: err, From: src.String(), To: dst.String(), Ply: g.ply}
		}
	}

	u, err := g.validate(src, m)
	if err != nil {
		return &errors.MoveError{Err: err, From: src.String(), To: dst.String(), Ply: g.ply}
	}
	g.commit(piece, src, m, u, promo)
	return nil
}

// Resign ends the game as a win for colour's opponent.
func (g *Game) Resign(colour chess.Colour) error {
	if g.result.Over() {
		return errors.ErrGameOver
	}
	g.result = chess.GameResult{Status: chess.WinFor(colour.Opposite()), Cause: chess.Resignation}
	return nil
}

// AgreeDraw ends the game as a draw by agreement.
func (g *Game) AgreeDraw() error {
	if g.result.Over() {
		return errors.ErrGameOver
	}
	g.result = chess.GameResult{Status: chess.Draw, Cause: chess.AgreedDraw}
	return nil
}

// Undo takes back the last ply, restoring the board, castling rights,
// en-passant window, clocks, side to move, status and result exactly as they
// were before it. A resignation or draw agreement made after that ply is
// taken back with it.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return errors.ErrNoHistory
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	last.undo.revert(&g.board)
	g.rights = last.rights
	g.ep = last.ep
	g.halfmove = last.halfmove
	g.fullmove = last.fullmove
	g.status = last.status
	g.result = last.result
	g.ply--
	g.toMove = g.toMove.Opposite()
	return nil
}

// Place drops a reserve piece onto the board. No supported variant has a
// piece reserve.
func (g *Game) Place(piece chess.Piece, pos chess.Position) error {
	return &errors.MoveError{Err: errors.ErrUnsupportedVariantFeature, From: pos.String(), Ply: g.ply}
}

// Clone returns an independent copy of the game, history included.
func (g *Game) Clone() *Game {
	c := *g
	c.history = slices.Clone(g.history)
	c.status.Checkers = slices.Clone(g.status.Checkers)
	return &c
}
