package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// maxTouched is the largest number of squares one move changes (castling).
const maxTouched = 4

// undo records the previous occupant of every square a move touched, in the
// order they were saved.
type undo struct {
	saved [maxTouched]chess.Piece
	n     int
}

func (u *undo) save(b *chess.Board, pos chess.Position) {
	u.saved[u.n] = b.At(pos)
	u.n++
}

// revert restores every saved square, newest first.
func (u *undo) revert(b *chess.Board) {
	for i := u.n - 1; i >= 0; i-- {
		prev := u.saved[i]
		b.Place(prev.Pos, prev)
	}
	u.n = 0
}

// play applies m for the piece on src to the live board: the plain transfer,
// the en-passant victim removal or the king and rook transfer of a castle.
func (g *Game) play(src chess.Position, m chess.Move) undo {
	var u undo

	switch m.Kind {
	case chess.NoCapture, chess.Capture, chess.Promotion, chess.CaptureWithPromotion, chess.LongPawnMove:
		u.save(&g.board, src)
		u.save(&g.board, m.To)
		g.board.Place(m.To, g.board.Take(src))

	case chess.EnPassant:
		victim := enPassantVictim(src, m.To)
		u.save(&g.board, src)
		u.save(&g.board, m.To)
		u.save(&g.board, victim)
		g.board.Place(m.To, g.board.Take(src))
		g.board.Clear(victim)

	case chess.Castle:
		colour := g.board.At(src).Colour
		plan, ok := g.castlePlanFor(colour, m.To)
		if !ok || plan.kingFrom != src {
			panic(fmt.Sprintf("engine: no castling plan for %s%s", src, m.To))
		}
		u.save(&g.board, plan.kingFrom)
		u.save(&g.board, plan.rookFrom)
		u.save(&g.board, plan.kingTo)
		u.save(&g.board, plan.rookTo)
		king := g.board.Take(plan.kingFrom)
		rook := g.board.Take(plan.rookFrom)
		g.board.Place(plan.kingTo, king)
		g.board.Place(plan.rookTo, rook)

	default:
		panic(fmt.Sprintf("engine: unmatched move kind %s", m.Kind))
	}

	return u
}

// validate tries m on the live board. If the mover's king ends up attacked the
// board is restored exactly and ErrSelfCheck is returned; otherwise the move
// stays applied and the returned undo rolls it back.
func (g *Game) validate(src chess.Position, m chess.Move) (undo, error) {
	mover := g.board.At(src).Colour
	u := g.play(src, m)
	if g.kingAttacked(mover) {
		u.revert(&g.board)
		return undo{}, errors.ErrSelfCheck
	}
	return u, nil
}

// commit finishes a validated move: promotion, castling rights, the
// en-passant window, clocks, the turn flip and the resolver.
func (g *Game) commit(piece chess.Piece, src chess.Position, m chess.Move, u undo, promo chess.PieceType) {
	record := MoveRecord{From: src, To: m.To, Kind: m.Kind}
	if m.Kind.IsPromotion() {
		record.Promotion = promo
	}

	g.history = append(g.history, historyEntry{
		move:     record,
		undo:     u,
		rights:   g.rights,
		ep:       g.ep,
		halfmove: g.halfmove,
		fullmove: g.fullmove,
		status:   g.status,
		result:   g.result,
	})

	if m.Kind.IsPromotion() {
		promoted := chess.NewPiece(piece.Colour, promo, m.To)
		promoted.Promoted = true
		g.board.Place(m.To, promoted)
	}

	g.revokeRights(piece, src, m.To)

	if m.Kind == chess.LongPawnMove {
		g.ep = chess.EnPassantWindow{Target: chess.Pos(src.File, (src.Rank+m.To.Rank)/2), Ply: g.ply}
	} else {
		g.ep = noEnPassant()
	}

	if piece.Type == chess.Pawn || m.Kind.IsCapture() {
		g.halfmove = 0
	} else {
		g.halfmove++
	}
	if piece.Colour == chess.Black {
		g.fullmove++
	}

	g.ply++
	g.toMove = g.toMove.Opposite()
	g.status = g.resolve()
	g.decide()
}

// decide sets the game result from the resolver's verdict and the material
// left on the board.
func (g *Game) decide() {
	switch g.status.State {
	case Checkmate:
		g.result = chess.GameResult{Status: chess.WinFor(g.toMove.Opposite()), Cause: chess.Checkmate}
	case Stalemate:
		g.result = chess.GameResult{Status: chess.Draw, Cause: chess.Stalemate}
	default:
		if HasInsufficientMaterial(&g.board) {
			g.result = chess.GameResult{Status: chess.Draw, Cause: chess.InsufficientMaterial}
		}
	}
}

// promotionChoice normalises the piece a pawn promotes to. The zero value
// selects a queen.
func promotionChoice(choice chess.PieceType) (chess.PieceType, error) {
	switch choice {
	case chess.Empty:
		return chess.Queen, nil
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		return choice, nil
	default:
		return chess.Empty, errors.ErrInvalidPromotion
	}
}

func noEnPassant() chess.EnPassantWindow {
	return chess.EnPassantWindow{Target: chess.NoPosition, Ply: -1}
}
