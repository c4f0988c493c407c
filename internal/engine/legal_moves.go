package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// candidates returns the pseudo-legal moves of the piece on pos. For a king
// the opponent's attacks are marked first so attacked squares and unsafe
// castles are left out.
func (g *Game) candidates(pos chess.Position) chess.MoveList {
	var moves chess.MoveList
	piece := g.board.At(pos)
	if piece.Type == chess.King {
		g.markAttacks(piece.Colour.Opposite(), nil)
	}
	g.find(pos, false, &moves, nil)
	g.board.ClearAttacks()
	return moves
}

// legalFrom filters the candidates of the piece on pos through the validator.
func (g *Game) legalFrom(pos chess.Position) chess.MoveList {
	pseudo := g.candidates(pos)

	var legal chess.MoveList
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		u, err := g.validate(pos, m)
		if err != nil {
			continue
		}
		u.revert(&g.board)
		legal.Add(m.To, m.Kind)
	}
	return legal
}

// anyLegal reports whether at least one of moves, played by the piece on src,
// survives the validator. The board is left unchanged.
func (g *Game) anyLegal(src chess.Position, moves *chess.MoveList) bool {
	for i := 0; i < moves.Len(); i++ {
		if u, err := g.validate(src, moves.At(i)); err == nil {
			u.revert(&g.board)
			return true
		}
	}
	return false
}

// checkSource validates a source square for the side to move.
func (g *Game) checkSource(pos chess.Position) (chess.Piece, error) {
	if !pos.Valid() {
		return chess.Piece{}, &errors.MoveError{Err: errors.ErrInvalidSquare, Ply: g.ply}
	}
	piece := g.board.At(pos)
	if piece.IsEmpty() {
		return piece, &errors.MoveError{Err: errors.ErrEmptySource, From: pos.String(), Ply: g.ply}
	}
	if piece.Colour != g.toMove {
		return piece, &errors.MoveError{Err: errors.ErrWrongSideToMove, From: pos.String(), Ply: g.ply}
	}
	return piece, nil
}

// LegalMoves returns the legal moves of the piece on pos. Every returned move
// has been tried on the board and leaves the mover's king safe.
func (g *Game) LegalMoves(pos chess.Position) (chess.MoveList, error) {
	if _, err := g.checkSource(pos); err != nil {
		return chess.MoveList{}, err
	}
	return g.legalFrom(pos), nil
}

// AllLegalMoves returns every legal move of the side to move, by source square
// in file-major order. Promotions appear once with Promotion left Empty.
func (g *Game) AllLegalMoves() []MoveRecord {
	var out []MoveRecord
	for _, src := range g.board.Pieces(g.toMove) {
		legal := g.legalFrom(src)
		for i := 0; i < legal.Len(); i++ {
			m := legal.At(i)
			out = append(out, MoveRecord{From: src, To: m.To, Kind: m.Kind})
		}
	}
	return out
}

// resolve classifies the position for the side to move.
//
// The king's own escapes are tried first. Failing that, a position in check
// survives only if a single checker can be captured or, for a slider, its ray
// blocked; double check with no king move is mate. A position not in check
// with no legal move anywhere is stalemate.
func (g *Game) resolve() Status {
	side := g.toMove
	king := g.king(side)

	var checkers chess.CheckingPieces
	g.markAttacks(side.Opposite(), &checkers)
	if checkers.Overflowed() {
		g.board.ClearAttacks()
		panic(fmt.Sprintf("engine: more than %d pieces check the %s king", chess.MaxCheckers, side))
	}
	inCheck := g.board.Attacked(king)

	var kingMoves chess.MoveList
	g.find(king, false, &kingMoves, nil)
	g.board.ClearAttacks()

	status := Status{State: InProgress, Checkers: checkers.Checkers()}
	if inCheck {
		status.State = Check
	}

	if g.anyLegal(king, &kingMoves) {
		return status
	}

	if !inCheck {
		for _, pos := range g.board.Pieces(side) {
			if pos == king {
				continue
			}
			moves := g.candidates(pos)
			if g.anyLegal(pos, &moves) {
				return status
			}
		}
		status.State = Stalemate
		return status
	}

	if checkers.Len() == 1 && g.canAnswerCheck(side, king, checkers.At(0)) {
		return status
	}
	status.State = Checkmate
	return status
}

// canAnswerCheck searches the non-king pieces of side for a legal move that
// captures checker or, when checker is a slider, lands between it and the
// king. A checking pawn may also be taken en passant.
func (g *Game) canAnswerCheck(side chess.Colour, king chess.Position, checker chess.Checker) bool {
	targets := []chess.Position{checker.Pos}
	if checker.Type.IsSlider() {
		targets = append(targets, between(checker.Pos, king)...)
	}

	for _, pos := range g.board.Pieces(side) {
		if pos == king {
			continue
		}
		moves := g.candidates(pos)
		for i := 0; i < moves.Len(); i++ {
			m := moves.At(i)
			hits := slices.Contains(targets, m.To)
			if m.Kind == chess.EnPassant && enPassantVictim(pos, m.To) == checker.Pos {
				hits = true
			}
			if !hits {
				continue
			}
			if u, err := g.validate(pos, m); err == nil {
				u.revert(&g.board)
				return true
			}
		}
	}
	return false
}
