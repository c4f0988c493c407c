package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// markAttacks runs attack mode for every piece of colour by. Counters must be
// zero beforehand; the caller clears them when done.
func (g *Game) markAttacks(by chess.Colour, checkers *chess.CheckingPieces) {
	for _, pos := range g.board.Pieces(by) {
		g.find(pos, true, nil, checkers)
	}
}

// kingAttacked reports whether colour's king is attacked, leaving every
// counter at zero.
func (g *Game) kingAttacked(colour chess.Colour) bool {
	king := g.king(colour)
	g.markAttacks(colour.Opposite(), nil)
	attacked := g.board.Attacked(king)
	g.board.ClearAttacks()
	return attacked
}

// king returns the square of colour's king. A board without one is an
// invariant violation.
func (g *Game) king(colour chess.Colour) chess.Position {
	pos, ok := g.board.FindKing(colour)
	if !ok {
		panic(fmt.Sprintf("engine: no %s king on the board", colour))
	}
	return pos
}

// IsInCheck reports whether the side to move is in check.
func (g *Game) IsInCheck() bool {
	return g.kingAttacked(g.toMove)
}

// IsAttacked reports whether pos is attacked by colour by in the current
// position.
func (g *Game) IsAttacked(pos chess.Position, by chess.Colour) bool {
	if !pos.Valid() {
		return false
	}
	g.markAttacks(by, nil)
	attacked := g.board.Attacked(pos)
	g.board.ClearAttacks()
	return attacked
}

// checkers lists the pieces giving check to colour's king, reporting whether
// more than chess.MaxCheckers were seen.
func (g *Game) checkers(colour chess.Colour) (chess.CheckingPieces, bool) {
	var checkers chess.CheckingPieces
	g.markAttacks(colour.Opposite(), &checkers)
	g.board.ClearAttacks()
	return checkers, checkers.Overflowed()
}
