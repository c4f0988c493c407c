// Package engine implements the chess rules: move generation, legality
// validation, check and mate detection, special moves and the turn cycle.
package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Step and ray tables, as (file, rank) deltas.
var (
	knightOffsets = [][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}

	// queenDirections lists the orthogonal rays first, then the diagonals.
	queenDirections  = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}, {1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	rookDirections   = queenDirections[:4]
	bishopDirections = queenDirections[4:]
)

// find is the single generator entry point for the piece standing on pos.
//
// With mark false it replaces the contents of moves with the piece's
// pseudo-legal moves. With mark true it increments the attacked counter of
// every square the piece threatens and, when checkers is non-nil, records the
// piece as a checker if one of those squares holds the opposing king.
//
// King moves exclude squares currently marked attacked, so callers wanting a
// king's moves must mark the opponent first.
func (g *Game) find(pos chess.Position, mark bool, moves *chess.MoveList, checkers *chess.CheckingPieces) {
	piece := g.board.At(pos)
	if !mark {
		moves.Clear()
	}

	switch piece.Type {
	case chess.King:
		g.findKing(piece, mark, moves, checkers)
	case chess.Queen:
		g.findSlider(piece, queenDirections, mark, moves, checkers)
	case chess.Rook:
		g.findSlider(piece, rookDirections, mark, moves, checkers)
	case chess.Bishop:
		g.findSlider(piece, bishopDirections, mark, moves, checkers)
	case chess.Knight:
		g.findKnight(piece, mark, moves, checkers)
	case chess.Pawn:
		g.findPawn(piece, mark, moves, checkers)
	default:
		panic(fmt.Sprintf("engine: no generator for %s on %s", piece.Type, pos))
	}
}

// mark records one threat by attacker against target.
func (g *Game) mark(target chess.Position, attacker chess.Piece, checkers *chess.CheckingPieces) {
	g.board.Attack(target)
	if checkers == nil {
		return
	}
	victim := g.board.At(target)
	if victim.Type == chess.King && victim.Colour != attacker.Colour {
		checkers.Add(attacker.Pos, attacker.Type)
	}
}

// addStep emits a single-step destination unless it holds a friendly piece.
func (g *Game) addStep(piece chess.Piece, to chess.Position, moves *chess.MoveList) {
	occupant := g.board.At(to)
	switch {
	case occupant.IsEmpty():
		moves.Add(to, chess.NoCapture)
	case occupant.Colour != piece.Colour:
		moves.Add(to, chess.Capture)
	}
}

// findKnight handles the eight L-shaped jumps. Knights are never blocked.
func (g *Game) findKnight(piece chess.Piece, mark bool, moves *chess.MoveList, checkers *chess.CheckingPieces) {
	for _, d := range knightOffsets {
		to := piece.Pos.Offset(d[0], d[1])
		if !to.Valid() {
			continue
		}
		if mark {
			g.mark(to, piece, checkers)
		} else {
			g.addStep(piece, to, moves)
		}
	}
}

// findKing handles the eight neighbouring squares plus castling.
func (g *Game) findKing(piece chess.Piece, mark bool, moves *chess.MoveList, checkers *chess.CheckingPieces) {
	for _, d := range kingOffsets {
		to := piece.Pos.Offset(d[0], d[1])
		if !to.Valid() {
			continue
		}
		if mark {
			g.mark(to, piece, checkers)
			continue
		}
		if g.board.Attacked(to) {
			continue
		}
		g.addStep(piece, to, moves)
	}

	if !mark {
		g.findCastles(piece, moves)
	}
}
