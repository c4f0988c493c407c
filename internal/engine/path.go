package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// findSlider walks each ray until the first occupied square or the board
// edge. In move mode the blocker is emitted as a capture when hostile. In
// attack mode the blocker is marked whatever its colour, so defended pieces
// count as attacked; when the blocker is the opposing king the square just
// behind it is marked too, which keeps the king from stepping back along the
// ray.
func (g *Game) findSlider(piece chess.Piece, directions [][2]int, mark bool, moves *chess.MoveList, checkers *chess.CheckingPieces) {
	for _, d := range directions {
		for to := piece.Pos.Offset(d[0], d[1]); to.Valid(); to = to.Offset(d[0], d[1]) {
			occupant := g.board.At(to)

			if mark {
				g.mark(to, piece, checkers)
				if occupant.Type == chess.King && occupant.Colour != piece.Colour {
					if behind := to.Offset(d[0], d[1]); behind.Valid() {
						g.board.Attack(behind)
					}
				}
			} else {
				g.addStep(piece, to, moves)
			}

			if !occupant.IsEmpty() {
				break
			}
		}
	}
}

// between returns the squares strictly between from and to, which must share
// a rank, file or diagonal.
func between(from, to chess.Position) []chess.Position {
	df := sign(to.File - from.File)
	dr := sign(to.Rank - from.Rank)

	var out []chess.Position
	for sq := from.Offset(df, dr); sq != to && sq.Valid(); sq = sq.Offset(df, dr) {
		out = append(out, sq)
	}
	return out
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
