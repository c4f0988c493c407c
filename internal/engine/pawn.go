package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnStartRank returns the rank pawns of colour start on.
func pawnStartRank(colour chess.Colour) int {
	return chess.HomeRank(colour) + chess.ColourOffset(colour)
}

// findPawn emits forward steps onto empty squares, the double step from the
// start rank, diagonal captures and en-passant captures. Steps onto the far
// rank are tagged as promotions. In attack mode both forward diagonals are
// marked regardless of what stands on them.
func (g *Game) findPawn(piece chess.Piece, mark bool, moves *chess.MoveList, checkers *chess.CheckingPieces) {
	dir := chess.ColourOffset(piece.Colour)

	if mark {
		for _, df := range [2]int{-1, 1} {
			if to := piece.Pos.Offset(df, dir); to.Valid() {
				g.mark(to, piece, checkers)
			}
		}
		return
	}

	farRank := chess.HomeRank(piece.Colour.Opposite())

	ahead := piece.Pos.Offset(0, dir)
	if !ahead.Valid() {
		return
	}
	if !g.board.IsOccupied(ahead) {
		if ahead.Rank == farRank {
			moves.Add(ahead, chess.Promotion)
		} else {
			moves.Add(ahead, chess.NoCapture)
		}
		if piece.Pos.Rank == pawnStartRank(piece.Colour) {
			if double := ahead.Offset(0, dir); !g.board.IsOccupied(double) {
				moves.Add(double, chess.LongPawnMove)
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to := piece.Pos.Offset(df, dir)
		if !to.Valid() {
			continue
		}
		if colour, occupied := g.board.ColourAt(to); occupied {
			if colour == piece.Colour {
				continue
			}
			if to.Rank == farRank {
				moves.Add(to, chess.CaptureWithPromotion)
			} else {
				moves.Add(to, chess.Capture)
			}
			continue
		}
		if g.enPassantTarget(piece, to) {
			moves.Add(to, chess.EnPassant)
		}
	}
}

// enPassantTarget reports whether the pawn may capture en passant onto to.
// The window must be open for the current ply and an opposing pawn must stand
// beside the capturing pawn, directly behind the target.
func (g *Game) enPassantTarget(pawn chess.Piece, to chess.Position) bool {
	if !g.ep.ActiveAt(g.ply) || g.ep.Target != to {
		return false
	}
	victim := g.board.At(enPassantVictim(pawn.Pos, to))
	return victim.Type == chess.Pawn && victim.Colour != pawn.Colour
}

// enPassantVictim returns the square of the pawn removed by an en-passant
// capture from src to dst: beside the source, behind the destination.
func enPassantVictim(src, dst chess.Position) chess.Position {
	return chess.Pos(dst.File, src.Rank)
}
