package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Castling destination files, identical in classic chess and Chess960.
const (
	kingSideKingFile  = 6 // g
	kingSideRookFile  = 5 // f
	queenSideKingFile = 2 // c
	queenSideRookFile = 3 // d
)

// castlePlan describes the squares involved in one castling move.
type castlePlan struct {
	wing     chess.Wing
	kingFrom chess.Position
	kingTo   chess.Position
	rookFrom chess.Position
	rookTo   chess.Position
}

// planCastle builds the plan for colour castling to wing from the recorded
// origin files.
func (g *Game) planCastle(colour chess.Colour, wing chess.Wing) castlePlan {
	rank := chess.HomeRank(colour)
	origins := g.origins[colour]

	kingTo, rookTo := kingSideKingFile, kingSideRookFile
	if wing == chess.QueenSide {
		kingTo, rookTo = queenSideKingFile, queenSideRookFile
	}

	return castlePlan{
		wing:     wing,
		kingFrom: chess.Pos(origins.KingFile, rank),
		kingTo:   chess.Pos(kingTo, rank),
		rookFrom: chess.Pos(origins.RookFile(wing), rank),
		rookTo:   chess.Pos(rookTo, rank),
	}
}

// destination returns the square a castling move is addressed by: the king's
// target in classic chess, the castling rook's origin in Chess960.
func (p castlePlan) destination(variant chess.Variant) chess.Position {
	if variant == chess.Chess960 {
		return p.rookFrom
	}
	return p.kingTo
}

// castlePlanFor maps a castling destination back to its plan.
func (g *Game) castlePlanFor(colour chess.Colour, dst chess.Position) (castlePlan, bool) {
	for _, wing := range [2]chess.Wing{chess.KingSide, chess.QueenSide} {
		plan := g.planCastle(colour, wing)
		if plan.destination(g.variant) == dst {
			return plan, true
		}
	}
	return castlePlan{}, false
}

// findCastles emits the castling moves available to king. The opponent's
// attacks must be marked on the board.
func (g *Game) findCastles(king chess.Piece, moves *chess.MoveList) {
	for _, wing := range [2]chess.Wing{chess.KingSide, chess.QueenSide} {
		if !g.rights.Has(king.Colour, wing) {
			continue
		}
		plan := g.planCastle(king.Colour, wing)
		if king.Pos != plan.kingFrom {
			continue
		}
		if g.canCastle(king.Colour, plan) {
			moves.Add(plan.destination(g.variant), chess.Castle)
		}
	}
}

// canCastle checks the castling rook is home, every square spanned by the
// king and rook paths is empty apart from those two pieces, and no square
// the king stands on or crosses is attacked.
func (g *Game) canCastle(colour chess.Colour, plan castlePlan) bool {
	rook := g.board.At(plan.rookFrom)
	if rook.Type != chess.Rook || rook.Colour != colour {
		return false
	}

	rank := plan.kingFrom.Rank
	lo := min(plan.kingFrom.File, plan.kingTo.File, plan.rookFrom.File, plan.rookTo.File)
	hi := max(plan.kingFrom.File, plan.kingTo.File, plan.rookFrom.File, plan.rookTo.File)
	for file := lo; file <= hi; file++ {
		sq := chess.Pos(file, rank)
		if sq == plan.kingFrom || sq == plan.rookFrom {
			continue
		}
		if g.board.IsOccupied(sq) {
			return false
		}
	}

	step := sign(plan.kingTo.File - plan.kingFrom.File)
	for file := plan.kingFrom.File; ; file += step {
		if g.board.Attacked(chess.Pos(file, rank)) {
			return false
		}
		if file == plan.kingTo.File {
			break
		}
	}
	return true
}

// revokeRights removes the castling rights lost by a move from src to dst
// played by piece: a king leaving home loses both, and a move from or onto a
// rook origin square loses that wing for the rook's owner.
func (g *Game) revokeRights(piece chess.Piece, src, dst chess.Position) {
	if piece.Type == chess.King {
		g.rights.RevokeAll(piece.Colour)
	}
	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		for _, wing := range [2]chess.Wing{chess.KingSide, chess.QueenSide} {
			origin := chess.Pos(g.origins[colour].RookFile(wing), chess.HomeRank(colour))
			if src == origin || dst == origin {
				g.rights.Revoke(colour, wing)
			}
		}
	}
}
