package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var minors [2][]chess.Piece

	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		for _, pos := range board.Pieces(colour) {
			piece := board.At(pos)
			switch piece.Type {
			case chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			}
			minors[colour] = append(minors[colour], piece)
		}
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white)+len(black) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		w, b := white[0], black[0]
		return w.Type == chess.Bishop && b.Type == chess.Bishop && w.Pos.IsLight() == b.Pos.IsLight()
	}
	return false
}
