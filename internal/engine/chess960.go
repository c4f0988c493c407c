package engine

import (
	"fmt"
	"math/rand/v2"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Chess960Positions is the number of distinct Chess960 starting arrangements.
const Chess960Positions = 960

// ClassicChess960Index is the number of the classic arrangement RNBQKBNR.
const ClassicChess960Index = 518

var classicBackRank = [chess.BoardSize]chess.PieceType{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// knightPlacements lists the ten ways of putting two knights on five empty
// squares, by index among those squares.
var knightPlacements = [10][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {1, 3}, {1, 4},
	{2, 3}, {2, 4},
	{3, 4},
}

// Chess960BackRank returns the back-rank arrangement with the given number in
// the standard 0-959 numbering. Every arrangement has the king between the
// rooks and the bishops on opposite colours.
func Chess960BackRank(n int) ([chess.BoardSize]chess.PieceType, error) {
	var rank [chess.BoardSize]chess.PieceType
	if n < 0 || n >= Chess960Positions {
		return rank, errors.Wrapf(errors.ErrUnsupportedVariantFeature, "chess960 index %d out of range", n)
	}

	// Light-squared bishop on b, d, f or h; dark-squared on a, c, e or g.
	rank[2*(n%4)+1] = chess.Bishop
	n /= 4
	rank[2*(n%4)] = chess.Bishop
	n /= 4

	placeNthEmpty(&rank, n%6, chess.Queen)
	n /= 6

	// Place the second knight first so the first index still counts the
	// same empty squares.
	knights := knightPlacements[n]
	placeNthEmpty(&rank, knights[1], chess.Knight)
	placeNthEmpty(&rank, knights[0], chess.Knight)

	placeNthEmpty(&rank, 0, chess.Rook)
	placeNthEmpty(&rank, 0, chess.King)
	placeNthEmpty(&rank, 0, chess.Rook)
	return rank, nil
}

// placeNthEmpty puts pieceType on the n-th (0-based) empty file of rank.
func placeNthEmpty(rank *[chess.BoardSize]chess.PieceType, n int, pieceType chess.PieceType) {
	for file := range rank {
		if rank[file] != chess.Empty {
			continue
		}
		if n == 0 {
			rank[file] = pieceType
			return
		}
		n--
	}
	panic(fmt.Sprintf("engine: no empty file left for %s", pieceType))
}

// originsOf returns the castling origins of a back-rank arrangement: the king
// file and the files of the rooks on either side of it.
func originsOf(rank [chess.BoardSize]chess.PieceType) chess.CastlingOrigins {
	origins := chess.ClassicOrigins()
	for file, pieceType := range rank {
		if pieceType == chess.King {
			origins.KingFile = file
		}
	}
	for file, pieceType := range rank {
		if pieceType != chess.Rook {
			continue
		}
		if file < origins.KingFile {
			origins.QueenRookFile = file
		} else {
			origins.KingRookFile = file
		}
	}
	return origins
}

// IsChess960BackRank reports whether rank is a legal Chess960 arrangement:
// one king strictly between two rooks, two bishops on opposite-coloured
// squares, one queen and two knights.
func IsChess960BackRank(rank [chess.BoardSize]chess.PieceType) bool {
	counts := map[chess.PieceType]int{}
	var rooks, bishops []int
	king := -1
	for file, pieceType := range rank {
		counts[pieceType]++
		switch pieceType {
		case chess.Rook:
			rooks = append(rooks, file)
		case chess.Bishop:
			bishops = append(bishops, file)
		case chess.King:
			king = file
		}
	}
	if counts[chess.King] != 1 || counts[chess.Queen] != 1 || counts[chess.Knight] != 2 ||
		len(rooks) != 2 || len(bishops) != 2 {
		return false
	}
	if !(rooks[0] < king && king < rooks[1]) {
		return false
	}
	return bishops[0]%2 != bishops[1]%2
}

// defaultShuffler draws from a generator seeded by the runtime from system
// entropy.
func defaultShuffler() Shuffler {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
