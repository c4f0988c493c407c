package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// rankString renders a back rank as piece letters, a-file first.
func rankString(rank [chess.BoardSize]chess.PieceType) string {
	b := make([]byte, len(rank))
	for i, pieceType := range rank {
		b[i] = pieceType.Letter()
	}
	return string(b)
}

func TestChess960BackRank(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "BBQNNRKR"},
		{1, "BQNBNRKR"},
		{ClassicChess960Index, "RNBQKBNR"},
		{959, "RKRNNQBB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			rank, err := Chess960BackRank(tt.index)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, rankString(rank), tt.want)
		})
	}
}

func TestChess960BackRankAllValidAndDistinct(t *testing.T) {
	seen := make(map[string]int, Chess960Positions)
	for i := 0; i < Chess960Positions; i++ {
		rank, err := Chess960BackRank(i)
		testutil.AssertNoError(t, err)
		testutil.AssertTrue(t, IsChess960BackRank(rank), "index %d gives %s", i, rankString(rank))

		key := rankString(rank)
		if prev, dup := seen[key]; dup {
			t.Fatalf("indices %d and %d both give %s", prev, i, key)
		}
		seen[key] = i
	}
}

func TestChess960BackRankOutOfRange(t *testing.T) {
	for _, n := range []int{-1, Chess960Positions, 10000} {
		_, err := Chess960BackRank(n)
		testutil.AssertErrorIs(t, err, errors.ErrUnsupportedVariantFeature)
	}
}

func TestIsChess960BackRank(t *testing.T) {
	tests := []struct {
		name string
		rank string
		want bool
	}{
		{"classic", "RNBQKBNR", true},
		{"king outside the rooks", "KRNBQBNR", false},
		{"bishops on the same colour", "RBQBKNNR", false},
		{"two queens", "RQBQKBNR", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rank [chess.BoardSize]chess.PieceType
			for i := range rank {
				rank[i] = chess.PieceTypeFromLetter(tt.rank[i])
			}
			testutil.AssertEqual(t, IsChess960BackRank(rank), tt.want)
		})
	}
}

func TestChess960SetupOrigins(t *testing.T) {
	g, err := NewGame(chess.Chess960, WithChess960Index(959))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, g.origins[chess.White], chess.CastlingOrigins{KingFile: 1, KingRookFile: 2, QueenRookFile: 0})
	testutil.AssertEqual(t, g.origins[chess.Black], g.origins[chess.White])
	testutil.AssertContains(t, g.FEN(), " w CAca - ")

	loaded := mustGame(t, g.FEN())
	testutil.AssertEqual(t, loaded.Variant(), chess.Chess960)
	testutil.AssertEqual(t, loaded.FEN(), g.FEN())
}
