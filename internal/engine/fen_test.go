package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		kiwipeteFEN,
		position3FEN,
		position4FEN,
		position5FEN,
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2",
		"rnbqkbnr/pp1ppppp/8/2pP4/8/8/PPP1PPPP/RNBQKBNR w KQkq c6 0 3",
		"rk5r/pppppppp/8/8/8/8/PPPPPPPP/RK5R w HAha - 0 1",
		"4k3/8/8/8/8/8/8/4K3 b - - 57 80",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			g := mustGame(t, fen)
			testutil.AssertEqual(t, g.FEN(), fen)
			testutil.AssertEqual(t, g.StartFEN(), fen)
		})
	}
}

func TestFENNormalisation(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{
			name: "clocks default",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - -",
			want: "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
		},
		{
			name: "fullmove zero read as one",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - - 0 0",
			want: "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
		},
		{
			name: "en-passant target without a pushed pawn is dropped",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e6 0 1",
			want: InitialFEN,
		},
		{
			name: "castling letters in any order",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w qkQK - 0 1",
			want: "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen)
			testutil.AssertEqual(t, g.FEN(), tt.want)
		})
	}
}

func TestFENPlyFromFullmove(t *testing.T) {
	testutil.AssertEqual(t, mustGame(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1").Ply(), 0)
	testutil.AssertEqual(t, mustGame(t, "4k3/8/8/8/8/8/8/4K3 b - - 0 1").Ply(), 1)
	testutil.AssertEqual(t, mustGame(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 10").Ply(), 18)
}

func TestFENOuterRookForKQ(t *testing.T) {
	// Two white rooks on the king side; K names the outer one on g1.
	g := mustGame(t, "4k3/8/8/8/8/8/8/4KRR1 w K - 0 1")
	testutil.AssertEqual(t, g.origins[chess.White].KingRookFile, 6)
	testutil.AssertEqual(t, g.Variant(), chess.Chess960)
	testutil.AssertEqual(t, g.FEN(), "4k3/8/8/8/8/8/8/4KRR1 w G - 0 1")
}

func TestFENShredderMakesChess960(t *testing.T) {
	g := mustGame(t, "r3k2r/8/8/8/8/8/8/R3K2R w HAha - 0 1")
	testutil.AssertEqual(t, g.Variant(), chess.Chess960)
	testutil.AssertEqual(t, g.CastlingRights(), chess.AllCastlingRights())

	classic := mustGame(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	testutil.AssertEqual(t, classic.Variant(), chess.Classic)
}

func TestFENInvalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few fields", "4k3/8/8/8/8/8/8/4K3 w"},
		{"seven ranks", "4k3/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad piece letter", "4k3/8/8/8/8/8/8/4X3 w - - 0 1"},
		{"rank too long", "4k3/8/8/8/8/8/8/4K4 w - - 0 1"},
		{"rank too short", "4k3/8/8/8/8/8/8/4K2 w - - 0 1"},
		{"pawn on the back rank", "4k2P/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"missing king", "8/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling flag", "4k3/8/8/8/8/8/8/R3K2R w Z - 0 1"},
		{"castling without rook", "4k3/8/8/8/8/8/8/4K3 w K - 0 1"},
		{"castling with king off its rank", "4k3/8/8/8/8/8/4K3/R6R w KQ - 0 1"},
		{"en-passant on the wrong rank", "4k3/8/8/8/8/8/8/4K3 w - e4 0 1"},
		{"en-passant not a square", "4k3/8/8/8/8/8/8/4K3 w - z9 0 1"},
		{"negative halfmove clock", "4k3/8/8/8/8/8/8/4K3 w - - -1 1"},
		{"bad fullmove number", "4k3/8/8/8/8/8/8/4K3 w - - 0 x"},
		{"side not on move in check", "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1"},
		{"three checkers", "4r2k/8/8/b7/8/3n4/8/4K3 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGameFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
			testutil.AssertTrue(t, g == nil)
		})
	}
}

func TestFENDecidesResult(t *testing.T) {
	g := mustGame(t, "4k3/8/8/8/8/8/8/4KN2 w - - 0 1")
	testutil.AssertEqual(t, g.Result(), chess.GameResult{Status: chess.Draw, Cause: chess.InsufficientMaterial})

	mated := mustGame(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	testutil.AssertEqual(t, mated.Status().State, Checkmate)
	testutil.AssertEqual(t, mated.Result().Status, chess.BlackWins)
}
