package engine

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// Standard perft positions.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

// mustGame loads a FEN or fails the test.
func mustGame(t testing.TB, fen string) *Game {
	t.Helper()
	g, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

// mustNewGame creates a classic game or fails the test.
func mustNewGame(t testing.TB) *Game {
	t.Helper()
	g, err := NewGame(chess.Classic)
	if err != nil {
		t.Fatalf("NewGame(Classic) error: %v", err)
	}
	return g
}

// play applies a sequence of UCI moves, failing the test on the first error.
func play(t testing.TB, g *Game, moves ...string) {
	t.Helper()
	for _, uci := range moves {
		if err := playUCI(t, g, uci); err != nil {
			t.Fatalf("move %s: %v", uci, err)
		}
	}
}

// playUCI applies one UCI move and returns the engine's verdict.
func playUCI(t testing.TB, g *Game, uci string) error {
	t.Helper()
	if len(uci) != 4 && len(uci) != 5 {
		t.Fatalf("bad UCI move %q", uci)
	}
	promo := chess.Empty
	if len(uci) == 5 {
		promo = chess.PieceTypeFromLetter(uci[4])
	}
	return g.AttemptMove(testutil.Square(t, uci[:2]), testutil.Square(t, uci[2:4]), promo)
}

// legalDestinations returns the sorted destination names of the legal moves
// from square.
func legalDestinations(t testing.TB, g *Game, square string) []string {
	t.Helper()
	moves, err := g.LegalMoves(testutil.Square(t, square))
	if err != nil {
		t.Fatalf("LegalMoves(%s) error: %v", square, err)
	}
	dests := testutil.Destinations(moves.Moves())
	slices.Sort(dests)
	return dests
}

// legalUCI returns every legal move of the position in sorted UCI form, with
// promotions expanded into all four pieces.
func legalUCI(g *Game) []string {
	var out []string
	for _, m := range g.AllLegalMoves() {
		if !m.Kind.IsPromotion() {
			out = append(out, m.UCI())
			continue
		}
		for _, promo := range promotionPieces {
			m.Promotion = promo
			out = append(out, m.UCI())
		}
	}
	slices.Sort(out)
	return out
}
