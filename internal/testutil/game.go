package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Square parses an algebraic square name such as "e4".
// It calls t.Fatal if the name is not a square.
func Square(t testing.TB, name string) chess.Position {
	t.Helper()
	pos, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("invalid square %q", name)
	}
	return pos
}

// Squares parses several square names at once.
func Squares(t testing.TB, names ...string) []chess.Position {
	t.Helper()
	out := make([]chess.Position, len(names))
	for i, name := range names {
		out[i] = Square(t, name)
	}
	return out
}

// Destinations returns the destination squares of moves, as names.
func Destinations(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.To.String()
	}
	return out
}
