package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func TestSquare(t *testing.T) {
	tests := []struct {
		name string
		want chess.Position
	}{
		{"a1", chess.Pos(0, 0)},
		{"e4", chess.Pos(4, 3)},
		{"h8", chess.Pos(7, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AssertEqual(t, Square(t, tt.name), tt.want)
		})
	}
}

func TestSquares(t *testing.T) {
	got := Squares(t, "a1", "h8")
	AssertEqual(t, got, []chess.Position{chess.Pos(0, 0), chess.Pos(7, 7)})
}

func TestDestinations(t *testing.T) {
	moves := []chess.Move{
		{To: chess.Pos(4, 3), Kind: chess.LongPawnMove},
		{To: chess.Pos(4, 2), Kind: chess.NoCapture},
	}
	AssertEqual(t, Destinations(moves), []string{"e4", "e3"})
}
