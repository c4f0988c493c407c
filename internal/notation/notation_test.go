package notation

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"e2e4", Command{Kind: Move, From: chess.Pos(4, 1), To: chess.Pos(4, 3)}},
		{"  E2E4  ", Command{Kind: Move, From: chess.Pos(4, 1), To: chess.Pos(4, 3)}},
		{"e2-e4", Command{Kind: Move, From: chess.Pos(4, 1), To: chess.Pos(4, 3)}},
		{"e7e8q", Command{Kind: Move, From: chess.Pos(4, 6), To: chess.Pos(4, 7), Promotion: chess.Queen}},
		{"e7xd8=N", Command{Kind: Move, From: chess.Pos(4, 6), To: chess.Pos(3, 7), Promotion: chess.Knight}},
		{"res", Command{Kind: Resign}},
		{"draw", Command{Kind: OfferDraw}},
		{"undo", Command{Kind: Undo}},
		{"moves g1", Command{Kind: ListMoves, Square: chess.Pos(6, 0)}},
		{"fen", Command{Kind: ShowFEN}},
		{"quit", Command{Kind: Quit}},
		{"perft 3", Command{Kind: Perft, Depth: 3}},
		{"history", Command{Kind: History}},
		{"?", Command{Kind: Help}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCommand(tt.input)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"e2",
		"e2e4e6",
		"i2i4",
		"e2e9",
		"e7e8k",
		"e7e8p",
		"e2e4 e7e5",
		"moves",
		"moves z9",
		"perft",
		"perft 0",
		"perft x",
		"undo now",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseCommand(input)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidNotation)
		})
	}
}

func TestCommandKindString(t *testing.T) {
	testutil.AssertEqual(t, Resign.String(), "res")
	testutil.AssertEqual(t, ListMoves.String(), "moves")
	testutil.AssertEqual(t, CommandKind(99).String(), "unknown")
}

func TestRenderInitialPosition(t *testing.T) {
	g, err := engine.NewGame(chess.Classic)
	testutil.AssertNoError(t, err)

	want := "" +
		"8 r n b q k b n r\n" +
		"7 p p p p p p p p\n" +
		"6 . . . . . . . .\n" +
		"5 . . . . . . . .\n" +
		"4 . . . . . . . .\n" +
		"3 . . . . . . . .\n" +
		"2 P P P P P P P P\n" +
		"1 R N B Q K B N R\n" +
		"  a b c d e f g h\n"
	testutil.AssertEqual(t, Render(g, RenderOptions{Coordinates: true}), want)
}

func TestRenderFlippedWithHighlights(t *testing.T) {
	g, err := engine.NewGameFromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	testutil.AssertNoError(t, err)

	got := Render(g, RenderOptions{
		Flipped:   true,
		Highlight: []chess.Position{chess.Pos(0, 1), chess.Pos(0, 0)},
	})
	want := "" +
		". . . K . . . R\n" +
		". . . . . . . *\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . k . . . .\n"
	testutil.AssertEqual(t, got, want)
}
