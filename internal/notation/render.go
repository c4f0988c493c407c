package notation

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Position is the read-only view of a game that Render draws from.
// *engine.Game satisfies it.
type Position interface {
	PieceAt(pos chess.Position) chess.Piece
}

// RenderOptions controls the diagram layout.
type RenderOptions struct {
	Coordinates bool // rank numbers on the left, file letters underneath
	Flipped     bool // Black's side at the bottom
	Highlight   []chess.Position
}

// Render draws the board as text, one rank per line. Pieces use their FEN
// letters, empty squares a '.', highlighted empty squares a '*'.
func Render(p Position, opts RenderOptions) string {
	marked := make(map[chess.Position]bool, len(opts.Highlight))
	for _, pos := range opts.Highlight {
		marked[pos] = true
	}

	files := make([]int, chess.BoardSize)
	ranks := make([]int, chess.BoardSize)
	for i := 0; i < chess.BoardSize; i++ {
		files[i] = i
		ranks[i] = chess.BoardSize - 1 - i
	}
	if opts.Flipped {
		for i := 0; i < chess.BoardSize; i++ {
			files[i] = chess.BoardSize - 1 - i
			ranks[i] = i
		}
	}

	var sb strings.Builder
	for _, rank := range ranks {
		if opts.Coordinates {
			sb.WriteByte(byte(chess.RankBase + rank))
			sb.WriteByte(' ')
		}
		for i, file := range files {
			if i > 0 {
				sb.WriteByte(' ')
			}
			pos := chess.Pos(file, rank)
			c := p.PieceAt(pos).Letter()
			if c == '.' && marked[pos] {
				c = '*'
			}
			sb.WriteByte(c)
		}
		sb.WriteByte('\n')
	}

	if opts.Coordinates {
		sb.WriteString(" ")
		for _, file := range files {
			sb.WriteByte(' ')
			sb.WriteByte(byte(chess.FileBase + file))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
