// Package output prints positions and move lists in the configured format.
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// startPly is the ply of the position the game's history starts from.
func startPly(g *engine.Game) int {
	return g.Ply() - len(g.History())
}

// WriteMoveList writes the game's moves as numbered UCI text, e.g.
// "1. e2e4 e7e5 2. g1f3", wrapping at maxLineLength. A history starting
// with Black to move opens with "1...". The result score ends the list
// once the game is over.
func WriteMoveList(w io.Writer, g *engine.Game, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)

	ply := startPly(g)
	for i, m := range g.History() {
		number := strconv.Itoa((ply+i)/2 + 1)
		switch {
		case (ply+i)%2 == 0:
			ow.Write(number + ".")
		case i == 0:
			ow.Write(number + "...")
		}
		ow.Write(m.UCI())
	}

	result := g.Result()
	if result.Over() {
		ow.Write(result.Status.Score())
	}
	ow.NewLine()
}

// StatusLine describes the game state in one line, e.g. "Black to move",
// "White to move, check" or "Checkmate, 0-1".
func StatusLine(g *engine.Game) string {
	status := g.Status()
	result := status.Result
	if result.Over() {
		return fmt.Sprintf("%s, %s", causeText(result.Cause), result.Status.Score())
	}
	line := g.ToMove().String() + " to move"
	if status.State == engine.Check {
		line += ", check"
	}
	return line
}

func causeText(c chess.Cause) string {
	switch c {
	case chess.Checkmate:
		return "Checkmate"
	case chess.Stalemate:
		return "Stalemate"
	case chess.Resignation:
		return "Resigned"
	case chess.AgreedDraw:
		return "Draw agreed"
	case chess.InsufficientMaterial:
		return "Insufficient material"
	default:
		return c.String()
	}
}
