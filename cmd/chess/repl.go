package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/session"
)

const prompt = "> "

// repl reads commands for one session and prints the results.
type repl struct {
	m         *session.Manager
	s         *session.Session
	cfg       *config.Config
	out       io.Writer
	positions output.PositionWriter
	archiving bool
}

func newREPL(m *session.Manager, s *session.Session, cfg *config.Config, archiving bool) *repl {
	return &repl{
		m:         m,
		s:         s,
		cfg:       cfg,
		out:       cfg.OutputFile,
		positions: output.NewWriter(cfg.OutputFile, cfg.Output),
		archiving: archiving,
	}
}

// run processes lines until quit or end of input, then archives the game
// when an archive is configured.
func (r *repl) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	r.show()
	fmt.Fprint(r.out, prompt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && r.handle(line) {
			break
		}
		fmt.Fprint(r.out, prompt)
	}
	fmt.Fprintln(r.out)

	if err := scanner.Err(); err != nil {
		return err
	}
	if err := r.positions.Close(); err != nil {
		return err
	}
	if r.archiving {
		if _, err := r.m.Archive(r.s.ID); err != nil {
			return err
		}
	}
	return nil
}

// handle runs one line and reports whether the session should end.
func (r *repl) handle(line string) bool {
	if strings.EqualFold(line, "save") {
		if _, err := r.m.Archive(r.s.ID); err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
		} else {
			fmt.Fprintf(r.out, "saved %s\n", r.s.ID)
		}
		return false
	}

	reply, err := r.m.Play(r.s.ID, line)
	if err != nil {
		fmt.Fprintf(r.out, "error: %v\n", err)
		return false
	}

	switch reply.Command.Kind {
	case notation.Move, notation.Undo, notation.Resign, notation.OfferDraw:
		r.show()
	case notation.ListMoves:
		r.showDestinations(reply.Command.Square, reply.Text)
	case notation.History:
		r.s.View(func(g *engine.Game) {
			output.WriteMoveList(r.out, g, int(r.cfg.Output.MaxLineLength))
		})
	case notation.Quit:
		return true
	default:
		fmt.Fprintln(r.out, strings.TrimRight(reply.Text, "\n"))
	}
	return false
}

func (r *repl) show() {
	r.s.View(func(g *engine.Game) {
		if err := r.positions.WritePosition(g); err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
		}
	})
}

// showDestinations lists the legal destinations from src, marking them on
// the board when positions are drawn as diagrams.
func (r *repl) showDestinations(src chess.Position, text string) {
	if text == "" {
		fmt.Fprintf(r.out, "%s has no legal moves\n", src)
		return
	}
	if r.cfg.Output.Format == config.Diagram {
		var marks []chess.Position
		for _, name := range strings.Fields(text) {
			if pos, ok := chess.ParseSquare(name); ok {
				marks = append(marks, pos)
			}
		}
		opts := notation.RenderOptions{
			Coordinates: r.cfg.Output.Coordinates,
			Flipped:     r.cfg.Output.Flipped,
			Highlight:   marks,
		}
		r.s.View(func(g *engine.Game) {
			fmt.Fprint(r.out, notation.Render(g, opts))
		})
	}
	fmt.Fprintln(r.out, text)
}
