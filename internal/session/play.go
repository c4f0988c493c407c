package session

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/store"
)

// HelpText lists the commands Play understands.
const HelpText = `commands:
  e2e4, e7e8q   play a move (promotion letter q, r, b or n; queen if omitted)
  moves <sq>    list the legal destinations of the piece on <sq>
  undo          take back the last move
  res           resign for the side to move
  draw          agree a draw
  fen           print the position as FEN
  history       print the moves played
  perft <n>     count the leaf nodes of the move tree to depth n
  quit          leave
`

// Reply is the outcome of one command.
type Reply struct {
	Command notation.Command
	Status  engine.Status
	Text    string // command output, e.g. a FEN or a move list
}

// Play parses one line of input and runs it against the session's game.
func (m *Manager) Play(id, line string) (Reply, error) {
	s, err := m.Get(id)
	if err != nil {
		return Reply{}, err
	}
	cmd, err := notation.ParseCommand(line)
	if err != nil {
		return Reply{}, err
	}

	m.mu.RLock()
	workers := m.workers
	m.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	wasOver := s.game.Result().Over()
	reply := Reply{Command: cmd}
	if err := m.run(s, cmd, workers, &reply); err != nil {
		m.logf(config.Verbose, "game %s: %q rejected: %v", id, line, err)
		return Reply{}, err
	}
	reply.Status = s.game.Status()

	if result := s.game.Result(); result.Over() && !wasOver {
		m.logf(config.Normal, "game %s: %s by %s", id, result.Status.Score(), result.Cause)
	}
	return reply, nil
}

// run executes cmd on the locked session.
func (m *Manager) run(s *Session, cmd notation.Command, workers int, reply *Reply) error {
	g := s.game

	switch cmd.Kind {
	case notation.Move:
		if err := g.AttemptMove(cmd.From, cmd.To, cmd.Promotion); err != nil {
			return err
		}
		s.updated = time.Now()
		history := g.History()
		m.logf(config.Verbose, "game %s: ply %d %s", s.ID, g.Ply(), history[len(history)-1])

	case notation.Resign:
		if err := g.Resign(g.ToMove()); err != nil {
			return err
		}
		s.updated = time.Now()

	case notation.OfferDraw:
		if err := g.AgreeDraw(); err != nil {
			return err
		}
		s.updated = time.Now()

	case notation.Undo:
		if err := g.Undo(); err != nil {
			return err
		}
		s.updated = time.Now()
		m.logf(config.Verbose, "game %s: took back to ply %d", s.ID, g.Ply())

	case notation.ListMoves:
		moves, err := g.LegalMoves(cmd.Square)
		if err != nil {
			return err
		}
		dests := make([]string, 0, moves.Len())
		for _, mv := range moves.Moves() {
			dests = append(dests, mv.To.String())
		}
		slices.Sort(dests)
		reply.Text = strings.Join(dests, " ")

	case notation.ShowFEN:
		reply.Text = g.FEN()

	case notation.History:
		var sb strings.Builder
		for i, mv := range g.History() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(mv.UCI())
		}
		reply.Text = sb.String()

	case notation.Perft:
		counts := engine.PerftDivide(g, cmd.Depth, workers)
		keys := make([]string, 0, len(counts))
		var total int64
		for k, n := range counts {
			keys = append(keys, k)
			total += n
		}
		slices.Sort(keys)
		var sb strings.Builder
		for _, k := range keys {
			fmt.Fprintf(&sb, "%s: %d\n", k, counts[k])
		}
		fmt.Fprintf(&sb, "total: %d", total)
		reply.Text = sb.String()

	case notation.Help:
		reply.Text = HelpText

	case notation.Quit:
	}
	return nil
}

// Replay rebuilds the game described by an archive record.
func Replay(r *store.Record) (*engine.Game, error) {
	g, err := engine.NewGameFromFEN(r.StartFEN)
	if err != nil {
		return nil, errors.Wrapf(err, "replay %s", r.ID)
	}

	for i, text := range r.Moves {
		cmd, err := notation.ParseCommand(text)
		if err != nil || cmd.Kind != notation.Move {
			return nil, fmt.Errorf("replay %s: move %d %q: %w", r.ID, i+1, text, errors.ErrInvalidNotation)
		}
		if err := g.AttemptMove(cmd.From, cmd.To, cmd.Promotion); err != nil {
			return nil, errors.Wrapf(err, "replay %s: move %d", r.ID, i+1)
		}
	}

	if g.Result().Over() {
		return g, nil
	}
	switch r.Cause {
	case chess.Resignation.String():
		loser := chess.White
		if r.Result == chess.WhiteWins.Score() {
			loser = chess.Black
		}
		if err := g.Resign(loser); err != nil {
			return nil, err
		}
	case chess.AgreedDraw.String():
		if err := g.AgreeDraw(); err != nil {
			return nil, err
		}
	}
	return g, nil
}
