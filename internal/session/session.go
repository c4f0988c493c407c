// Package session keeps the games being played by one process, keyed by
// generated IDs, and archives them to a store.
package session

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/store"
)

// Archive is the storage a Manager saves games to. *store.Store satisfies it.
type Archive interface {
	Save(r *store.Record) error
	Load(id string) (*store.Record, error)
}

// Session is one game and its bookkeeping. The game is only touched under
// the session's lock.
type Session struct {
	ID      string
	Created time.Time

	mu      sync.Mutex
	game    *engine.Game
	updated time.Time
}

// View runs fn with the game locked. fn must not keep the game.
func (s *Session) View(fn func(g *engine.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// Updated returns the time of the last change to the game.
func (s *Session) Updated() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updated
}

// record builds the archive record of the session. Callers hold s.mu.
func (s *Session) record() *store.Record {
	history := s.game.History()
	moves := make([]string, len(history))
	for i, m := range history {
		moves[i] = m.UCI()
	}

	result := s.game.Result()
	r := &store.Record{
		ID:       s.ID,
		Variant:  s.game.Variant().String(),
		StartFEN: s.game.StartFEN(),
		Moves:    moves,
		FinalFEN: s.game.FEN(),
		Result:   result.Status.Score(),
		Created:  s.Created,
	}
	if result.Over() {
		r.Cause = result.Cause.String()
	}
	return r
}

// Manager holds every live session.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	archive   Archive
	logger    *log.Logger
	verbosity int
	workers   int
}

// NewManager creates a manager. archive may be nil, which disables
// archiving; logger may be nil, which discards log output.
func NewManager(archive Archive, logger *log.Logger, verbosity int) *Manager {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Manager{
		sessions:  make(map[string]*Session),
		archive:   archive,
		logger:    logger,
		verbosity: verbosity,
		workers:   1,
	}
}

// SetPerftWorkers sets the number of goroutines used by the perft command.
func (m *Manager) SetPerftWorkers(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.workers = max(n, 1)
}

func (m *Manager) logf(level int, format string, args ...interface{}) {
	if m.verbosity >= level {
		m.logger.Printf(format, args...)
	}
}

// add registers a game under id, generating an ID when id is empty.
func (m *Manager) add(id string, g *engine.Game, created time.Time) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now()
	if created.IsZero() {
		created = now
	}
	s := &Session{ID: id, Created: created, game: g, updated: now}
	m.sessions[id] = s
	return s
}

// NewGame starts a game of variant.
func (m *Manager) NewGame(variant chess.Variant, opts ...engine.Option) (*Session, error) {
	g, err := engine.NewGame(variant, opts...)
	if err != nil {
		return nil, err
	}
	s := m.add("", g, time.Time{})
	m.logf(config.Normal, "game %s: new %s game", s.ID, variant)
	return s, nil
}

// NewGameFromFEN starts a game from a FEN position.
func (m *Manager) NewGameFromFEN(fen string) (*Session, error) {
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return nil, err
	}
	s := m.add("", g, time.Time{})
	m.logf(config.Normal, "game %s: new %s game from %q", s.ID, g.Variant(), fen)
	return s, nil
}

// Get returns the session with the given ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, errors.ErrGameNotFound)
	}
	return s, nil
}

// IDs returns the IDs of every live session in sorted order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := maps.Keys(m.sessions)
	slices.Sort(ids)
	return ids
}

// Close drops a session without archiving it.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("session %s: %w", id, errors.ErrGameNotFound)
	}
	delete(m.sessions, id)
	return nil
}

// Archive saves the session's game to the archive.
func (m *Manager) Archive(id string) (*store.Record, error) {
	if m.archive == nil {
		return nil, fmt.Errorf("archiving disabled: %w", errors.ErrInvalidConfig)
	}
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	r := s.record()
	s.mu.Unlock()

	if err := m.archive.Save(r); err != nil {
		return nil, errors.Wrapf(err, "archive %s", id)
	}
	m.logf(config.Normal, "game %s: archived after %d moves, result %s", id, len(r.Moves), r.Result)
	return r, nil
}

// Restore loads an archived game and replays its moves into a live session
// with the same ID.
func (m *Manager) Restore(id string) (*Session, error) {
	if m.archive == nil {
		return nil, fmt.Errorf("archiving disabled: %w", errors.ErrInvalidConfig)
	}
	r, err := m.archive.Load(id)
	if err != nil {
		return nil, err
	}

	g, err := Replay(r)
	if err != nil {
		return nil, err
	}
	s := m.add(r.ID, g, r.Created)
	m.logf(config.Normal, "game %s: restored at move %d", id, len(r.Moves))
	return s, nil
}
