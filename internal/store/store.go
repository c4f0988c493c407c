// Package store archives finished and suspended games in BadgerDB.
package store

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// keyPrefix namespaces game records.
const keyPrefix = "game/"

// Record is one archived game: where it started, the moves played in UCI
// form and how it stands.
type Record struct {
	ID       string    `json:"id"`
	Variant  string    `json:"variant"`
	StartFEN string    `json:"start_fen"`
	Moves    []string  `json:"moves"`
	FinalFEN string    `json:"final_fen"`
	Result   string    `json:"result"` // "1-0", "0-1", "1/2-1/2" or "*"
	Cause    string    `json:"cause,omitempty"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
}

// Finished reports whether the game has a result.
func (r *Record) Finished() bool {
	return r.Result != "" && r.Result != "*"
}

// Options configures Open.
type Options struct {
	Dir        string
	InMemory   bool
	SyncWrites bool
}

// Store wraps BadgerDB for the game archive.
type Store struct {
	db *badger.DB
}

// Open opens the archive described by opts.
func Open(opts Options) (*Store, error) {
	bopts := badger.DefaultOptions(opts.Dir)
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	}
	bopts = bopts.WithSyncWrites(opts.SyncWrites)
	bopts.Logger = nil // Disable logging

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, errors.Wrap(err, "open archive")
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func key(id string) []byte {
	return []byte(keyPrefix + id)
}

// Save writes r, replacing any record with the same ID. Updated is set to
// the current time and Created on first save.
func (s *Store) Save(r *Record) error {
	if r.ID == "" {
		return fmt.Errorf("record without id: %w", errors.ErrInvalidConfig)
	}
	r.Updated = time.Now().UTC()
	if r.Created.IsZero() {
		r.Created = r.Updated
	}

	data, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(r.ID), data)
	})
}

// Load reads the record with the given ID.
func (s *Store) Load(id string) (*Record, error) {
	var r Record

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("archive %s: %w", id, errors.ErrGameNotFound)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &r)
		})
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// List returns every archived record in ID order.
func (s *Store) List() ([]*Record, error) {
	var records []*Record

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var r Record
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			}); err != nil {
				return err
			}
			records = append(records, &r)
		}
		return nil
	})

	return records, err
}

// Delete removes the record with the given ID.
func (s *Store) Delete(id string) error {
	if _, err := s.Load(id); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key(id))
	})
}

// Summary counts archived games by outcome.
type Summary struct {
	Games      int
	WhiteWins  int
	BlackWins  int
	Draws      int
	Unfinished int
}

// Summarize tallies every record in the archive.
func (s *Store) Summarize() (Summary, error) {
	records, err := s.List()
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	for _, r := range records {
		sum.Games++
		switch r.Result {
		case "1-0":
			sum.WhiteWins++
		case "0-1":
			sum.BlackWins++
		case "1/2-1/2":
			sum.Draws++
		default:
			sum.Unfinished++
		}
	}
	return sum, nil
}
