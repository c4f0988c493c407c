package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// StoreConfig holds settings for the game archive.
type StoreConfig struct {
	// Dir is the directory of the on-disk archive
	Dir string

	// InMemory keeps the archive in memory; Dir is ignored
	InMemory bool

	// SyncWrites flushes every write to disk before returning
	SyncWrites bool

	// Disabled turns archiving off
	Disabled bool
}

// NewStoreConfig creates a StoreConfig with default values.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{
		Dir: "chess-archive",
	}
}

// Validate checks that the store configuration is valid.
func (s *StoreConfig) Validate() error {
	if !s.Disabled && !s.InMemory && s.Dir == "" {
		return fmt.Errorf("archive directory required for an on-disk store: %w", errors.ErrInvalidConfig)
	}
	return nil
}
