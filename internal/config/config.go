// Package config provides configuration for the chess command and its
// collaborators.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Verbosity levels for session logging.
const (
	Quiet   = 0 // no session logging
	Normal  = 1 // game creation, archival and results
	Verbose = 2 // every move as well
)

// Config holds all program configuration.
type Config struct {
	// Game setup
	Variant       chess.Variant
	Chess960Index int // -1 draws an arrangement at random
	StartFEN      string

	// Perft
	Workers int

	Verbosity int // 0=nothing, 1=lifecycle, 2=every move

	Store  *StoreConfig
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Variant:       chess.Classic,
		Chess960Index: -1,
		Workers:       4,
		Verbosity:     Normal,
		Store:         NewStoreConfig(),
		Output:        NewOutputConfig(),
		OutputFile:    os.Stdout,
		LogFile:       os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks that the configuration can be used to start a game.
func (c *Config) Validate() error {
	if !c.Variant.Playable() {
		return fmt.Errorf("variant %s: %w", c.Variant, errors.ErrInvalidConfig)
	}
	if c.Chess960Index >= 960 {
		return fmt.Errorf("chess960 index %d out of range: %w", c.Chess960Index, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers (%d) must be positive: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Verbosity < Quiet || c.Verbosity > Verbose {
		return fmt.Errorf("verbosity (%d) must be 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	return nil
}

// ParseVariant converts a variant name, e.g. "chess960", into a Variant.
// Names are matched case-insensitively.
func ParseVariant(name string) (chess.Variant, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for v := chess.Classic; v <= chess.KingOfTheHill; v++ {
		if v.String() == want {
			return v, nil
		}
	}
	if want == "standard" {
		return chess.Classic, nil
	}
	return chess.Classic, fmt.Errorf("unknown variant %q: %w", name, errors.ErrInvalidConfig)
}
