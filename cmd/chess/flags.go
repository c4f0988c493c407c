// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/config"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

var (
	// Game setup
	variantName   = flag.String("variant", "classic", "Variant: classic or chess960")
	chess960Index = flag.Int("chess960-index", -1, "Chess960 starting position 0-959 (-1 = random)")
	startFEN      = flag.String("fen", "", "Start from this FEN position")
	restoreID     = flag.String("restore", "", "Resume the archived game with this ID")

	// Archive options
	storeDir    = flag.String("store", "chess-archive", "Game archive directory")
	memoryStore = flag.Bool("memory", false, "Keep the archive in memory only")
	noStore     = flag.Bool("no-store", false, "Disable the game archive")
	syncWrites  = flag.Bool("sync", false, "Sync archive writes to disk")
	listGames   = flag.Bool("list", false, "Print the archived games as JSON and exit")
	summary     = flag.Bool("summary", false, "Print archive result counts and exit")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("format", "diagram", "Position format: diagram, fen, json")
	flipBoard    = flag.Bool("flip", false, "Draw the board from Black's side")
	noCoords     = flag.Bool("nocoords", false, "Omit rank and file labels from diagrams")
	noStatus     = flag.Bool("nostatus", false, "Omit the status line after each position")
	lineLength   = flag.Int("w", 80, "Maximum line length of move lists")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", config.Normal, "Log verbosity: 0 quiet, 1 games, 2 every move")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Performance options
	workers = flag.Int("workers", 4, "Number of goroutines for perft")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyGameFlags(cfg); err != nil {
		return err
	}
	applyStoreFlags(cfg)
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}

	cfg.Workers = *workers
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Quiet
	}
	return nil
}

// applyGameFlags configures the variant and starting position.
func applyGameFlags(cfg *config.Config) error {
	variant, err := config.ParseVariant(*variantName)
	if err != nil {
		return err
	}
	cfg.Variant = variant
	cfg.Chess960Index = *chess960Index
	cfg.StartFEN = *startFEN
	return nil
}

// applyStoreFlags configures the game archive.
func applyStoreFlags(cfg *config.Config) {
	cfg.Store.Dir = *storeDir
	cfg.Store.InMemory = *memoryStore
	cfg.Store.Disabled = *noStore
	cfg.Store.SyncWrites = *syncWrites
}

// applyOutputFlags configures position output.
func applyOutputFlags(cfg *config.Config) error {
	format, ok := config.ParseOutputFormat(*outputFormat)
	if !ok {
		return fmt.Errorf("output format %q: %w", *outputFormat, chesserrors.ErrInvalidConfig)
	}
	cfg.Output.Format = format
	cfg.Output.Flipped = *flipBoard
	cfg.Output.Coordinates = !*noCoords
	cfg.Output.ShowStatus = !*noStatus
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	return nil
}
