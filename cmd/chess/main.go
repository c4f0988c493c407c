// chess is an interactive rules engine: it plays a two-player game from the
// terminal, validating every move, and archives finished games.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/session"
	"github.com/lgbarn/chessrules-go/internal/store"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fatalf("Error: %v\n", err)
	}
	if err := cfg.Validate(); err != nil {
		fatalf("Error: %v\n", err)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)
	logger := log.New(cfg.LogFile, "chess: ", log.LstdFlags)

	archive, err := openArchive(cfg)
	if err != nil {
		fatalf("Error opening archive %s: %v\n", cfg.Store.Dir, err)
	}
	defer closeArchive(archive, logger)

	switch {
	case *listGames:
		err = listArchive(cfg.OutputFile, archive)
	case *summary:
		err = summarizeArchive(cfg.OutputFile, archive)
	default:
		err = play(os.Stdin, cfg, archive, logger)
	}
	if err != nil {
		logger.Print(err)
		closeArchive(archive, logger)
		os.Exit(1)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fatalf("Error opening log file %s: %v\n", *logFile, err)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fatalf("Error creating output file %s: %v\n", *outputFile, err)
	}
	cfg.SetOutput(file)
}

// openArchive opens the configured game archive, or returns nil when
// archiving is disabled.
func openArchive(cfg *config.Config) (*store.Store, error) {
	if cfg.Store.Disabled {
		return nil, nil
	}
	return store.Open(store.Options{
		Dir:        cfg.Store.Dir,
		InMemory:   cfg.Store.InMemory,
		SyncWrites: cfg.Store.SyncWrites,
	})
}

func closeArchive(archive *store.Store, logger *log.Logger) {
	if archive == nil {
		return
	}
	if err := archive.Close(); err != nil {
		logger.Printf("closing archive: %v", err)
	}
}

// newManager builds the session manager. A nil store disables archiving.
func newManager(cfg *config.Config, archive *store.Store, logger *log.Logger) *session.Manager {
	var a session.Archive
	if archive != nil {
		a = archive
	}
	m := session.NewManager(a, logger, cfg.Verbosity)
	m.SetPerftWorkers(cfg.Workers)
	return m
}

// startSession opens the game the flags ask for.
func startSession(m *session.Manager, cfg *config.Config) (*session.Session, error) {
	switch {
	case *restoreID != "":
		return m.Restore(*restoreID)
	case cfg.StartFEN != "":
		return m.NewGameFromFEN(cfg.StartFEN)
	default:
		return m.NewGame(cfg.Variant, engine.WithChess960Index(cfg.Chess960Index))
	}
}

// play runs an interactive game on in until quit or end of input.
func play(in io.Reader, cfg *config.Config, archive *store.Store, logger *log.Logger) error {
	m := newManager(cfg, archive, logger)
	s, err := startSession(m, cfg)
	if err != nil {
		return err
	}
	r := newREPL(m, s, cfg, archive != nil)
	return r.run(in)
}

// listArchive prints every archived game.
func listArchive(w io.Writer, archive *store.Store) error {
	if archive == nil {
		return fmt.Errorf("-list needs an archive")
	}
	records, err := archive.List()
	if err != nil {
		return err
	}
	return output.WriteRecordsJSON(w, records)
}

// summarizeArchive prints result counts over the archive.
func summarizeArchive(w io.Writer, archive *store.Store) error {
	if archive == nil {
		return fmt.Errorf("-summary needs an archive")
	}
	sum, err := archive.Summarize()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d game(s): %d white win(s), %d black win(s), %d draw(s), %d unfinished.\n",
		sum.Games, sum.WhiteWins, sum.BlackWins, sum.Draws, sum.Unfinished)
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play a game of chess from the terminal with full rules checking.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\n%s", session.HelpText)
	fmt.Fprintf(os.Stderr, "  save          archive the game now\n")
}
