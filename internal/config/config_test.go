package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// TestConfig_Defaults verifies Config has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Variant != chess.Classic {
		t.Errorf("Variant = %v, want classic", cfg.Variant)
	}
	if cfg.Chess960Index != -1 {
		t.Errorf("Chess960Index = %d, want -1", cfg.Chess960Index)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.Verbosity != Normal {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Normal)
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("output streams should default to stdout and stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != Diagram {
		t.Errorf("Format = %v, want %v", cfg.Format, Diagram)
	}
	if !cfg.Coordinates {
		t.Error("Coordinates should be true by default")
	}
	if cfg.Flipped {
		t.Error("Flipped should be false by default")
	}
	if !cfg.ShowStatus {
		t.Error("ShowStatus should be true by default")
	}
	if cfg.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.MaxLineLength)
	}
	if FEN.String() != "fen" || Diagram.String() != "diagram" || JSON.String() != "json" {
		t.Errorf("format names = %s, %s, %s", FEN, Diagram, JSON)
	}
}

// TestParseOutputFormat verifies format names round trip
func TestParseOutputFormat(t *testing.T) {
	for _, f := range []OutputFormat{Diagram, FEN, JSON} {
		got, ok := ParseOutputFormat(f.String())
		if !ok || got != f {
			t.Errorf("ParseOutputFormat(%q) = %v, %v", f.String(), got, ok)
		}
	}
	if _, ok := ParseOutputFormat("pgn"); ok {
		t.Error("ParseOutputFormat accepted pgn")
	}
}

// TestStoreConfig_Validate verifies store config validation
func TestStoreConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StoreConfig
		wantErr bool
	}{
		{
			name:    "directory store",
			cfg:     StoreConfig{Dir: "/tmp/archive"},
			wantErr: false,
		},
		{
			name:    "in-memory store needs no directory",
			cfg:     StoreConfig{InMemory: true},
			wantErr: false,
		},
		{
			name:    "disabled store needs no directory",
			cfg:     StoreConfig{Disabled: true},
			wantErr: false,
		},
		{
			name:    "on-disk store without directory",
			cfg:     StoreConfig{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_Validate verifies whole-config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"chess960 with index", func(c *Config) { c.Variant = chess.Chess960; c.Chess960Index = 518 }, false},
		{"unplayable variant", func(c *Config) { c.Variant = chess.Crazyhouse }, true},
		{"index too large", func(c *Config) { c.Chess960Index = 960 }, true},
		{"no workers", func(c *Config) { c.Workers = 0 }, true},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }, true},
		{"bad store", func(c *Config) { c.Store.Dir = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestParseVariant verifies variant names
func TestParseVariant(t *testing.T) {
	tests := []struct {
		input   string
		want    chess.Variant
		wantErr bool
	}{
		{"classic", chess.Classic, false},
		{"standard", chess.Classic, false},
		{"Chess960", chess.Chess960, false},
		{" crazyhouse ", chess.Crazyhouse, false},
		{"king-of-the-hill", chess.KingOfTheHill, false},
		{"shogi", chess.Classic, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVariant(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVariant(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseVariant(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	cfg := NewConfigBuilder().
		WithVariant(chess.Chess960).
		WithChess960Index(42).
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithWorkers(8).
		WithStoreDir("/var/lib/chess").
		WithInMemoryStore(true).
		WithOutputFormat(FEN).
		WithFlippedBoard(true).
		WithCoordinates(false).
		WithOutput(out).
		WithLog(logs).
		WithVerbosity(Verbose).
		Build()

	if cfg.Variant != chess.Chess960 || cfg.Chess960Index != 42 {
		t.Errorf("variant = %v/%d, want chess960/42", cfg.Variant, cfg.Chess960Index)
	}
	if cfg.StartFEN == "" {
		t.Error("StartFEN not set")
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if cfg.Store.Dir != "/var/lib/chess" || !cfg.Store.InMemory {
		t.Errorf("Store = %+v", cfg.Store)
	}
	if cfg.Output.Format != FEN || !cfg.Output.Flipped || cfg.Output.Coordinates {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.OutputFile != out || cfg.LogFile != logs {
		t.Error("streams not set")
	}
	if cfg.Verbosity != Verbose {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Verbose)
	}

	if !NewConfigBuilder().WithoutStore().Build().Store.Disabled {
		t.Error("WithoutStore did not disable the archive")
	}
}
