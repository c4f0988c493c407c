package config

import (
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVariant sets the variant of new games.
func (b *ConfigBuilder) WithVariant(v chess.Variant) *ConfigBuilder {
	b.cfg.Variant = v
	return b
}

// WithChess960Index fixes the Chess960 arrangement.
func (b *ConfigBuilder) WithChess960Index(n int) *ConfigBuilder {
	b.cfg.Chess960Index = n
	return b
}

// WithStartFEN starts games from a FEN position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithStoreDir sets the archive directory.
func (b *ConfigBuilder) WithStoreDir(dir string) *ConfigBuilder {
	b.cfg.Store.Dir = dir
	return b
}

// WithInMemoryStore keeps the archive in memory.
func (b *ConfigBuilder) WithInMemoryStore(enabled bool) *ConfigBuilder {
	b.cfg.Store.InMemory = enabled
	return b
}

// WithoutStore disables archiving.
func (b *ConfigBuilder) WithoutStore() *ConfigBuilder {
	b.cfg.Store.Disabled = true
	return b
}

// WithOutputFormat sets the position output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithFlippedBoard draws diagrams from Black's side.
func (b *ConfigBuilder) WithFlippedBoard(flipped bool) *ConfigBuilder {
	b.cfg.Output.Flipped = flipped
	return b
}

// WithCoordinates controls the diagram coordinates.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Output.Coordinates = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
