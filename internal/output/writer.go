package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// PositionWriter is the interface for writing positions to output.
// Different implementations handle different output formats.
type PositionWriter interface {
	// WritePosition writes the current position of a game.
	WritePosition(g *engine.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for the configured format.
func NewWriter(w io.Writer, cfg *config.OutputConfig) PositionWriter {
	switch cfg.Format {
	case config.FEN:
		return NewFENWriter(w, cfg)
	case config.JSON:
		return NewJSONWriterSingle(w)
	default:
		return NewDiagramWriter(w, cfg)
	}
}

// DiagramWriter draws positions as ASCII boards.
type DiagramWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewDiagramWriter creates a new diagram writer.
func NewDiagramWriter(w io.Writer, cfg *config.OutputConfig) *DiagramWriter {
	return &DiagramWriter{w: w, cfg: cfg}
}

// WritePosition draws the board, followed by the status line if enabled.
func (dw *DiagramWriter) WritePosition(g *engine.Game) error {
	opts := notation.RenderOptions{
		Coordinates: dw.cfg.Coordinates,
		Flipped:     dw.cfg.Flipped,
	}
	if _, err := io.WriteString(dw.w, notation.Render(g, opts)); err != nil {
		return err
	}
	if dw.cfg.ShowStatus {
		_, err := fmt.Fprintln(dw.w, StatusLine(g))
		return err
	}
	return nil
}

// Flush is a no-op; diagrams are written immediately.
func (dw *DiagramWriter) Flush() error {
	return nil
}

// Close closes the diagram writer.
func (dw *DiagramWriter) Close() error {
	return nil
}

// FENWriter writes one FEN line per position.
type FENWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewFENWriter creates a new FEN writer.
func NewFENWriter(w io.Writer, cfg *config.OutputConfig) *FENWriter {
	return &FENWriter{w: w, cfg: cfg}
}

// WritePosition writes the FEN of the position, with the status line
// appended after a tab when enabled.
func (fw *FENWriter) WritePosition(g *engine.Game) error {
	var err error
	if fw.cfg.ShowStatus {
		_, err = fmt.Fprintf(fw.w, "%s\t%s\n", g.FEN(), StatusLine(g))
	} else {
		_, err = fmt.Fprintln(fw.w, g.FEN())
	}
	return err
}

// Flush is a no-op for FEN output.
func (fw *FENWriter) Flush() error {
	return nil
}

// Close closes the FEN writer.
func (fw *FENWriter) Close() error {
	return nil
}

// JSONWriter writes positions in JSON format.
// It buffers positions and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	positions []*JSONPosition
	single    bool // If true, write each position immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches positions into an array.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each position immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WritePosition snapshots the position; later moves do not change what is
// written.
func (jw *JSONWriter) WritePosition(g *engine.Game) error {
	jp := PositionToJSON(g)
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(jp)
	}
	jw.positions = append(jw.positions, jp)
	return nil
}

// Flush writes all buffered positions as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.positions) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(jw.positions)

	jw.positions = jw.positions[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
