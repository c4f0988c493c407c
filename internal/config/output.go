package config

// OutputFormat selects how positions are printed.
type OutputFormat int

const (
	Diagram OutputFormat = iota // ASCII board diagram
	FEN                         // one FEN line per position
	JSON                        // one JSON object per position
)

// String returns the flag name of the format.
func (f OutputFormat) String() string {
	switch f {
	case FEN:
		return "fen"
	case JSON:
		return "json"
	default:
		return "diagram"
	}
}

// ParseOutputFormat returns the format with the given flag name.
func ParseOutputFormat(name string) (OutputFormat, bool) {
	for _, f := range []OutputFormat{Diagram, FEN, JSON} {
		if f.String() == name {
			return f, true
		}
	}
	return Diagram, false
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies how positions are printed
	Format OutputFormat

	// Coordinates adds file letters and rank numbers around the diagram
	Coordinates bool

	// Flipped draws the board from Black's side
	Flipped bool

	// ShowStatus prints check, mate and result lines after each position
	ShowStatus bool

	// MaxLineLength wraps move lists; 0 means 80
	MaxLineLength uint
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        Diagram,
		Coordinates:   true,
		ShowStatus:    true,
		MaxLineLength: 80,
	}
}
