package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/store"
)

// JSONPosition represents a game position in JSON format.
type JSONPosition struct {
	FEN      string     `json:"fen"`
	Variant  string     `json:"variant"`
	ToMove   string     `json:"toMove"`
	State    string     `json:"state"`
	Result   string     `json:"result"`
	Cause    string     `json:"cause,omitempty"`
	Checkers []string   `json:"checkers,omitempty"`
	Moves    []JSONMove `json:"moves,omitempty"`
}

// JSONMove represents one played move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
	Kind       string `json:"kind"`
	Promotion  string `json:"promotion,omitempty"`
}

// JSONArchive holds archived game records for array output.
type JSONArchive struct {
	Games []*store.Record `json:"games"`
}

// PositionToJSON converts the current position of a game to JSON format.
func PositionToJSON(g *engine.Game) *JSONPosition {
	status := g.Status()
	jp := &JSONPosition{
		FEN:     g.FEN(),
		Variant: g.Variant().String(),
		ToMove:  colorName(g.ToMove()),
		State:   status.State.String(),
		Result:  status.Result.Status.Score(),
	}
	if status.Result.Over() {
		jp.Cause = status.Result.Cause.String()
	}
	for _, c := range status.Checkers {
		jp.Checkers = append(jp.Checkers, c.Pos.String())
	}

	ply := startPly(g)
	for i, m := range g.History() {
		jm := JSONMove{
			MoveNumber: (ply+i)/2 + 1,
			Color:      colorName(chess.White),
			UCI:        m.UCI(),
			Kind:       m.Kind.String(),
		}
		if (ply+i)%2 == 1 {
			jm.Color = colorName(chess.Black)
		}
		if m.Promotion != chess.Empty {
			jm.Promotion = m.Promotion.String()
		}
		jp.Moves = append(jp.Moves, jm)
	}
	return jp
}

func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// WriteRecordsJSON writes archived games as a JSON array.
func WriteRecordsJSON(w io.Writer, records []*store.Record) error {
	if records == nil {
		records = []*store.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONArchive{Games: records})
}
