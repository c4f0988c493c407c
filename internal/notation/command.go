// Package notation parses the text commands typed at the board and renders
// positions as text.
package notation

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// CommandKind identifies a parsed command.
type CommandKind int

const (
	Move CommandKind = iota
	Resign
	OfferDraw
	Undo
	ListMoves
	ShowFEN
	Quit
	Perft
	History
	Help
)

// String returns the keyword of the command.
func (k CommandKind) String() string {
	names := []string{"move", "res", "draw", "undo", "moves", "fen", "quit", "perft", "history", "help"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Command is one line of user input.
type Command struct {
	Kind CommandKind

	// Move: source, destination and promotion piece (Empty when none given)
	From      chess.Position
	To        chess.Position
	Promotion chess.PieceType

	// ListMoves: the square whose moves are listed
	Square chess.Position

	// Perft: the depth
	Depth int
}

// keywords maps command words to kinds.
var keywords = map[string]CommandKind{
	"res":     Resign,
	"resign":  Resign,
	"draw":    OfferDraw,
	"undo":    Undo,
	"moves":   ListMoves,
	"fen":     ShowFEN,
	"quit":    Quit,
	"exit":    Quit,
	"perft":   Perft,
	"history": History,
	"help":    Help,
	"?":       Help,
}

func parseError(input, expected, got string) error {
	return &errors.ParseError{Err: errors.ErrInvalidNotation, Input: input, Expected: expected, Got: got}
}

// ParseCommand parses one line of input. Moves are written as source and
// destination squares with an optional promotion letter, e.g. "e2e4" or
// "e7e8q"; a '-', 'x' or ':' between the squares is allowed.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return Command{}, parseError(line, "a command", "empty line")
	}

	word := strings.ToLower(fields[0])
	kind, ok := keywords[word]
	if !ok {
		if len(fields) != 1 {
			return Command{}, parseError(line, "one move", strconv.Itoa(len(fields))+" words")
		}
		return parseMove(line, fields[0])
	}

	cmd := Command{Kind: kind}
	switch kind {
	case ListMoves:
		if len(fields) != 2 {
			return Command{}, parseError(line, "moves <square>", strings.Join(fields[1:], " "))
		}
		sq, ok := chess.ParseSquare(strings.ToLower(fields[1]))
		if !ok {
			return Command{}, parseError(line, "a square", strconv.Quote(fields[1]))
		}
		cmd.Square = sq

	case Perft:
		if len(fields) != 2 {
			return Command{}, parseError(line, "perft <depth>", strings.Join(fields[1:], " "))
		}
		depth, err := strconv.Atoi(fields[1])
		if err != nil || depth < 1 {
			return Command{}, parseError(line, "a positive depth", strconv.Quote(fields[1]))
		}
		cmd.Depth = depth

	default:
		if len(fields) != 1 {
			return Command{}, parseError(line, word+" without arguments", strings.Join(fields[1:], " "))
		}
	}
	return cmd, nil
}

// isSeparator returns true if c may stand between the two squares of a move.
func isSeparator(c byte) bool {
	return c == '-' || c == 'x' || c == 'X' || c == ':'
}

// parseMove decodes "e2e4", "e2-e4", "e7e8q" and "e7xd8=N" style moves.
func parseMove(line, text string) (Command, error) {
	s := strings.ToLower(text)
	if len(s) > 2 && isSeparator(s[2]) {
		s = s[:2] + s[3:]
	}
	if len(s) == 6 && s[4] == '=' {
		s = s[:4] + s[5:]
	}
	if len(s) != 4 && len(s) != 5 {
		return Command{}, parseError(line, "a move like e2e4 or e7e8q", strconv.Quote(text))
	}

	from, ok := chess.ParseSquare(s[:2])
	if !ok {
		return Command{}, parseError(line, "a source square", strconv.Quote(s[:2]))
	}
	to, ok := chess.ParseSquare(s[2:4])
	if !ok {
		return Command{}, parseError(line, "a destination square", strconv.Quote(s[2:4]))
	}

	cmd := Command{Kind: Move, From: from, To: to, Promotion: chess.Empty}
	if len(s) == 5 {
		cmd.Promotion = chess.PieceTypeFromLetter(s[4])
		switch cmd.Promotion {
		case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		default:
			return Command{}, parseError(line, "promotion piece q, r, b or n", strconv.Quote(s[4:]))
		}
	}
	return cmd, nil
}
