package chess

// GameStatus is the outcome of a game.
type GameStatus int

const (
	InProgress GameStatus = iota
	Draw
	WhiteWins
	BlackWins
)

// String returns the string representation of a game status.
func (s GameStatus) String() string {
	switch s {
	case Draw:
		return "Draw"
	case WhiteWins:
		return "WhiteWins"
	case BlackWins:
		return "BlackWins"
	default:
		return "InProgress"
	}
}

// Score returns the PGN-style result string ("1-0", "0-1", "1/2-1/2", "*").
func (s GameStatus) Score() string {
	switch s {
	case Draw:
		return "1/2-1/2"
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	default:
		return "*"
	}
}

// WinFor returns the status reporting a win for colour.
func WinFor(colour Colour) GameStatus {
	if colour == White {
		return WhiteWins
	}
	return BlackWins
}

// Cause records why a game ended.
type Cause int

const (
	NoCause Cause = iota
	Checkmate
	Resignation
	AgreedDraw
	InsufficientMaterial
	WhiteTimeout
	BlackTimeout
	ThreefoldRepetition
	FivefoldRepetition
	FiftyMoveRule
	SeventyFiveMoveRule
	Stalemate
)

// String returns the string representation of a cause.
func (c Cause) String() string {
	names := []string{
		"None", "Checkmate", "Resignation", "AgreedDraw", "InsufficientMaterial",
		"WhiteTimeout", "BlackTimeout", "ThreefoldRepetition", "FivefoldRepetition",
		"FiftyMoveRule", "SeventyFiveMoveRule", "Stalemate",
	}
	if int(c) >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// GameResult is the terminal result of a game. It is set at most once.
type GameResult struct {
	Status GameStatus
	Cause  Cause
}

// Over reports whether the result is terminal.
func (r GameResult) Over() bool {
	return r.Status != InProgress
}
