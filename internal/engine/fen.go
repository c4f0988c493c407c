package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenError builds an ErrInvalidFEN parse error.
func fenError(fen, expected, got string) error {
	return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Expected: expected, Got: got}
}

// NewGameFromFEN sets up a game from a FEN string. Castling fields may use
// KQkq, which names the outermost rook on each wing, or Shredder file letters.
// Shredder letters or non-classic king and rook files make the game Chess960.
// The halfmove clock and fullmove number are optional.
func NewGameFromFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fenError(fen, "at least 4 fields", strconv.Itoa(len(parts)))
	}

	g := &Game{variant: chess.Classic}
	g.board.Reset()
	if err := parsePiecePositions(g, fen, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		g.toMove = chess.White
	case "b":
		g.toMove = chess.Black
	default:
		return nil, fenError(fen, "side w or b", strconv.Quote(parts[1]))
	}

	g.halfmove, g.fullmove = 0, 1
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return nil, fenError(fen, "halfmove clock", strconv.Quote(parts[4]))
		}
		g.halfmove = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 0 {
			return nil, fenError(fen, "fullmove number", strconv.Quote(parts[5]))
		}
		g.fullmove = max(n, 1)
	}
	g.ply = 2 * (g.fullmove - 1)
	if g.toMove == chess.Black {
		g.ply++
	}

	if err := parseCastlingRights(g, fen, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(g, fen, parts[3]); err != nil {
		return nil, err
	}
	if err := checkPlayable(g, fen); err != nil {
		return nil, err
	}

	g.status = g.resolve()
	g.decide()
	g.startFEN = g.FEN()
	return g, nil
}

// parsePiecePositions parses the piece placement field.
func parsePiecePositions(g *Game, fen, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		return fenError(fen, "8 ranks", strconv.Itoa(len(rows)))
	}

	for i, row := range rows {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pieceType := chess.PieceTypeFromLetter(c)
			if pieceType == chess.Empty {
				return fenError(fen, "piece letter", strconv.QuoteRune(rune(c)))
			}
			if file >= chess.BoardSize {
				return fenError(fen, "8 files", "rank "+strconv.Itoa(rank+1)+" too long")
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			if pieceType == chess.Pawn && (rank == 0 || rank == chess.BoardSize-1) {
				return fenError(fen, "no pawn on a back rank", chess.Pos(file, rank).String())
			}
			pos := chess.Pos(file, rank)
			g.board.Place(pos, chess.NewPiece(colour, pieceType, pos))
			file++
		}
		if file != chess.BoardSize {
			return fenError(fen, "8 files", "rank "+strconv.Itoa(rank+1)+" with "+strconv.Itoa(file))
		}
	}

	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		kings := 0
		for _, pos := range g.board.Pieces(colour) {
			if g.board.At(pos).Type == chess.King {
				kings++
			}
		}
		if kings != 1 {
			return fenError(fen, "one "+colour.String()+" king", strconv.Itoa(kings))
		}
	}
	return nil
}

// parseCastlingRights parses the castling field and records the castling
// origins it implies.
func parseCastlingRights(g *Game, fen, field string) error {
	g.origins = [2]chess.CastlingOrigins{chess.ClassicOrigins(), chess.ClassicOrigins()}
	if field == "-" {
		return nil
	}

	shredder := false
	for i := 0; i < len(field); i++ {
		c := field[i]
		colour := chess.White
		if c >= 'a' && c <= 'z' {
			colour = chess.Black
		}
		home := chess.HomeRank(colour)
		king := g.king(colour)
		if king.Rank != home {
			return fenError(fen, colour.String()+" king on its back rank", string(c))
		}
		g.origins[colour].KingFile = king.File

		var rookFile int
		switch c {
		case 'K', 'k':
			rookFile = outermostRook(g, colour, king, 1)
		case 'Q', 'q':
			rookFile = outermostRook(g, colour, king, -1)
		default:
			lower := c | 0x20
			if lower < 'a' || lower > 'h' {
				return fenError(fen, "castling flag", strconv.QuoteRune(rune(c)))
			}
			rookFile = int(lower - 'a')
			shredder = true
		}

		if rookFile < 0 || rookFile == king.File {
			return fenError(fen, "castling rook", string(c))
		}
		if rook := g.board.At(chess.Pos(rookFile, home)); rook.Type != chess.Rook || rook.Colour != colour {
			return fenError(fen, "castling rook", string(c))
		}
		if rookFile > king.File {
			g.origins[colour].KingRookFile = rookFile
			setRight(&g.rights, colour, chess.KingSide)
		} else {
			g.origins[colour].QueenRookFile = rookFile
			setRight(&g.rights, colour, chess.QueenSide)
		}
	}

	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		if g.origins[colour] != chess.ClassicOrigins() {
			shredder = true
		}
	}
	if shredder {
		g.variant = chess.Chess960
	}

	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		if !g.rights.Has(colour, chess.KingSide) {
			g.origins[colour].KingRookFile = chess.ClassicOrigins().KingRookFile
		}
		if !g.rights.Has(colour, chess.QueenSide) {
			g.origins[colour].QueenRookFile = chess.ClassicOrigins().QueenRookFile
		}
	}
	return nil
}

// setRight grants a castling right while loading a position.
func setRight(r *chess.CastlingRights, colour chess.Colour, wing chess.Wing) {
	switch {
	case colour == chess.White && wing == chess.KingSide:
		r.WhiteKingSide = true
	case colour == chess.White:
		r.WhiteQueenSide = true
	case wing == chess.KingSide:
		r.BlackKingSide = true
	default:
		r.BlackQueenSide = true
	}
}

// outermostRook returns the file of colour's rook furthest from the king in
// direction dir on the home rank, or -1.
func outermostRook(g *Game, colour chess.Colour, king chess.Position, dir int) int {
	found := -1
	for sq := king.Offset(dir, 0); sq.Valid(); sq = sq.Offset(dir, 0) {
		p := g.board.At(sq)
		if p.Type == chess.Rook && p.Colour == colour {
			found = sq.File
		}
	}
	return found
}

// parseEnPassant parses the en-passant field. A target is kept only when the
// pawn that just made the double step stands in front of it.
func parseEnPassant(g *Game, fen, field string) error {
	g.ep = noEnPassant()
	if field == "-" {
		return nil
	}

	target, ok := chess.ParseSquare(field)
	if !ok {
		return fenError(fen, "en-passant square", strconv.Quote(field))
	}
	mover := g.toMove.Opposite()
	if target.Rank != pawnStartRank(mover)+chess.ColourOffset(mover) {
		return fenError(fen, "en-passant square on rank 3 or 6", field)
	}

	pushed := g.board.At(target.Offset(0, chess.ColourOffset(mover)))
	if pushed.Type == chess.Pawn && pushed.Colour == mover && !g.board.IsOccupied(target) {
		g.ep = chess.EnPassantWindow{Target: target, Ply: g.ply - 1}
	}
	return nil
}

// checkPlayable rejects positions that cannot arise in play: the side not on
// move in check, or more checkers than any legal move can produce.
func checkPlayable(g *Game, fen string) error {
	if g.kingAttacked(g.toMove.Opposite()) {
		return fenError(fen, "side not on move out of check", g.toMove.Opposite().String()+" in check")
	}
	if checkers, overflow := g.checkers(g.toMove); overflow {
		return fenError(fen, fmt.Sprintf("at most %d checkers", chess.MaxCheckers), strconv.Itoa(checkers.Len()+1)+" or more")
	}
	return nil
}

// FEN returns the position as a FEN string. Chess960 games use Shredder
// castling letters.
func (g *Game) FEN() string {
	var sb strings.Builder

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			p := g.board.At(chess.Pos(file, rank))
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if g.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	g.writeCastlingRights(&sb)

	sb.WriteByte(' ')
	if target, ok := g.EnPassant(); ok {
		sb.WriteString(target.String())
	} else {
		sb.WriteByte('-')
	}

	fmt.Fprintf(&sb, " %d %d", g.halfmove, g.fullmove)
	return sb.String()
}

// writeCastlingRights writes KQkq, or rook file letters for Chess960.
func (g *Game) writeCastlingRights(sb *strings.Builder) {
	if !g.rights.Any() {
		sb.WriteByte('-')
		return
	}
	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		for _, wing := range [2]chess.Wing{chess.KingSide, chess.QueenSide} {
			if !g.rights.Has(colour, wing) {
				continue
			}
			var c byte
			switch {
			case g.variant == chess.Chess960:
				c = byte('A' + g.origins[colour].RookFile(wing))
			case wing == chess.KingSide:
				c = 'K'
			default:
				c = 'Q'
			}
			if colour == chess.Black {
				c += 'a' - 'A'
			}
			sb.WriteByte(c)
		}
	}
}
