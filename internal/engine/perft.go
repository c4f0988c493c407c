package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// promotionPieces are the four promotion choices, in UCI letter order q r b n.
var promotionPieces = [4]chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// Perft counts the leaf nodes of the legal move tree of the given depth from
// the current position. Each promotion counts once per promotion piece. Game
// results such as insufficient material do not stop the walk. The game is
// left as it was.
func Perft(g *Game, depth int) int64 {
	if depth <= 0 {
		return 1
	}

	var nodes int64
	for _, src := range g.board.Pieces(g.toMove) {
		legal := g.legalFrom(src)
		for i := 0; i < legal.Len(); i++ {
			m := legal.At(i)
			if depth == 1 {
				if m.Kind.IsPromotion() {
					nodes += int64(len(promotionPieces))
				} else {
					nodes++
				}
				continue
			}
			for _, promo := range choicesFor(m) {
				g.playLegal(src, m, promo)
				nodes += Perft(g, depth-1)
				if err := g.Undo(); err != nil {
					panic(fmt.Sprintf("engine: perft undo: %v", err))
				}
			}
		}
	}
	return nodes
}

// choicesFor returns the promotion choices to expand m into.
func choicesFor(m chess.Move) []chess.PieceType {
	if m.Kind.IsPromotion() {
		return promotionPieces[:]
	}
	return []chess.PieceType{chess.Empty}
}

// playLegal commits a move already known to be legal.
func (g *Game) playLegal(src chess.Position, m chess.Move, promo chess.PieceType) {
	piece := g.board.At(src)
	u, err := g.validate(src, m)
	if err != nil {
		panic(fmt.Sprintf("engine: legal move %s%s rejected: %v", src, m.To, err))
	}
	g.commit(piece, src, m, u, promo)
}

// divideTask is one root move handed to a perft worker.
type divideTask struct {
	game *Game
	uci  string
}

// PerftDivide runs Perft to depth-1 below every root move and returns the
// counts keyed by UCI move. Root moves are spread over workers goroutines,
// each on its own copy of the game.
func PerftDivide(g *Game, depth, workers int) map[string]int64 {
	counts := make(map[string]int64)
	if depth <= 0 {
		return counts
	}

	var tasks []divideTask
	for _, src := range g.board.Pieces(g.toMove) {
		legal := g.legalFrom(src)
		for i := 0; i < legal.Len(); i++ {
			m := legal.At(i)
			for _, promo := range choicesFor(m) {
				child := g.Clone()
				child.playLegal(src, m, promo)
				record := MoveRecord{From: src, To: m.To, Kind: m.Kind, Promotion: promo}
				tasks = append(tasks, divideTask{game: child, uci: record.UCI()})
			}
		}
	}

	pool := worker.NewPoolWithOptions(func(item worker.WorkItem[divideTask]) worker.ProcessResult[int64] {
		return worker.ProcessResult[int64]{Value: Perft(item.Task.game, depth-1), Index: item.Index}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(tasks)+1))
	pool.Start()

	go func() {
		for i, task := range tasks {
			pool.Submit(worker.WorkItem[divideTask]{Task: task, Index: i})
		}
		pool.Close()
	}()

	for result := range pool.Results() {
		counts[tasks[result.Index].uci] = result.Value
	}
	return counts
}
