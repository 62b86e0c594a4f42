// Package minimax picks the computer's move by exhaustive game-tree search.
//
// The search walks every legal continuation of the board without pruning.
// Terminal positions score +1 for a computer win, -1 for a human win and 0
// for a tie. A single board buffer is shared by the whole search: every mark
// placed during exploration is removed before the placing call returns, so
// the caller's board is unchanged once Search returns.
package minimax

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// NoMove is returned when the board is full or already decided.
const NoMove = -1

const (
	scoreWin  = 1
	scoreLoss = -1
	scoreTie  = 0
)

// Result describes a finished search.
type Result struct {
	// Cell is the chosen index in [0, 8], or NoMove.
	Cell int
	// Score is the guaranteed outcome for the computer under perfect play.
	Score int
	// Nodes counts the positions visited below the root.
	Nodes int
	// MaxDepth is the deepest ply reached. It never affects scoring.
	MaxDepth int
}

// BestMove returns the optimal cell for computer, or NoMove.
// Among equally scored cells the lowest index wins.
func BestMove(board *entity.Board, computer, human entity.Mark) int {
	return Search(board, computer, human).Cell
}

// Search runs the full minimax search from board with computer to move.
// It panics if computer and human are not the two distinct player marks.
func Search(board *entity.Board, computer, human entity.Mark) Result {
	if !computer.IsPlayer() || !human.IsPlayer() || computer == human {
		panic(fmt.Sprintf("minimax: invalid marks computer=%q human=%q", string(computer), string(human)))
	}

	if entity.Evaluate(*board).IsDecided() {
		return Result{Cell: NoMove, Score: scoreTie}
	}

	s := &searcher{board: board, computer: computer, human: human}

	result := Result{Cell: NoMove, Score: math.MinInt}
	for cell := range board {
		if board[cell] != entity.EmptyCell {
			continue
		}

		board[cell] = computer
		score := s.minimax(1, false)
		board[cell] = entity.EmptyCell

		if score > result.Score {
			result.Score = score
			result.Cell = cell
		}
	}

	result.Nodes = s.nodes
	result.MaxDepth = s.maxDepth

	return result
}

type searcher struct {
	board    *entity.Board
	computer entity.Mark
	human    entity.Mark

	nodes    int
	maxDepth int
}

func (that *searcher) minimax(depth int, isMaximizing bool) int {
	that.nodes++
	if depth > that.maxDepth {
		that.maxDepth = depth
	}

	if outcome := entity.Evaluate(*that.board); outcome.IsDecided() {
		return that.score(outcome)
	}

	mark, best := that.human, math.MaxInt
	if isMaximizing {
		mark, best = that.computer, math.MinInt
	}

	for cell := range that.board {
		if that.board[cell] != entity.EmptyCell {
			continue
		}

		that.board[cell] = mark
		score := that.minimax(depth+1, !isMaximizing)
		that.board[cell] = entity.EmptyCell

		if isMaximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}

func (that *searcher) score(outcome entity.Outcome) int {
	switch outcome.Winner() {
	case that.computer:
		return scoreWin
	case that.human:
		return scoreLoss
	default:
		return scoreTie
	}
}
