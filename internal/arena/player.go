package arena

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

const (
	OpponentRandom  = "random"
	OpponentMinimax = "minimax"
)

// Player - picks a cell for mark on board. The board is a copy owned by the player.
type Player interface {
	Play(ctx context.Context, board entity.Board, mark entity.Mark) (int, error)
}

// MinimaxPlayer - plays the perfect move found by exhaustive search.
type MinimaxPlayer struct{}

func (MinimaxPlayer) Play(ctx context.Context, board entity.Board, mark entity.Mark) (int, error) {
	if err := ctx.Err(); err != nil {
		return minimax.NoMove, err
	}

	cell := minimax.BestMove(&board, mark, mark.Opponent())
	if cell == minimax.NoMove {
		return cell, apperror.ErrNoAvailableMoves
	}

	return cell, nil
}

// RandomPlayer - plays a uniformly random empty cell.
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (that *RandomPlayer) Play(ctx context.Context, board entity.Board, _ entity.Mark) (int, error) {
	if err := ctx.Err(); err != nil {
		return minimax.NoMove, err
	}

	cells := board.EmptyCells()
	if len(cells) == 0 {
		return minimax.NoMove, apperror.ErrNoAvailableMoves
	}

	return cells[that.rng.IntN(len(cells))], nil
}

// NewOpponent - returns a factory building the opponent for a game. Random
// opponents are seeded from seed and the game number so runs are reproducible.
func NewOpponent(name string, seed uint64) (func(game int) Player, error) {
	switch name {
	case OpponentRandom:
		return func(game int) Player {
			return NewRandomPlayer(seed + uint64(game))
		}, nil
	case OpponentMinimax:
		return func(int) Player {
			return MinimaxPlayer{}
		}, nil
	default:
		return nil, fmt.Errorf("unknown opponent %q", name)
	}
}
