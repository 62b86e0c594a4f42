package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
)

var errSomeError = errors.New("some error")

type mockBotService struct {
	mock.Mock
}

func (that *mockBotService) MakeTurn(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

// playCell makes the mocked bot place its mark on cell.
func playCell(cell int) func(mock.Arguments) {
	return func(args mock.Arguments) {
		game := args.Get(1).(*entity.Game)
		if err := tictactoe.MakeTurn(game, game.Computer, cell); err != nil {
			panic(err)
		}
	}
}

func TestGameManager_StartGame(t *testing.T) {
	t.Run("Single player starts with the human as X", func(t *testing.T) {
		ctx, st := suite.New(t)
		bot := &mockBotService{}
		manager := NewGameManager(st.Logger, bot, entity.PlayerO, 0)

		// When: starting single player mode
		game, err := manager.StartGame(ctx, entity.SinglePlayerMode)

		// Then: a new round starts with an ID and the human to move
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.True(t, game.IsInProgress())
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.Equal(t, entity.PlayerO, game.Computer)
		assert.False(t, game.IsComputerTurn())
	})

	t.Run("Unknown mode keeps mode selection", func(t *testing.T) {
		ctx, st := suite.New(t)
		manager := NewGameManager(st.Logger, &mockBotService{}, entity.PlayerO, 0)

		game, err := manager.StartGame(ctx, "three")

		require.ErrorIs(t, err, apperror.ErrInvalidMode)
		assert.True(t, game.IsModeSelection())
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	t.Run("Human move then computer reply", func(t *testing.T) {
		// Given: a single player game and a bot that answers in the center
		ctx, st := suite.New(t)
		bot := &mockBotService{}
		manager := NewGameManager(st.Logger, bot, entity.PlayerO, 0)
		_, err := manager.StartGame(ctx, entity.SinglePlayerMode)
		require.NoError(t, err)

		bot.On("MakeTurn", mock.Anything, mock.AnythingOfType("*entity.Game")).
			Run(playCell(4)).
			Return(nil).
			Once()

		// When: the human plays a corner
		game, err := manager.MakeTurn(ctx, 0)
		require.NoError(t, err)

		// Then: the computer is to move
		assert.True(t, game.IsComputerTurn())

		// When: the computer plays
		game, err = manager.ComputerTurn(ctx)

		// Then: both marks are on the board and the human is to move again
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, game.Board[0])
		assert.Equal(t, entity.PlayerO, game.Board[4])
		assert.Equal(t, entity.PlayerX, game.Turn)
		bot.AssertExpectations(t)
	})

	t.Run("Human cannot move during the computer's turn", func(t *testing.T) {
		// Given: the computer plays X and therefore opens
		ctx, st := suite.New(t)
		bot := &mockBotService{}
		manager := NewGameManager(st.Logger, bot, entity.PlayerX, 0)
		game, err := manager.StartGame(ctx, entity.SinglePlayerMode)
		require.NoError(t, err)
		require.True(t, game.IsComputerTurn())

		// When: the human tries to move
		_, err = manager.MakeTurn(ctx, 0)

		// Then: ErrNotYourTurn is returned and the board is untouched
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.Board{}, manager.Game().Board)
	})

	t.Run("Two player mode alternates marks", func(t *testing.T) {
		ctx, st := suite.New(t)
		bot := &mockBotService{}
		manager := NewGameManager(st.Logger, bot, entity.PlayerO, 0)
		_, err := manager.StartGame(ctx, entity.TwoPlayerMode)
		require.NoError(t, err)

		_, err = manager.MakeTurn(ctx, 0)
		require.NoError(t, err)
		game, err := manager.MakeTurn(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, entity.PlayerX, game.Board[0])
		assert.Equal(t, entity.PlayerO, game.Board[1])
		bot.AssertNotCalled(t, "MakeTurn", mock.Anything, mock.Anything)
	})

	t.Run("Occupied cell is rejected", func(t *testing.T) {
		ctx, st := suite.New(t)
		manager := NewGameManager(st.Logger, &mockBotService{}, entity.PlayerO, 0)
		_, err := manager.StartGame(ctx, entity.TwoPlayerMode)
		require.NoError(t, err)
		_, err = manager.MakeTurn(ctx, 4)
		require.NoError(t, err)

		_, err = manager.MakeTurn(ctx, 4)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})
}

func TestGameManager_ComputerTurn(t *testing.T) {
	t.Run("Not the computer's turn", func(t *testing.T) {
		ctx, st := suite.New(t)
		bot := &mockBotService{}
		manager := NewGameManager(st.Logger, bot, entity.PlayerO, 0)
		_, err := manager.StartGame(ctx, entity.SinglePlayerMode)
		require.NoError(t, err)

		_, err = manager.ComputerTurn(ctx)

		require.ErrorIs(t, err, apperror.ErrNotComputerTurn)
		bot.AssertNotCalled(t, "MakeTurn", mock.Anything, mock.Anything)
	})

	t.Run("Bot error is returned", func(t *testing.T) {
		ctx, st := suite.New(t)
		bot := &mockBotService{}
		manager := NewGameManager(st.Logger, bot, entity.PlayerX, 0)
		_, err := manager.StartGame(ctx, entity.SinglePlayerMode)
		require.NoError(t, err)

		bot.On("MakeTurn", mock.Anything, mock.Anything).Return(errSomeError).Once()

		_, err = manager.ComputerTurn(ctx)

		require.ErrorIs(t, err, errSomeError)
		bot.AssertExpectations(t)
	})

	t.Run("Canceled context interrupts the delay", func(t *testing.T) {
		// Given: a computer that opens after a long delay
		ctx, st := suite.New(t)
		bot := &mockBotService{}
		manager := NewGameManager(st.Logger, bot, entity.PlayerX, time.Hour)
		_, err := manager.StartGame(ctx, entity.SinglePlayerMode)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(ctx)
		cancel()

		// When: the computer turn is requested
		_, err = manager.ComputerTurn(ctx)

		// Then: the wait ends with the context error and the bot is never asked
		require.ErrorIs(t, err, context.Canceled)
		bot.AssertNotCalled(t, "MakeTurn", mock.Anything, mock.Anything)
	})
}

func TestGameManager_ResetAndBack(t *testing.T) {
	ctx, st := suite.New(t)
	manager := NewGameManager(st.Logger, &mockBotService{}, entity.PlayerO, 0)

	_, err := manager.Reset(ctx)
	require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)

	_, err = manager.StartGame(ctx, entity.TwoPlayerMode)
	require.NoError(t, err)
	_, err = manager.MakeTurn(ctx, 4)
	require.NoError(t, err)

	game, err := manager.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Board{}, game.Board)
	assert.Equal(t, entity.PlayerX, game.Turn)

	game = manager.Back(ctx)
	assert.True(t, game.IsModeSelection())
}

func TestGameManager_GameIsSnapshot(t *testing.T) {
	ctx, st := suite.New(t)
	manager := NewGameManager(st.Logger, &mockBotService{}, entity.PlayerO, 0)
	_, err := manager.StartGame(ctx, entity.TwoPlayerMode)
	require.NoError(t, err)

	snapshot := manager.Game()
	snapshot.Board[0] = entity.PlayerO

	assert.Equal(t, entity.EmptyCell, manager.Game().Board[0])
}

func TestGameManager_HumanNeverBeatsComputer(t *testing.T) {
	// Given: the real bot playing X and a human that always takes the first free cell
	ctx, st := suite.New(t)
	manager := NewGameManager(st.Logger, service.NewBotService(st.Logger), entity.PlayerX, st.Config.AI.Delay)

	game, err := manager.StartGame(ctx, entity.SinglePlayerMode)
	require.NoError(t, err)

	// When: the round is played out
	for game.IsInProgress() {
		if game.IsComputerTurn() {
			game, err = manager.ComputerTurn(ctx)
		} else {
			game, err = manager.MakeTurn(ctx, game.Board.EmptyCells()[0])
		}
		require.NoError(t, err)
	}

	// Then: the human did not win
	assert.True(t, game.IsRoundOver())
	assert.NotEqual(t, entity.OutcomeOWon, game.Outcome)
}
