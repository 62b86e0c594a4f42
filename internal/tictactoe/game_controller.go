package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// StartGame - leaves mode selection and starts the first round.
// computer is ignored in two player mode.
func StartGame(gameInstance *entity.Game, mode string, computer entity.Mark) error {
	if !gameInstance.IsModeSelection() {
		return apperror.ErrGameAlreadyStart
	}

	if !entity.IsValidMode(mode) {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMode, mode)
	}

	if mode == entity.SinglePlayerMode && !computer.IsPlayer() {
		return fmt.Errorf("%w: computer %q", apperror.ErrInvalidMark, string(computer))
	}

	gameInstance.Mode = mode
	gameInstance.Computer = entity.EmptyCell
	if mode == entity.SinglePlayerMode {
		gameInstance.Computer = computer
	}

	startRound(gameInstance)

	return nil
}

// MakeTurn - places mark on cell and advances the round.
func MakeTurn(gameInstance *entity.Game, mark entity.Mark, cell int) error {
	if err := gameInstance.ConfirmInProgress(); err != nil {
		return err
	}

	if err := validateMove(gameInstance, mark, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board[cell] = mark
	updateGameStatus(gameInstance, mark)

	return nil
}

// Reset - starts a new round in the same mode.
func Reset(gameInstance *entity.Game) error {
	if gameInstance.IsModeSelection() {
		return apperror.ErrGameIsNotStarted
	}

	startRound(gameInstance)

	return nil
}

// Back - returns to mode selection from any state.
func Back(gameInstance *entity.Game) {
	gameInstance.Board.Reset()
	gameInstance.Mode = ""
	gameInstance.Computer = entity.EmptyCell
	gameInstance.Turn = entity.EmptyCell
	gameInstance.Outcome = entity.OutcomeOngoing
	gameInstance.Status = entity.StatusModeSelection
}

func startRound(gameInstance *entity.Game) {
	gameInstance.Board.Reset()
	gameInstance.Turn = entity.FirstMark
	gameInstance.Outcome = entity.OutcomeOngoing
	gameInstance.Status = entity.StatusInProgress
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, playerTurn entity.Mark, cell int) error {
	if cell < 0 || cell >= len(gameInstance.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if gameInstance.Turn != playerTurn {
		return apperror.ErrNotYourTurn
	}

	if gameInstance.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, player entity.Mark) {
	switch outcome := entity.Evaluate(gameInstance.Board); outcome {
	case entity.OutcomeXWon, entity.OutcomeOWon, entity.OutcomeTie:
		gameInstance.Outcome = outcome
		gameInstance.Status = entity.StatusRoundOver
	default:
		gameInstance.Turn = player.Opponent()
	}
}
