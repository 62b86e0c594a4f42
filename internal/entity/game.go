package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	StatusModeSelection = "mode_selection"
	StatusInProgress    = "in_progress"
	StatusRoundOver     = "round_over"
)

const (
	SinglePlayerMode = "single"
	TwoPlayerMode    = "two"
)

// FirstMark - X always opens a round.
const FirstMark = PlayerX

type Game struct {
	ID       string  `json:"id"`
	Board    Board   `json:"board"`
	Mode     string  `json:"mode,omitempty"`
	Status   string  `json:"status"`
	Turn     Mark    `json:"player_turn"`
	Computer Mark    `json:"computer,omitempty"`
	Outcome  Outcome `json:"outcome"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Status: StatusModeSelection,
	}
}

func (that *Game) IsModeSelection() bool {
	return that.Status == StatusModeSelection
}

func (that *Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *Game) IsRoundOver() bool {
	return that.Status == StatusRoundOver
}

func (that *Game) IsSinglePlayer() bool {
	return that.Mode == SinglePlayerMode
}

// IsComputerTurn reports whether the search engine may be invoked now.
func (that *Game) IsComputerTurn() bool {
	return that.IsSinglePlayer() && that.IsInProgress() && that.Computer.IsPlayer() && that.Turn == that.Computer
}

// ConfirmInProgress - returns nil only while a round is being played.
func (that *Game) ConfirmInProgress() error {
	switch that.Status {
	case StatusModeSelection:
		return apperror.ErrGameIsNotStarted
	case StatusRoundOver:
		return apperror.ErrGameFinished
	case StatusInProgress:
		return nil
	default:
		return fmt.Errorf("unknown game status: %s", that.Status)
	}
}

func IsValidMode(mode string) bool {
	return mode == SinglePlayerMode || mode == TwoPlayerMode
}
