package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrGameAlreadyStart = errors.New("game is already started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrNotComputerTurn  = errors.New("it's not the computer's turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrInvalidMark      = errors.New("invalid mark")
	ErrInvalidMode      = errors.New("invalid game mode")
	ErrNoAvailableMoves = errors.New("no available moves")
)
