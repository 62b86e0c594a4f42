package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Mark - a symbol placed in a cell, or EmptyCell.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

// IsPlayer reports whether the mark belongs to one of the two players.
func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent - returns the other player's mark, or EmptyCell for a non-player mark.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// Outcome - result of a board, derived purely from its contents.
type Outcome string

const (
	OutcomeOngoing Outcome = ""
	OutcomeXWon    Outcome = Outcome(PlayerX)
	OutcomeOWon    Outcome = Outcome(PlayerO)
	OutcomeTie     Outcome = "-"
)

// Winner - returns the mark that won, or EmptyCell for a tie or an ongoing game.
func (that Outcome) Winner() Mark {
	switch that {
	case OutcomeXWon:
		return PlayerX
	case OutcomeOWon:
		return PlayerO
	default:
		return EmptyCell
	}
}

// IsDecided reports whether the round is over.
func (that Outcome) IsDecided() bool {
	return that != OutcomeOngoing
}

func (that Outcome) String() string {
	switch that {
	case OutcomeXWon:
		return "Player X Won"
	case OutcomeOWon:
		return "Player O Won"
	case OutcomeTie:
		return "Tie"
	default:
		return "ongoing"
	}
}

// BoardSize - number of cells on the board.
const BoardSize = 9

// WinCombos - rows, columns and diagonals, in that order.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board - 3x3 grid stored row-major, index 0..8.
type Board [BoardSize]Mark

// Evaluate - returns the outcome of the board.
func Evaluate(board Board) Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return Outcome(a)
		}
	}

	if board.IsFull() {
		return OutcomeTie
	}

	return OutcomeOngoing
}

// IsFull reports whether no empty cell remains.
func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// EmptyCells - indexes of empty cells in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// Validate - checks that every cell holds a known mark.
func (that *Board) Validate() error {
	for i, cell := range that {
		if cell != EmptyCell && !cell.IsPlayer() {
			return fmt.Errorf("%w: %q at cell %d", apperror.ErrInvalidMark, string(cell), i)
		}
	}

	return nil
}

// Reset - clears every cell.
func (that *Board) Reset() {
	*that = Board{}
}

func (that Board) String() string {
	var sb strings.Builder
	for row := range 3 {
		if row > 0 {
			sb.WriteByte('/')
		}

		for col := range 3 {
			cell := that[row*3+col]
			if cell == EmptyCell {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(string(cell))
		}
	}

	return sb.String()
}
