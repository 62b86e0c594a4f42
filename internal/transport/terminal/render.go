package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	colorX = "1" // red
	colorO = "4" // blue
)

const rowSeparator = "---+---+---"

func (that *Session) printModeMenu() {
	that.println("Select mode: [1] single player  [2] two players  [q] quit")
}

func (that *Session) render(game *entity.Game) {
	var builder strings.Builder

	for row := range 3 {
		if row > 0 {
			builder.WriteString(rowSeparator + "\n")
		}

		for col := range 3 {
			if col > 0 {
				builder.WriteString("|")
			}

			cell := row*3 + col
			builder.WriteString(" " + that.styleCell(game.Board[cell], cell) + " ")
		}

		builder.WriteString("\n")
	}

	fmt.Fprint(that.output, builder.String())
	that.println(that.status(game))
}

func (that *Session) styleCell(mark entity.Mark, cell int) string {
	switch mark {
	case entity.PlayerX:
		return that.output.String(string(mark)).Foreground(that.output.Color(colorX)).Bold().String()
	case entity.PlayerO:
		return that.output.String(string(mark)).Foreground(that.output.Color(colorO)).Bold().String()
	default:
		return that.output.String(strconv.Itoa(cell + 1)).Faint().String()
	}
}

// status - the announcer line under the board.
func (that *Session) status(game *entity.Game) string {
	if game.IsRoundOver() {
		return that.output.String(game.Outcome.String()).Bold().String() + "  [r] play again  [b] back  [q] quit"
	}

	line := fmt.Sprintf("Player %s's turn", game.Turn)
	if game.IsSinglePlayer() && game.Turn != game.Computer {
		line += " (you)"
	}

	return line
}

func (that *Session) println(line string) {
	fmt.Fprintln(that.output, line)
}
