package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const (
	colorX   = "4" // blue
	colorO   = "1" // red
	colorWin = "2" // green
)

// render prints the board, the winning line when there is one and the status line.
func (that *Server) render(state usecase.TransitionResult) {
	log := that.logger.With("method", "render")

	line, won, err := that.uGame.GetWinningLine(that.gameID)
	if err != nil {
		log.Error("failed to get winning line", "error", err)
	}

	winning := make(map[int]bool, len(line))
	if won {
		for _, cell := range line {
			winning[cell] = true
		}
	}

	var sb strings.Builder
	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			index := row*3 + col
			cells = append(cells, that.cell(state.Board[index], index, winning[index]))
		}

		sb.WriteString(" " + strings.Join(cells, " | ") + "\n")
		if row < 2 {
			sb.WriteString("---+---+---\n")
		}
	}

	fmt.Fprint(that.out, sb.String())

	if won {
		that.println(fmt.Sprintf("winning line: %d-%d-%d", line[0], line[1], line[2]))
	}

	that.println(status(state))
}

func (that *Server) cell(mark entity.Mark, index int, winning bool) string {
	if mark == entity.Empty {
		return that.out.String(fmt.Sprint(index)).Faint().String()
	}

	style := that.out.String(mark.String()).Bold()
	switch {
	case winning:
		style = style.Foreground(that.out.Color(colorWin)).Underline()
	case mark == entity.X:
		style = style.Foreground(that.out.Color(colorX))
	default:
		style = style.Foreground(that.out.Color(colorO))
	}

	return style.String()
}

func status(state usecase.TransitionResult) string {
	if state.Outcome.IsFinished() {
		return state.Outcome.String()
	}

	return fmt.Sprintf("Player %s's turn", state.Turn)
}

// NewOutput wraps w for rendering; colors are dropped when noColor is set.
func NewOutput(w io.Writer, noColor bool) *termenv.Output {
	if noColor {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}

	return termenv.NewOutput(w)
}
