package terminal

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const helpText = `cells are numbered 0-8:
 0 | 1 | 2
 3 | 4 | 5
 6 | 7 | 8
commands:
  <cell>            place your mark
  new two-player    start a game for two players
  new computer      start a game against the computer
  restart           start the current game over
  board             show the board again
  quit              leave`

func parseCell(value string) (int, bool) {
	cell, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}

	return cell, true
}

func (that *Server) handleMove(cell int) error {
	result, err := that.uGame.SubmitMove(that.gameID, cell)

	switch {
	case errors.Is(err, apperror.ErrInvalidCell):
		that.println("Pick a cell between 0 and 8.")
		return nil
	case errors.Is(err, apperror.ErrCellOccupied):
		that.println(fmt.Sprintf("Cell %d is already taken.", cell))
		return nil
	case errors.Is(err, apperror.ErrGameFinished):
		that.println("The game is over, type restart or new.")
		return nil
	case err != nil:
		return fmt.Errorf("failed to submit move: %w", err)
	}

	if result.ComputerMove >= 0 {
		that.println(fmt.Sprintf("Computer played %d.", result.ComputerMove))
	}

	that.render(result)

	return nil
}

func (that *Server) handleNewGame(args []string) error {
	mode := that.mode
	if len(args) > 0 {
		parsed, err := entity.ParseMode(args[0])
		if err != nil {
			that.println(fmt.Sprintf("Unknown mode %q, use two-player or computer.", args[0]))
			return nil
		}
		mode = parsed
	}

	return that.startGame(mode)
}

func (that *Server) handleRestart(_ []string) error {
	if err := that.uGame.Restart(that.gameID); err != nil {
		return fmt.Errorf("failed to restart game: %w", err)
	}

	return that.handleBoard(nil)
}

func (that *Server) handleBoard(_ []string) error {
	state, err := that.uGame.State(that.gameID)
	if err != nil {
		return fmt.Errorf("failed to get game state: %w", err)
	}

	that.render(state)

	return nil
}

func (that *Server) handleHelp(_ []string) error {
	that.println(helpText)
	return nil
}

func (that *Server) handleQuit(_ []string) error {
	return errQuit
}
