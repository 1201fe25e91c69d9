package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// NoMove marks a TurnResult in which the computer did not play.
const NoMove = -1

type bot interface {
	BestMove(board entity.Board, computer, human entity.Mark) (int, bool)
}

// TurnResult is a snapshot taken after a move request has been fully processed,
// including the computer's reply.
type TurnResult struct {
	Accepted     bool
	Outcome      entity.Outcome
	Board        entity.Board
	Turn         entity.Mark
	ComputerMove int
}

// GameController owns the board and the turn state of a single game.
// It is not safe for concurrent use.
type GameController struct {
	logger *slog.Logger
	bot    bot

	mode     entity.Mode
	computer entity.Mark

	board   entity.Board
	turn    entity.Mark
	outcome entity.Outcome
}

func NewGameController(logger *slog.Logger, bot bot, mode entity.Mode, computer entity.Mark) (*GameController, error) {
	if _, err := entity.ParseMode(string(mode)); err != nil {
		return nil, err
	}

	if mode == entity.ModeVsComputer && computer != entity.X && computer != entity.O {
		return nil, fmt.Errorf("%w: computer mark %q", apperror.ErrUnknownMark, computer.String())
	}

	that := &GameController{
		logger:   logger.With("component", "gameController", "mode", string(mode)),
		bot:      bot,
		mode:     mode,
		computer: computer,
	}
	that.Restart()

	return that, nil
}

// Restart clears the board and hands the first move back to X.
func (that *GameController) Restart() {
	that.board = entity.Board{}
	that.turn = entity.X
	that.outcome = entity.InProgress()

	// the computer opens when it plays X
	that.computerTurn()
}

// MakeTurn places the current player's mark at cell. In vs-computer mode the computer answers
// within the same call, so callers never see the board between the two moves.
// A rejected request leaves the game untouched and is reported with Accepted false.
func (that *GameController) MakeTurn(cell int) (TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "cell", cell, "mark", that.turn.String())

	if that.outcome.IsFinished() {
		log.Debug("move rejected", "reason", apperror.ErrGameFinished)
		return that.snapshot(false, NoMove), apperror.ErrGameFinished
	}

	if err := that.apply(cell); err != nil {
		log.Debug("move rejected", "reason", err)
		return that.snapshot(false, NoMove), fmt.Errorf("invalid turn: %w", err)
	}

	computerMove := that.computerTurn()

	log.Debug("move accepted", "computerMove", computerMove, "outcome", that.outcome.String())

	return that.snapshot(true, computerMove), nil
}

// apply places the mark of the player on turn and moves the state machine forward.
func (that *GameController) apply(cell int) error {
	board, err := entity.Place(that.board, cell, that.turn)
	if err != nil {
		return err
	}

	that.board = board
	that.outcome = entity.Evaluate(that.board, that.turn)

	if !that.outcome.IsFinished() {
		that.turn = that.turn.Other()
	}

	return nil
}

// computerTurn plays the computer's reply when it is due and returns the chosen cell.
func (that *GameController) computerTurn() int {
	if that.mode != entity.ModeVsComputer || that.outcome.IsFinished() || that.turn != that.computer {
		return NoMove
	}

	cell, ok := that.bot.BestMove(that.board, that.computer, that.computer.Other())
	if !ok {
		return NoMove
	}

	if err := that.apply(cell); err != nil {
		that.logger.Error("bot picked an illegal cell", "method", "computerTurn", "cell", cell, "error", err)
		return NoMove
	}

	return cell
}

func (that *GameController) snapshot(accepted bool, computerMove int) TurnResult {
	return TurnResult{
		Accepted:     accepted,
		Outcome:      that.outcome,
		Board:        that.board,
		Turn:         that.Turn(),
		ComputerMove: computerMove,
	}
}

func (that *GameController) Board() entity.Board {
	return that.board
}

// Turn returns the mark expected to move next, or Empty once the game is over.
func (that *GameController) Turn() entity.Mark {
	if that.outcome.IsFinished() {
		return entity.Empty
	}

	return that.turn
}

func (that *GameController) Outcome() entity.Outcome {
	return that.outcome
}

func (that *GameController) Mode() entity.Mode {
	return that.mode
}

func (that *GameController) ComputerMark() entity.Mark {
	if that.mode != entity.ModeVsComputer {
		return entity.Empty
	}

	return that.computer
}

func (that *GameController) IsFinished() bool {
	return that.outcome.IsFinished()
}

// WinningLine is only meant for drawing; game logic never depends on which line is reported.
func (that *GameController) WinningLine() ([3]int, bool) {
	if that.outcome.Status != entity.StatusWin {
		return [3]int{}, false
	}

	return entity.WinningLine(that.board, that.outcome.Winner)
}
