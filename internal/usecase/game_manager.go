package usecase

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type bot interface {
	BestMove(board entity.Board, computer, human entity.Mark) (int, bool)
}

// GameHandle identifies a game created by the GameManager.
type GameHandle struct {
	ID   string
	Mode entity.Mode
}

// TransitionResult is what the presentation layer gets back after every request.
type TransitionResult struct {
	Accepted     bool
	Outcome      entity.Outcome
	Board        entity.Board
	Turn         entity.Mark
	ComputerMove int
}

// GameManager is the engine boundary used by the presentation layer.
// It keeps games in memory only and is not safe for concurrent use.
type GameManager struct {
	logger *slog.Logger
	bot    bot

	computerMark entity.Mark
	games        map[string]*tictactoe.GameController
}

func NewGameManager(logger *slog.Logger, bot bot, computerMark entity.Mark) *GameManager {
	return &GameManager{
		logger: logger.With("component", "gameManager"),
		bot:    bot,

		computerMark: computerMark,
		games:        make(map[string]*tictactoe.GameController),
	}
}

func (that *GameManager) NewGame(mode entity.Mode) (*GameHandle, error) {
	controller, err := tictactoe.NewGameController(that.logger, that.bot, mode, that.computerMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	handle := &GameHandle{
		ID:   uuid.NewString(),
		Mode: mode,
	}
	that.games[handle.ID] = controller

	that.logger.Info("game created", "gameID", handle.ID, "mode", string(mode))

	return handle, nil
}

// SubmitMove plays cell for whoever is on turn. Rejected moves come back with Accepted false,
// the unchanged board and the reason.
func (that *GameManager) SubmitMove(gameID string, cell int) (TransitionResult, error) {
	controller, err := that.getGame(gameID)
	if err != nil {
		return TransitionResult{}, err
	}

	turn, err := controller.MakeTurn(cell)
	result := toTransitionResult(turn)
	if err != nil {
		return result, fmt.Errorf("failed to make turn: %w", err)
	}

	if result.Outcome.IsFinished() {
		that.logger.Info("game finished", "gameID", gameID, "outcome", result.Outcome.String())
	}

	return result, nil
}

func (that *GameManager) GetWinningLine(gameID string) ([3]int, bool, error) {
	controller, err := that.getGame(gameID)
	if err != nil {
		return [3]int{}, false, err
	}

	line, ok := controller.WinningLine()

	return line, ok, nil
}

func (that *GameManager) Restart(gameID string) error {
	controller, err := that.getGame(gameID)
	if err != nil {
		return err
	}

	controller.Restart()
	that.logger.Info("game restarted", "gameID", gameID)

	return nil
}

// State returns the current snapshot without changing anything.
func (that *GameManager) State(gameID string) (TransitionResult, error) {
	controller, err := that.getGame(gameID)
	if err != nil {
		return TransitionResult{}, err
	}

	return TransitionResult{
		Accepted:     true,
		Outcome:      controller.Outcome(),
		Board:        controller.Board(),
		Turn:         controller.Turn(),
		ComputerMove: tictactoe.NoMove,
	}, nil
}

// EndGame forgets the game. Unknown ids are ignored.
func (that *GameManager) EndGame(gameID string) {
	if _, ok := that.games[gameID]; !ok {
		return
	}

	delete(that.games, gameID)
	that.logger.Info("game ended", "gameID", gameID)
}

func (that *GameManager) getGame(gameID string) (*tictactoe.GameController, error) {
	controller, ok := that.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", apperror.ErrGameNotFound, gameID)
	}

	return controller, nil
}

func toTransitionResult(turn tictactoe.TurnResult) TransitionResult {
	return TransitionResult{
		Accepted:     turn.Accepted,
		Outcome:      turn.Outcome,
		Board:        turn.Board,
		Turn:         turn.Turn,
		ComputerMove: turn.ComputerMove,
	}
}
