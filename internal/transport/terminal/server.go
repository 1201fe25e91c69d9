package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var errQuit = errors.New("quit requested")

type uGame interface {
	NewGame(mode entity.Mode) (*usecase.GameHandle, error)
	SubmitMove(gameID string, cell int) (usecase.TransitionResult, error)
	GetWinningLine(gameID string) ([3]int, bool, error)
	Restart(gameID string) error
	State(gameID string) (usecase.TransitionResult, error)
	EndGame(gameID string)
}

type handler func(args []string) error

// Server drives a single game from line based input, one command per line.
type Server struct {
	logger *slog.Logger
	uGame  uGame
	out    *termenv.Output

	mode   entity.Mode
	gameID string

	handlers map[string]handler
}

func New(logger *slog.Logger, uGame uGame, out *termenv.Output, mode entity.Mode) *Server {
	server := &Server{
		logger: logger.With("component", "terminal"),
		uGame:  uGame,
		out:    out,
		mode:   mode,

		handlers: make(map[string]handler),
	}

	server.handlers["new"] = server.handleNewGame
	server.handlers["restart"] = server.handleRestart
	server.handlers["board"] = server.handleBoard
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

// Start - starts a game in the configured mode and processes commands until input ends,
// the user quits or ctx is canceled.
func (that *Server) Start(ctx context.Context, in io.Reader) error {
	log := that.logger.With("method", "Start")

	if err := that.startGame(that.mode); err != nil {
		return err
	}
	defer func() { that.uGame.EndGame(that.gameID) }()

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		that.prompt()

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read command: %w", err)
			}
			log.Info("input closed")
			return nil
		}

		err := that.handleLine(scanner.Text())
		if errors.Is(err, errQuit) {
			log.Info("quit requested")
			return nil
		}

		if err != nil {
			log.Error("error processing command", "error", err)
			that.println(that.out.String("error: " + err.Error()).Foreground(that.out.Color("1")).String())
		}
	}
}

// handleLine - a bare number is a move, anything else is looked up as a command.
func (that *Server) handleLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	if cell, ok := parseCell(fields[0]); ok {
		return that.handleMove(cell)
	}

	handle, ok := that.handlers[strings.ToLower(fields[0])]
	if !ok {
		that.println(fmt.Sprintf("unknown command %q, type help", fields[0]))
		return nil
	}

	return handle(fields[1:])
}

func (that *Server) startGame(mode entity.Mode) error {
	handle, err := that.uGame.NewGame(mode)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	if that.gameID != "" {
		that.uGame.EndGame(that.gameID)
	}

	that.gameID = handle.ID
	that.mode = handle.Mode

	state, err := that.uGame.State(that.gameID)
	if err != nil {
		return fmt.Errorf("failed to get game state: %w", err)
	}

	that.render(state)

	return nil
}

func (that *Server) prompt() {
	fmt.Fprint(that.out, "> ")
}

func (that *Server) println(line string) {
	fmt.Fprintln(that.out, line)
}
