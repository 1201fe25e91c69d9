package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/transport/terminal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	mode, err := entity.ParseMode(conf.Mode)
	if err != nil {
		return fmt.Errorf("invalid mode in config: %w", err)
	}

	computerMark, err := entity.ParseMark(conf.ComputerMark)
	if err != nil {
		return fmt.Errorf("invalid computer mark in config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	botService := service.NewBotService()
	gameManager := usecase.NewGameManager(logger, botService, computerMark)

	// run terminal game
	termErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting terminal game", "mode", string(mode), "computerMark", computerMark.String())
		termServer := terminal.New(logger, gameManager, terminal.NewOutput(os.Stdout, conf.NoColor), mode)
		termErrCh <- termServer.Start(ctx, os.Stdin)
	}()

	select {
	case err = <-termErrCh:
		if err != nil {
			return fmt.Errorf("terminal game error: %w", err)
		}
		log.Info("Terminal game finished")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
