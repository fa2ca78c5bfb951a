package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/rest"
	"github.com/rocketscienceinc/tictactoe-engine/transport/terminal"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedis(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLite(ctx, conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	sessionRepo := repository.NewSessionRepository(redisStorage, conf.Redis.SessionTTL)
	competitionRepo := repository.NewCompetitionRepository(sqliteStorage)
	if err = competitionRepo.Init(ctx); err != nil {
		return fmt.Errorf("could not init competition archive: %w", err)
	}

	gameManager := usecase.NewGameManager(logger, sessionRepo, competitionRepo, minimax.NewEngine())

	if conf.Mode == config.ModeTerminal {
		return runTerminal(ctx, logger, gameManager, conf)
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpErrCh <- rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, gameManager))
	}()

	select {
	case err = <-httpErrCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")

		return <-httpErrCh
	}
}

// runTerminal - plays one session on stdin/stdout. A signal returns without waiting for a blocked read.
func runTerminal(ctx context.Context, logger *slog.Logger, gameManager *usecase.GameManager, conf *config.Config) error {
	console := terminal.New(logger, gameManager, os.Stdin, os.Stdout, terminal.Options{
		Settings:      conf.Game.Settings(),
		ComputerDelay: conf.Game.ComputerDelay,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- console.Run(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("terminal error: %w", err)
		}

		return nil
	case <-ctx.Done():
		return nil
	}
}
