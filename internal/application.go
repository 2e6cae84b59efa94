package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application in the configured mode.
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

	gameRepo, closeRepo, err := newGameRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeRepo(); err != nil {
			log.Error("could not close game storage", "error", err)
		}
	}()

	eng := engine.New(logger, nil)

	switch conf.Mode {
	case config.ModeServer:
		return runServer(ctx, logger, conf, gameRepo, eng)
	default:
		return runCLI(ctx, logger, conf, gameRepo, eng, os.Stdin, os.Stdout)
	}
}

func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	if conf.Storage != config.StorageRedis {
		return repository.NewMemoryGameRepository(), func() error { return nil }, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewGameRepository(redisStorage), redisStorage.Close, nil
}

// runCLI plays the configured match on the terminal and prints the tally.
func runCLI(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
	gameRepo repository.GameRepository,
	eng *engine.Engine,
	input io.Reader,
	output io.Writer,
) error {
	var human *tictactoe.Human
	if conf.Engines.X == tictactoe.HumanEngine || conf.Engines.O == tictactoe.HumanEngine {
		human = tictactoe.NewHuman(input, output)
		human.PrintRules()
	}

	referee := tictactoe.NewReferee(logger, output)
	manager := usecase.NewMatchManager(logger, gameRepo, eng, referee, human, conf.IsolateCache)

	result, err := manager.Play(ctx, usecase.MatchRequest{
		X:          conf.Engines.X,
		O:          conf.Engines.O,
		Iterations: conf.Iterations,
	})
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	fmt.Fprintf(output, "X win %d ; O win %d ; draw %d.\n", result.Tally.XWins, result.Tally.OWins, result.Tally.Draws)

	return nil
}

func runServer(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
	gameRepo repository.GameRepository,
	eng *engine.Engine,
) error {
	log := logger.With("component", "app")

	referee := tictactoe.NewReferee(logger, nil)
	manager := usecase.NewMatchManager(logger, gameRepo, eng, referee, nil, conf.IsolateCache)

	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, manager)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err := <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
