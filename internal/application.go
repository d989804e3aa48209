package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - wires the configured stats backend, the console and the game
// services together and runs the session loop.
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

	statsRepo, closeStorage, err := newStatsRepository(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open stats storage: %w", err)
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close stats storage", "error", err)
		}
	}()

	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok

	ui := console.New(os.Stdin, os.Stdout)
	bot := service.NewBotService(logger, rng)
	hint := service.NewHintService()

	session := usecase.NewSession(logger, statsRepo, bot, hint, ui)

	return session.Run(ctx)
}

// newStatsRepository - opens the stats backend selected in the configuration.
// The file backend is the default; sqlite and redis are opt-in.
func newStatsRepository(ctx context.Context, conf *config.Config) (repository.StatsRepository, func() error, error) {
	noop := func() error { return nil }

	switch conf.Storage.Type {
	case config.StorageFile:
		return repository.NewFileStatsRepository(conf.Storage.StatsFile), noop, nil

	case config.StorageSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.Storage.SQLitePath)
		if err != nil {
			return nil, noop, fmt.Errorf("could not connect to sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			return nil, sqliteStorage.Close, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteStatsRepository(sqliteStorage.Connection), sqliteStorage.Close, nil

	case config.StorageRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Storage.Redis.GetRedisAddr())
		if err != nil {
			return nil, noop, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisStatsRepository(redisStorage.Connection), redisStorage.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage type: %q", conf.Storage.Type)
	}
}
