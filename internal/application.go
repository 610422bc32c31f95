package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/playforge/gridgame-backend/internal/config"
	"github.com/playforge/gridgame-backend/internal/repository"
	"github.com/playforge/gridgame-backend/internal/repository/storage"
	"github.com/playforge/gridgame-backend/internal/service"
	"github.com/playforge/gridgame-backend/transport/rest"
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

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite schema: %w", err)
	}

	playerRepo := repository.NewPlayerRepository(sqliteStorage.Connection)
	gameRepo := repository.NewGameRepository(sqliteStorage.Connection)
	seatRepo := repository.NewSeatRepository(sqliteStorage.Connection)
	actionRepo := repository.NewActionRepository(sqliteStorage.Connection)
	followRepo := repository.NewFollowRepository(sqliteStorage.Connection)
	tokenRepo := repository.NewTokenRepository(redisStorage.Connection)

	engine := service.NewGameEngine(logger, gameRepo, seatRepo, actionRepo, followRepo, rand.Shuffle)
	authService := service.NewAuthService(playerRepo, tokenRepo, conf.TokenTTL)
	followService := service.NewFollowService(playerRepo, followRepo)

	server := rest.New(logger, engine, authService, followService)

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err = server.Start(ctx, conf.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}
