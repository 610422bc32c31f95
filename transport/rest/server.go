package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/playforge/gridgame-backend/internal/entity"
	"github.com/playforge/gridgame-backend/internal/service"
)

type gameEngine interface {
	CreateGame(ctx context.Context, creatorID string, settings entity.GameSettings) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID, playerID, password string) error
	SubmitMove(ctx context.Context, gameID, playerID string, cell int) error
	ResignGame(ctx context.Context, gameID, playerID string) error
	MoveHistory(ctx context.Context, gameID string, sinceTurn int, requester *entity.Player) ([]*entity.GameAction, error)
	JoinableGames(ctx context.Context, playerID string, search entity.GameSearch) ([]*entity.Game, error)
	PlayerGames(ctx context.Context, playerID string, search entity.GameSearch) ([]*entity.Game, error)
}

type Server struct {
	logger *slog.Logger

	engine  gameEngine
	auth    *service.AuthService
	follows *service.FollowService
}

func New(logger *slog.Logger, engine gameEngine, auth *service.AuthService, follows *service.FollowService) *Server {
	return &Server{
		logger:  logger.With("component", "rest"),
		engine:  engine,
		auth:    auth,
		follows: follows,
	}
}

// Start serves the API until ctx is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	router := echo.New()
	router.HideBanner = true
	router.Use(middleware.Recover())

	router.GET("/ping", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "pong")
	})

	api := router.Group("/api")

	playerGroup := api.Group("/player")
	playerGroup.POST("", that.registerHandler)
	playerGroup.POST("/login", that.loginHandler)
	playerGroup.POST("/logout", that.logoutHandler, that.BearerAuth)
	playerGroup.GET("/following", that.followingHandler, that.BearerAuth)
	playerGroup.POST("/:playerID/follow", that.followHandler, that.BearerAuth)

	gameGroup := api.Group("/game", that.BearerAuth)
	gameGroup.GET("", that.joinableGamesHandler)
	gameGroup.GET("/my", that.myGamesHandler)
	gameGroup.POST("/create", that.createGameHandler)
	gameGroup.POST("/:gameID/join", that.joinGameHandler)
	gameGroup.POST("/:gameID/action", that.submitActionHandler)
	gameGroup.POST("/:gameID/resign", that.resignGameHandler)
	gameGroup.GET("/:gameID/actions", that.gameActionsHandler)

	errCh := make(chan error, 1)
	go func() {
		if err := router.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := router.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	}
}
