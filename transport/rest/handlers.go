package rest

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/playforge/gridgame-backend/internal/entity"
)

func (that *Server) createGameHandler(ctx echo.Context) error {
	player := currentPlayer(ctx)

	settings := entity.DefaultGameSettings()
	var request createGameRequest
	if err := ctx.Bind(&request); err == nil && request.Rows != 0 {
		settings = entity.GameSettings{
			Rows:                request.Rows,
			Columns:             request.Columns,
			Password:            request.Password,
			IsMutualFollowsOnly: request.IsMutualFollowsOnly,
		}
	}

	game, err := that.engine.CreateGame(ctx.Request().Context(), player.ID, settings)
	if err != nil {
		that.logger.Error("failed to create game", "error", err)
		return httpError(err)
	}

	return ctx.JSON(http.StatusCreated, toGameResponse(game))
}

func (that *Server) joinGameHandler(ctx echo.Context) error {
	player := currentPlayer(ctx)
	gameID := ctx.Param("gameID")

	var request joinGameRequest
	_ = ctx.Bind(&request) // join body is optional; only password games need it

	if err := that.engine.JoinGame(ctx.Request().Context(), gameID, player.ID, request.Password); err != nil {
		that.logger.Warn("join rejected", "gameID", gameID, "player", player.ID, "error", err)
		return httpError(err)
	}

	return ctx.NoContent(http.StatusCreated)
}

func (that *Server) submitActionHandler(ctx echo.Context) error {
	player := currentPlayer(ctx)
	gameID := ctx.Param("gameID")

	var request submitActionRequest
	if err := ctx.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid action payload")
	}

	if err := that.engine.SubmitMove(ctx.Request().Context(), gameID, player.ID, request.Action); err != nil {
		that.logger.Warn("move rejected", "gameID", gameID, "player", player.ID,
			"cell", request.Action, "error", err)
		return httpError(err)
	}

	return ctx.NoContent(http.StatusCreated)
}

func (that *Server) resignGameHandler(ctx echo.Context) error {
	player := currentPlayer(ctx)
	gameID := ctx.Param("gameID")

	if err := that.engine.ResignGame(ctx.Request().Context(), gameID, player.ID); err != nil {
		return httpError(err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (that *Server) joinableGamesHandler(ctx echo.Context) error {
	player := currentPlayer(ctx)

	var params searchParams
	if err := ctx.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid search parameters")
	}

	games, err := that.engine.JoinableGames(ctx.Request().Context(),
		player.ID, params.toSearch(entity.DefaultJoinableSearch()))
	if err != nil {
		that.logger.Error("failed to list joinable games", "error", err)
		return httpError(err)
	}

	return ctx.JSON(http.StatusOK, toGameResponses(games))
}

func (that *Server) myGamesHandler(ctx echo.Context) error {
	player := currentPlayer(ctx)

	var params searchParams
	if err := ctx.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid search parameters")
	}

	games, err := that.engine.PlayerGames(ctx.Request().Context(),
		player.ID, params.toSearch(entity.DefaultMyGamesSearch()))
	if err != nil {
		that.logger.Error("failed to list player games", "error", err)
		return httpError(err)
	}

	return ctx.JSON(http.StatusOK, toGameResponses(games))
}

func (that *Server) gameActionsHandler(ctx echo.Context) error {
	player := currentPlayer(ctx)
	gameID := ctx.Param("gameID")

	sinceTurn := 0
	if since := ctx.QueryParam("since"); since != "" {
		parsed, err := strconv.Atoi(since)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid since parameter")
		}
		sinceTurn = parsed
	}

	actions, err := that.engine.MoveHistory(ctx.Request().Context(), gameID, sinceTurn, player)
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(http.StatusOK, toActionResponses(actions))
}
