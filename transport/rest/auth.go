package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

func (that *Server) registerHandler(ctx echo.Context) error {
	var request registerRequest
	if err := ctx.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid register payload")
	}
	if request.Username == "" || request.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	player, err := that.auth.Register(ctx.Request().Context(),
		request.Username, request.Email, request.Password)
	if err != nil {
		that.logger.Error("failed to register player", "username", request.Username, "error", err)
		return httpError(err)
	}

	return ctx.JSON(http.StatusCreated, playerResponse{ID: player.ID, Username: player.Username})
}

func (that *Server) loginHandler(ctx echo.Context) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid login payload")
	}

	token, err := that.auth.Login(ctx.Request().Context(), request.Username, request.Password)
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(http.StatusOK, tokenResponse{Token: token})
}

func (that *Server) logoutHandler(ctx echo.Context) error {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	token, _ := strings.CutPrefix(header, "Bearer ")

	if err := that.auth.Logout(ctx.Request().Context(), token); err != nil {
		that.logger.Error("failed to revoke token", "error", err)
		return httpError(err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (that *Server) followHandler(ctx echo.Context) error {
	player := currentPlayer(ctx)

	target, err := that.follows.Follow(ctx.Request().Context(), player.ID, ctx.Param("playerID"))
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(http.StatusOK, playerResponse{ID: target.ID, Username: target.Username})
}

func (that *Server) followingHandler(ctx echo.Context) error {
	player := currentPlayer(ctx)

	players, err := that.follows.Following(ctx.Request().Context(), player.ID)
	if err != nil {
		return httpError(err)
	}

	responses := make([]playerResponse, 0, len(players))
	for _, followed := range players {
		responses = append(responses, playerResponse{ID: followed.ID, Username: followed.Username})
	}

	return ctx.JSON(http.StatusOK, responses)
}
