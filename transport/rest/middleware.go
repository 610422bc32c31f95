package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/playforge/gridgame-backend/internal/entity"
)

const playerContextKey = "player"

// BearerAuth resolves the Authorization bearer token to a player and stores
// it on the request context.
func (that *Server) BearerAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		player, err := that.auth.PlayerByToken(ctx.Request().Context(), token)
		if err != nil {
			return httpError(err)
		}

		ctx.Set(playerContextKey, player)
		return next(ctx)
	}
}

func currentPlayer(ctx echo.Context) *entity.Player {
	player, _ := ctx.Get(playerContextKey).(*entity.Player)
	return player
}
