package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/playforge/gridgame-backend/internal/apperror"
)

// httpError maps the engine's error taxonomy onto HTTP statuses. Anything
// unmapped is an internal error; the handler logs the wrapped cause.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, apperror.ErrNotFound),
		errors.Is(err, apperror.ErrPlayerNotSeated),
		errors.Is(err, apperror.ErrNoActions):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, apperror.ErrGameComplete):
		return echo.NewHTTPError(http.StatusGone, err.Error())
	case errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrWrongPassword),
		errors.Is(err, apperror.ErrNotMutualFollows),
		errors.Is(err, apperror.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, apperror.ErrGameFull),
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrConcurrentUpdate),
		errors.Is(err, apperror.ErrUsernameTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, apperror.ErrCellOutOfBounds):
		return echo.NewHTTPError(http.StatusNotAcceptable, err.Error())
	case errors.Is(err, apperror.ErrNonSquareBoard):
		return echo.NewHTTPError(http.StatusNotImplemented, err.Error())
	case errors.Is(err, apperror.ErrInvalidCredentials),
		errors.Is(err, apperror.ErrInvalidToken):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
