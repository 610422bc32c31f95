package apperror

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrGameComplete       = errors.New("game is already complete")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrGameFull           = errors.New("game has no open seats")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrCellOutOfBounds    = errors.New("cell is outside the board")
	ErrNonSquareBoard     = errors.New("board rows and columns must match")
	ErrWrongPassword      = errors.New("game password is missing or wrong")
	ErrNotMutualFollows   = errors.New("players are not mutual follows")
	ErrForbidden          = errors.New("forbidden")
	ErrConcurrentUpdate   = errors.New("game was updated concurrently")
	ErrNoActions          = errors.New("game has no recorded actions")
	ErrPlayerNotSeated    = errors.New("player has no seat in this game")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
