package entity

import "time"

// GameAction is one immutable entry of a game's append-only move log.
// ActionNumber is always 1 for this ruleset; it is reserved for games that
// need several sub-actions per turn.
type GameAction struct {
	ID           string    `json:"id"`
	GameID       string    `json:"gameId"`
	PlayerID     string    `json:"playerId"`
	TurnNumber   int       `json:"turnNumber"`
	ActionNumber int       `json:"actionNumber"`
	Action       int       `json:"action"`
	CreatedAt    time.Time `json:"createdAt"`
}
