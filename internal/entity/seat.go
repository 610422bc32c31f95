package entity

// UnassignedTurnOrder marks a seat created before the game filled. Real orders
// are 1-based and assigned exactly once, when the last seat is taken.
const UnassignedTurnOrder = 0

// GameSeat is the association between a game and a seated player.
type GameSeat struct {
	GameID    string `json:"gameId"`
	PlayerID  string `json:"playerId"`
	TurnOrder int    `json:"turnOrder"`
}

func (that *GameSeat) HasTurnOrder() bool {
	return that.TurnOrder != UnassignedTurnOrder
}
