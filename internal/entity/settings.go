package entity

// GameSettings is the creation payload for a new game. Missing request bodies
// fall back to DefaultGameSettings at the call site.
type GameSettings struct {
	Rows                int    `json:"rows"`
	Columns             int    `json:"columns"`
	Password            string `json:"password,omitempty"`
	IsMutualFollowsOnly bool   `json:"isMutualFollowsOnly,omitempty"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		Rows:    DefaultBoardRows,
		Columns: DefaultBoardColumns,
	}
}
