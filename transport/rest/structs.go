package rest

import (
	"time"

	"github.com/playforge/gridgame-backend/internal/entity"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type playerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type createGameRequest struct {
	Rows                int    `json:"rows"`
	Columns             int    `json:"columns"`
	Password            string `json:"password"`
	IsMutualFollowsOnly bool   `json:"isMutualFollowsOnly"`
}

type joinGameRequest struct {
	Password string `json:"password"`
}

type submitActionRequest struct {
	Action int `json:"action"`
}

// searchParams binds the optional discovery filters from query parameters.
type searchParams struct {
	Active              *bool `query:"active"`
	MinRows             *int  `query:"minRows"`
	MaxRows             *int  `query:"maxRows"`
	MinColumns          *int  `query:"minColumns"`
	MaxColumns          *int  `query:"maxColumns"`
	IsPasswordProtected *bool `query:"isPasswordProtected"`
	IsMutualFollowsOnly *bool `query:"isMutualFollowsOnly"`
}

// gameResponse is the public projection of a game: the password itself never
// leaves the server, only the protection flag.
type gameResponse struct {
	ID                  string    `json:"id"`
	BoardRows           int       `json:"boardRows"`
	BoardColumns        int       `json:"boardColumns"`
	IsPasswordProtected bool      `json:"isPasswordProtected"`
	IsMutualFollowsOnly bool      `json:"isMutualFollowsOnly"`
	PlayerCount         int       `json:"playerCount"`
	OpenSeats           int       `json:"openSeats"`
	CompleteTurnsCount  int       `json:"completeTurnsCount"`
	NextTurn            string    `json:"nextTurn,omitempty"`
	IsComplete          bool      `json:"isComplete"`
	Winner              string    `json:"winner,omitempty"`
	CreatedBy           string    `json:"createdBy"`
	CreatedAt           time.Time `json:"createdAt"`
}

type actionResponse struct {
	PlayerID   string `json:"playerId"`
	TurnNumber int    `json:"turnNumber"`
	Action     int    `json:"action"`
}

func toGameResponse(game *entity.Game) gameResponse {
	return gameResponse{
		ID:                  game.ID,
		BoardRows:           game.BoardRows,
		BoardColumns:        game.BoardColumns,
		IsPasswordProtected: game.IsPasswordProtected(),
		IsMutualFollowsOnly: game.IsMutualFollowsOnly,
		PlayerCount:         game.PlayerCount,
		OpenSeats:           game.OpenSeats,
		CompleteTurnsCount:  game.CompleteTurnsCount,
		NextTurn:            game.NextTurn,
		IsComplete:          game.IsComplete,
		Winner:              game.Winner,
		CreatedBy:           game.CreatedBy,
		CreatedAt:           game.CreatedAt,
	}
}

func toGameResponses(games []*entity.Game) []gameResponse {
	responses := make([]gameResponse, 0, len(games))
	for _, game := range games {
		responses = append(responses, toGameResponse(game))
	}
	return responses
}

func toActionResponses(actions []*entity.GameAction) []actionResponse {
	responses := make([]actionResponse, 0, len(actions))
	for _, action := range actions {
		responses = append(responses, actionResponse{
			PlayerID:   action.PlayerID,
			TurnNumber: action.TurnNumber,
			Action:     action.Action,
		})
	}
	return responses
}

func (that *searchParams) toSearch(defaults entity.GameSearch) entity.GameSearch {
	search := defaults
	if that.Active != nil {
		search.Active = that.Active
	}
	if that.MinRows != nil {
		search.MinRows = that.MinRows
	}
	if that.MaxRows != nil {
		search.MaxRows = that.MaxRows
	}
	if that.MinColumns != nil {
		search.MinColumns = that.MinColumns
	}
	if that.MaxColumns != nil {
		search.MaxColumns = that.MaxColumns
	}
	if that.IsPasswordProtected != nil {
		search.IsPasswordProtected = that.IsPasswordProtected
	}
	if that.IsMutualFollowsOnly != nil {
		search.IsMutualFollowsOnly = that.IsMutualFollowsOnly
	}
	return search
}
