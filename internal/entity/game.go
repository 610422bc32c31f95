package entity

import "time"

const (
	// DefaultPlayerCount is fixed for this ruleset; the schema carries the
	// field so larger games can reuse the seat/turn machinery later.
	DefaultPlayerCount = 2

	DefaultBoardRows    = 3
	DefaultBoardColumns = 3
)

type Game struct {
	ID                  string    `json:"id"`
	BoardRows           int       `json:"boardRows"`
	BoardColumns        int       `json:"boardColumns"`
	PlayerCount         int       `json:"playerCount"`
	OpenSeats           int       `json:"openSeats"`
	Password            string    `json:"-"`
	IsMutualFollowsOnly bool      `json:"isMutualFollowsOnly"`
	CompleteTurnsCount  int       `json:"completeTurnsCount"`
	IsComplete          bool      `json:"isComplete"`
	NextTurn            string    `json:"nextTurn,omitempty"`
	Winner              string    `json:"winner,omitempty"`
	CreatedBy           string    `json:"createdBy"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// NewGame seats the creator implicitly: openSeats starts at playerCount-1.
func NewGame(id string, rows, columns int, password string, mutualFollowsOnly bool, createdBy string) *Game {
	return &Game{
		ID:                  id,
		BoardRows:           rows,
		BoardColumns:        columns,
		PlayerCount:         DefaultPlayerCount,
		OpenSeats:           DefaultPlayerCount - 1,
		Password:            password,
		IsMutualFollowsOnly: mutualFollowsOnly,
		CompleteTurnsCount:  0,
		IsComplete:          false,
		CreatedBy:           createdBy,
	}
}

func (that *Game) BoardSize() int {
	return that.BoardRows * that.BoardColumns
}

func (that *Game) IsPasswordProtected() bool {
	return that.Password != ""
}

func (that *Game) HasOpenSeats() bool {
	return that.OpenSeats > 0
}

// HasStarted reports whether all seats filled and turn order was assigned.
func (that *Game) HasStarted() bool {
	return that.NextTurn != ""
}
