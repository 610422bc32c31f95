package entity

import "time"

const (
	UserTypeStandard = "standard"
	UserTypeAdmin    = "admin"
)

type Player struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	UserType     string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (that *Player) IsAdmin() bool {
	return that.UserType == UserTypeAdmin
}
