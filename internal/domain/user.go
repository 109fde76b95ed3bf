package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a player record created lazily from token claims.
// CurrentGameID points at the open game for CurrentGameDay; a new day
// means a fresh game regardless of what the pointer says.
type User struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	Username       string     `db:"username" json:"username"`
	CurrentGameID  *uuid.UUID `db:"current_game_id" json:"current_game_id,omitempty"`
	CurrentGameDay string     `db:"current_game_day" json:"current_game_day,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// Clone returns a deep copy so callers can never mutate stored state.
func (u *User) Clone() *User {
	cp := *u
	if u.CurrentGameID != nil {
		id := *u.CurrentGameID
		cp.CurrentGameID = &id
	}
	return &cp
}
