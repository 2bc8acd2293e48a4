package model

import "time"

// UserID uniquely identifies a user
type UserID string

// User is the immutable user record owned by the identity actor.
// The username never changes after signup; users are never deleted.
type User struct {
	ID        UserID    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserGame is one entry in a user's in-progress game list,
// upserted by game id whenever the user touches the game.
type UserGame struct {
	ID         GameID    `json:"gameId"`
	Side       Faction   `json:"side"`
	Completed  bool      `json:"completed"`
	LastPlayed time.Time `json:"lastPlayed"`
}

// Scope is a named permission checked before a request reaches game logic
type Scope string

const (
	// ScopeNone marks routes that accept anonymous callers
	ScopeNone Scope = "none"

	ScopeGameCreate Scope = "game:create"
	ScopeGameView   Scope = "game:view"
	ScopeGameList   Scope = "game:list"
)

// Identity is the resolved caller attached to a request after
// the auth middleware has run
type Identity struct {
	UserID    UserID
	Username  string
	Anonymous bool
}
