package domain

import "time"

// User represents a registered account. Bio and Image default to the
// empty string and are never null in responses. PasswordHash is opaque
// to the services; only the auth package produces and verifies it.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Bio          string    `json:"bio"`
	Image        string    `json:"image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserUpdate carries partial-update fields for the current user.
// Password, when set, is re-hashed before it reaches the repository.
type UserUpdate struct {
	Username *string
	Email    *string
	Password *string
	Bio      *string
	Image    *string
}
