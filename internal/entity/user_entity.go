package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Email        string
	CreatedAt    time.Time
	LastSignInAt *time.Time
}

// UserRefreshToken persists the hash of a long-lived session token. The raw
// token never touches the database.
type UserRefreshToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}
