package entity

import (
	"time"

	"github.com/google/uuid"
)

type Memo struct {
	Id        uuid.UUID
	Title     string
	Content   string
	Category  *string
	Tags      []string
	UserId    uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}
