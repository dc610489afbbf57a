package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMemoRequest struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Category  string `json:"category"`
	TagsInput string `json:"tags_input"`
}

type CreateMemoResponse struct {
	Id uuid.UUID `json:"id"`
}

// MemoFilter mirrors the list screen's filter bar. Zero values mean "no
// predicate": empty search/category add nothing, empty tags add nothing.
type MemoFilter struct {
	Search   string
	Category string
	Tags     []string
}

type MemoResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Category  *string    `json:"category"`
	Tags      []string   `json:"tags"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type UpdateMemoRequest struct {
	Id      uuid.UUID
	Title   string `json:"title"`
	Content string `json:"content"`
}

type DeleteMemoResponse struct {
	Success bool `json:"success"`
}

// MemoActivityMessage is the payload published on the activity topic after a
// successful mutation.
type MemoActivityMessage struct {
	MemoId uuid.UUID `json:"memo_id"`
	UserId uuid.UUID `json:"user_id"`
	Action string    `json:"action"`
}
