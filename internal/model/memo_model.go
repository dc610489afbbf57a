package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Memo struct {
	Id        uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string                      `gorm:"type:varchar(255)"`
	Content   string                      `gorm:"type:text;not null"`
	Category  *string                     `gorm:"type:varchar(255)"`
	Tags      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	UserId    uuid.UUID                   `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time                   `gorm:"autoCreateTime;index"`
	UpdatedAt *time.Time
}

func (Memo) TableName() string {
	return "memos"
}
