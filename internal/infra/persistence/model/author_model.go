package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthorModel mirrors the 'authors' table.
type AuthorModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(255);not null;index"`
	Country     string    `gorm:"type:varchar(100)"`
	DateOfBirth time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthorModel) TableName() string {
	return "authors"
}
