package model

import (
	"time"

	"github.com/google/uuid"
)

// BookModel mirrors the 'books' table. Author is preloaded wherever a book is
// read because responses always carry the author's name.
type BookModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Isbn        string    `gorm:"type:varchar(17);unique;not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Genre       string    `gorm:"type:varchar(100);index"`
	Description string    `gorm:"type:text"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Author *AuthorModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}
