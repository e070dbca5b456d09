package model

import (
	"time"

	"github.com/google/uuid"
)

// UserBookModel mirrors the 'user_books' table. The composite primary key
// keeps one borrowing record per (user, book) pair.
type UserBookModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	TakenDate  time.Time `gorm:"not null"`
	ReturnDate time.Time `gorm:"not null"`

	Book *BookModel `gorm:"foreignKey:BookID"`
}

// TableName explicitly sets the table name for GORM.
func (UserBookModel) TableName() string {
	return "user_books"
}
