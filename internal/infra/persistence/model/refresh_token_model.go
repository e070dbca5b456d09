package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel mirrors the 'refresh_tokens' table. The composite primary
// key (user_id, login_provider, token_name) enforces at most one live session
// per triple; rotation is an upsert keyed on it.
type RefreshTokenModel struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	LoginProvider string    `gorm:"type:varchar(100);primaryKey"`
	TokenName     string    `gorm:"type:varchar(100);primaryKey"`
	// Value is indexed for the lookup path only; the generator carries the
	// whole collision-avoidance burden, so the store does not enforce
	// uniqueness of values.
	Value     string `gorm:"type:varchar(255);index;not null"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
