package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist menampung token yang sudah di-logout sampai kedaluwarsa.
type TokenBlacklist struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Token     string         `gorm:"type:text;not null;index;column:token" json:"token"`
	ExpiredAt time.Time      `gorm:"type:timestamptz;not null;column:expired_at" json:"expired_at"`
	CreatedAt time.Time      `gorm:"type:timestamptz;column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }

func (t *TokenBlacklist) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
