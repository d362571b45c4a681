package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	TokenTypeRefresh        = "refresh_token"
	TokenTypeForgotPassword = "forgot_password"
)

// Token stores issued refresh and forgot-password tokens so they can be
// revoked and verified against the database.
type Token struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	Token     string         `json:"token" gorm:"type:text;not null"`
	Type      string         `json:"type" gorm:"not null"` // "refresh_token", "forgot_password"
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
