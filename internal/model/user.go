package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	FirstName       string         `json:"first_name" gorm:"not null"`
	LastName        string         `json:"last_name" gorm:"not null"`
	Email           string         `json:"email" gorm:"not null;uniqueIndex"`
	Password        string         `json:"-" gorm:"not null"`
	Gender          string         `json:"gender" gorm:"not null"` // "male", "female", "other"
	LoginOtp        *string        `json:"-"`
	OtpExpiry       *time.Time     `json:"-"`
	IsEmailVerified bool           `json:"is_email_verified" gorm:"default:false"`
	VerificationOtp *string        `json:"-"`
	RoleID          uint           `json:"role_id" gorm:"not null;index"`
	Role            Role           `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Status          int            `json:"status" gorm:"not null;default:1"`
	CreatedBy       *uint          `json:"created_by,omitempty"`
	UpdatedBy       *uint          `json:"updated_by,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
