package model

import (
	"time"

	"gorm.io/gorm"
)

// Title is a top-level survey section grouping questions.
type Title struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"size:255;not null"`
	Description *string        `json:"description,omitempty" gorm:"type:text"`
	Status      int            `json:"status" gorm:"not null;default:1"`
	CreatedBy   *uint          `json:"created_by,omitempty"`
	UpdatedBy   *uint          `json:"updated_by,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
