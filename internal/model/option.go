package model

import (
	"time"

	"gorm.io/gorm"
)

type Option struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	OptionText string         `json:"option_text" gorm:"size:255;not null"`
	Status     int            `json:"status" gorm:"not null;default:1"`
	CreatedBy  *uint          `json:"created_by,omitempty"`
	UpdatedBy  *uint          `json:"updated_by,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
