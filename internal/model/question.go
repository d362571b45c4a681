package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	QuestionTypeText     = "text"
	QuestionTypeRadio    = "radio"
	QuestionTypeSelect   = "select"
	QuestionTypeCheckbox = "checkbox"
	QuestionTypeLLM      = "llm"
)

type Question struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	TitleID      *uint          `json:"title_id,omitempty" gorm:"index"`
	GroupID      *uint          `json:"group_id,omitempty" gorm:"index"`
	QuestionText string         `json:"question_text" gorm:"not null"`
	QuestionType string         `json:"question_type" gorm:"not null;default:'text'"` // "text", "radio", "select", "checkbox", "llm"
	IsRequired   bool           `json:"is_required" gorm:"default:false"`
	SequenceNo   *int           `json:"sequence_no,omitempty"`
	Options      []Option       `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
	Status       int            `json:"status" gorm:"not null;default:1"`
	CreatedBy    *uint          `json:"created_by,omitempty"`
	UpdatedBy    *uint          `json:"updated_by,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// HasOptions reports whether the question type carries a fixed option set.
func (q *Question) HasOptions() bool {
	switch q.QuestionType {
	case QuestionTypeRadio, QuestionTypeSelect, QuestionTypeCheckbox:
		return true
	}
	return false
}
