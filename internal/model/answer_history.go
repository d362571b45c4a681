package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Entity types discriminating what an AnswerHistory row snapshots.
const (
	EntityTypeQuestion = 1
)

// AnswerHistory is an immutable snapshot of an Answer's state before it was
// regenerated. For a fixed (AnswerID, EntityType) pair, Version is a gapless
// sequence starting at 1; rows are never updated or deleted once written.
type AnswerHistory struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	AnswerID          uint           `json:"answer_id" gorm:"not null;index:idx_answer_history_entity"`
	UserID            uint           `json:"user_id" gorm:"not null;index"`
	EntityType        int            `json:"entity_type" gorm:"not null;index:idx_answer_history_entity"`
	AnswerText        *string        `json:"answer_text,omitempty" gorm:"type:text"`
	SelectedOptionIDs pq.Int64Array  `json:"selected_option_ids,omitempty" gorm:"type:integer[]"`
	SystemPrompt      *string        `json:"system_prompt,omitempty" gorm:"type:text"`
	RejectionReason   string         `json:"rejection_reason" gorm:"type:text;not null"`
	Version           int            `json:"version" gorm:"not null"`
	Status            int            `json:"status" gorm:"not null;default:1"`
	CreatedBy         uint           `json:"created_by"`
	UpdatedBy         *uint          `json:"updated_by,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (AnswerHistory) TableName() string {
	return "answer_histories"
}
