package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Answer is a user's current response to a question within a project.
// At most one active row exists per (question, user, project); that
// uniqueness is enforced by the upsert logic, not a database constraint.
type Answer struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	QuestionID        uint           `json:"question_id" gorm:"not null;index:idx_answers_scope"`
	UserID            uint           `json:"user_id" gorm:"not null;index:idx_answers_scope"`
	ProjectID         uint           `json:"project_id" gorm:"not null;index:idx_answers_scope"`
	AnswerText        *string        `json:"answer_text,omitempty" gorm:"type:text"`
	SelectedOptionIDs pq.Int64Array  `json:"selected_option_ids,omitempty" gorm:"type:integer[]"`
	SystemPrompt      *string        `json:"system_prompt,omitempty" gorm:"type:text"`
	Status            int            `json:"status" gorm:"not null;default:1"`
	CreatedBy         *uint          `json:"created_by,omitempty"`
	UpdatedBy         *uint          `json:"updated_by,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}
