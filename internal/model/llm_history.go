package model

import "time"

// LlmHistory logs an LLM-generated answer the user rejected for a question,
// together with the reason, so rejected generations stay auditable per
// (question, project).
type LlmHistory struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	QuestionID      uint      `json:"question_id" gorm:"not null;index:idx_llm_history_scope"`
	UserID          uint      `json:"user_id" gorm:"not null;index"`
	ProjectID       uint      `json:"project_id" gorm:"not null;index:idx_llm_history_scope"`
	LlmAnswer       string    `json:"llm_answer" gorm:"type:text;not null"`
	RejectionReason string    `json:"rejection_reason" gorm:"type:text;not null"`
	CreatedBy       uint      `json:"created_by" gorm:"not null"`
	UpdatedBy       *uint     `json:"updated_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (LlmHistory) TableName() string {
	return "llm_histories"
}
