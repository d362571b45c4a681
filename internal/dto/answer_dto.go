package dto

import "time"

type SubmitAnswerRequest struct {
	QuestionID        uint    `json:"question_id" binding:"required,min=1"`
	ProjectID         uint    `json:"project_id" binding:"required,min=1"`
	AnswerText        *string `json:"answer_text" binding:"omitempty,min=1,max=5000"`
	SelectedOptionIDs []int64 `json:"selected_option_ids" binding:"omitempty,dive,min=1"`
}

type UpdateAnswerRequest struct {
	AnswerID          uint    `json:"answer_id" binding:"required,min=1"`
	ProjectID         uint    `json:"project_id" binding:"required,min=1"`
	AnswerText        *string `json:"answer_text" binding:"omitempty,min=1,max=5000"`
	SelectedOptionIDs []int64 `json:"selected_option_ids" binding:"omitempty,dive,min=1"`
}

// AnswerItem is one entry of a bulk-submit or regenerate batch; ID is the
// question id the answer targets.
type AnswerItem struct {
	ID                uint    `json:"id" binding:"required,min=1"`
	AnswerText        *string `json:"answer_text" binding:"omitempty,min=1,max=5000"`
	SelectedOptionIDs []int64 `json:"selected_option_ids" binding:"omitempty,dive,min=1"`
}

type BulkSubmitAnswersRequest struct {
	Data      []AnswerItem `json:"data" binding:"required,min=1,dive"`
	GroupID   *uint        `json:"group_id" binding:"omitempty,min=1"`
	ProjectID uint         `json:"project_id" binding:"required,min=1"`
}

type RegenerateAnswersRequest struct {
	Data            []AnswerItem `json:"data" binding:"required,min=1,dive"`
	GroupID         *uint        `json:"group_id" binding:"omitempty,min=1"`
	RejectionReason string       `json:"rejection_reason" binding:"required,min=1"`
}

type AnswerResponse struct {
	ID                uint      `json:"id"`
	QuestionID        uint      `json:"question_id"`
	ProjectID         uint      `json:"project_id"`
	AnswerText        *string   `json:"answer_text,omitempty"`
	SelectedOptionIDs []int64   `json:"selected_option_ids,omitempty"`
	SystemPrompt      *string   `json:"system_prompt,omitempty"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// SubmitAnswerResponse reports the stored answer; Created distinguishes a
// fresh insert from an overwrite of the existing row.
type SubmitAnswerResponse struct {
	Message string         `json:"message"`
	Answer  AnswerResponse `json:"answer"`
	Created bool           `json:"created"`
}

type BulkSubmitAnswersResponse struct {
	Message string           `json:"message"`
	Answers []AnswerResponse `json:"answers"`
	Updated int              `json:"updated"`
	Created int              `json:"created"`
}

// RegenerateAnswersResponse reports the rewritten answers plus the history
// version each snapshot was stored under, keyed by answer id.
type RegenerateAnswersResponse struct {
	Message  string           `json:"message"`
	Answers  []AnswerResponse `json:"answers"`
	Versions map[uint]int     `json:"versions"`
}

type SaveLlmHistoryRequest struct {
	QuestionID      uint   `json:"question_id" binding:"required,min=1"`
	ProjectID       uint   `json:"project_id" binding:"required,min=1"`
	LlmAnswer       string `json:"llm_answer" binding:"required,min=1,max=5000"`
	RejectionReason string `json:"rejection_reason" binding:"required,min=1,max=500"`
}

type LlmHistoryResponse struct {
	ID              uint      `json:"id"`
	QuestionID      uint      `json:"question_id"`
	ProjectID       uint      `json:"project_id"`
	LlmAnswer       string    `json:"llm_answer"`
	RejectionReason string    `json:"rejection_reason"`
	CreatedAt       time.Time `json:"created_at"`
}

type SaveLlmHistoryResponse struct {
	Message string             `json:"message"`
	History LlmHistoryResponse `json:"history"`
}

type LlmHistoryListResponse struct {
	History []LlmHistoryResponse `json:"history"`
}

// UserAnswerView pairs a question with the caller's current answer for the
// per-title listing endpoint.
type UserAnswerView struct {
	Question QuestionResponse `json:"question"`
	Answer   *AnswerResponse  `json:"answer,omitempty"`
}

type UserAnswersResponse struct {
	Title   TitleResponse    `json:"title"`
	Answers []UserAnswerView `json:"answers"`
}
