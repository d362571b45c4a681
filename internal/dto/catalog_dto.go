package dto

import (
	"time"

	"github.com/hqdang/Polliwog/internal/pagination"
)

type CreateTitleRequest struct {
	Name        string  `json:"name" binding:"required,min=3,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

type CreateQuestionGroupRequest struct {
	TitleID uint   `json:"title_id" binding:"required,min=1"`
	Name    string `json:"name" binding:"required,min=3,max=255"`
}

type CreateOptionItem struct {
	OptionText string `json:"option_text" binding:"required,min=1,max=255"`
}

type CreateQuestionRequest struct {
	TitleID      *uint              `json:"title_id" binding:"omitempty,min=1"`
	GroupID      *uint              `json:"group_id" binding:"omitempty,min=1"`
	QuestionText string             `json:"question_text" binding:"required,min=1,max=500"`
	QuestionType string             `json:"question_type" binding:"required,oneof=text radio select checkbox llm"`
	IsRequired   bool               `json:"is_required"`
	Options      []CreateOptionItem `json:"options" binding:"omitempty,dive"`
}

type UpdateTextRequest struct {
	Type string `json:"type" binding:"required,oneof=question option"`
	ID   uint   `json:"id" binding:"required,min=1"`
	Text string `json:"text" binding:"required,min=1,max=500"`
}

type AddOptionRequest struct {
	QuestionID uint   `json:"question_id" binding:"required,min=1"`
	OptionText string `json:"option_text" binding:"required,min=1,max=100"`
}

type OptionResponse struct {
	ID         uint   `json:"id"`
	OptionText string `json:"option_text"`
}

type QuestionResponse struct {
	ID           uint             `json:"id"`
	TitleID      *uint            `json:"title_id,omitempty"`
	GroupID      *uint            `json:"group_id,omitempty"`
	QuestionText string           `json:"question_text"`
	QuestionType string           `json:"question_type"`
	IsRequired   bool             `json:"is_required"`
	Options      []OptionResponse `json:"options,omitempty"`
}

type TitleResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type QuestionGroupResponse struct {
	ID      uint   `json:"id"`
	TitleID uint   `json:"title_id"`
	Name    string `json:"name"`
}

type GroupedQuestionsResponse struct {
	GroupID   uint               `json:"group_id"`
	GroupName string             `json:"group_name"`
	Questions []QuestionResponse `json:"questions"`
}

// TitleQuestionsResponse lists a title's questions split into grouped and
// ungrouped sets, mirroring how the survey is rendered.
type TitleQuestionsResponse struct {
	Title      TitleResponse              `json:"title"`
	Grouped    []GroupedQuestionsResponse `json:"grouped_questions"`
	Ungrouped  []QuestionResponse         `json:"ungrouped_questions"`
	Pagination pagination.Meta            `json:"pagination"`
}

type QuestionListResponse struct {
	Questions  []QuestionResponse `json:"questions"`
	Pagination pagination.Meta    `json:"pagination"`
}

type TitleListResponse struct {
	Message string          `json:"message"`
	Data    []TitleResponse `json:"data"`
}
