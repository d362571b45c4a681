package dto

import (
	"encoding/json"
	"time"

	"github.com/hqdang/Polliwog/internal/pagination"
)

type CreateProjectRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=255"`
	Type        int             `json:"type" binding:"required,min=1"`
	Description *string         `json:"description"`
	CompanyInfo json.RawMessage `json:"company_info"`
}

type UpdateProjectRequest struct {
	Name        *string         `json:"name" binding:"omitempty,min=1,max=255"`
	Type        *int            `json:"type" binding:"omitempty,min=1"`
	Description *string         `json:"description"`
	CompanyInfo json.RawMessage `json:"company_info"`
}

type ProjectResponse struct {
	ID          uint            `json:"id"`
	UserID      uint            `json:"user_id"`
	Name        string          `json:"name"`
	Type        int             `json:"type"`
	Description *string         `json:"description,omitempty"`
	CompanyInfo json.RawMessage `json:"company_info,omitempty"`
	Status      int             `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ProjectDetailResponse struct {
	Message string          `json:"message,omitempty"`
	Project ProjectResponse `json:"project"`
}

type ProjectListResponse struct {
	Projects   []ProjectResponse `json:"projects"`
	Pagination pagination.Meta   `json:"pagination"`
}

type UserListResponse struct {
	Users      []UserResponse  `json:"users"`
	Pagination pagination.Meta `json:"pagination"`
}
