package model

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type Project struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	User        User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Name        string         `json:"name" gorm:"not null"`
	Type        int            `json:"type" gorm:"not null"`
	Description *string        `json:"description,omitempty" gorm:"type:text"`
	CompanyInfo json.RawMessage `json:"company_info,omitempty" gorm:"type:jsonb"`
	Status      int            `json:"status" gorm:"not null;default:1"` // 1: active, 2: inactive, 3: soft deleted
	CreatedBy   *uint          `json:"created_by,omitempty"`
	UpdatedBy   *uint          `json:"updated_by,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
