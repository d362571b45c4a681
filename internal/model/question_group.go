package model

import (
	"time"

	"gorm.io/gorm"
)

// QuestionGroup is an optional sub-grouping of questions under a Title.
type QuestionGroup struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	TitleID   uint           `json:"title_id" gorm:"not null;index"`
	Title     Title          `json:"title,omitempty" gorm:"foreignKey:TitleID"`
	Name      string         `json:"name" gorm:"size:255;not null"`
	Status    int            `json:"status" gorm:"not null;default:1"`
	CreatedBy *uint          `json:"created_by,omitempty"`
	UpdatedBy *uint          `json:"updated_by,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
