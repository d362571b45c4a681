package repository

import (
	"github.com/hqdang/Polliwog/internal/model"
	"gorm.io/gorm"
)

type LlmHistoryRepository interface {
	Create(history *model.LlmHistory) error
	FindByUserScope(userID, projectID, questionID uint) ([]model.LlmHistory, error)
}

type llmHistoryRepository struct {
	db *gorm.DB
}

func NewLlmHistoryRepository(db *gorm.DB) LlmHistoryRepository {
	return &llmHistoryRepository{db: db}
}

func (r *llmHistoryRepository) Create(history *model.LlmHistory) error {
	return r.db.Create(history).Error
}

func (r *llmHistoryRepository) FindByUserScope(userID, projectID, questionID uint) ([]model.LlmHistory, error) {
	var rows []model.LlmHistory
	err := r.db.
		Where("user_id = ? AND project_id = ? AND question_id = ?", userID, projectID, questionID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
