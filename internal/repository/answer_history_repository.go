package repository

import (
	"errors"

	"github.com/hqdang/Polliwog/internal/model"
	"gorm.io/gorm"
)

type AnswerHistoryRepository interface {
	WithTx(tx *gorm.DB) AnswerHistoryRepository
	// Create appends a snapshot row. History rows are never updated or
	// deleted afterwards.
	Create(history *model.AnswerHistory) error
	// LatestVersion returns the highest version recorded for the pair, or 0
	// when no history exists yet. Call inside the regeneration transaction,
	// after the answer rows are locked, so the read-then-insert is safe.
	LatestVersion(answerID uint, entityType int) (int, error)
	FindByAnswer(answerID uint) ([]model.AnswerHistory, error)
}

type answerHistoryRepository struct {
	db *gorm.DB
}

func NewAnswerHistoryRepository(db *gorm.DB) AnswerHistoryRepository {
	return &answerHistoryRepository{db: db}
}

func (r *answerHistoryRepository) WithTx(tx *gorm.DB) AnswerHistoryRepository {
	return &answerHistoryRepository{db: tx}
}

func (r *answerHistoryRepository) Create(history *model.AnswerHistory) error {
	return r.db.Create(history).Error
}

func (r *answerHistoryRepository) LatestVersion(answerID uint, entityType int) (int, error) {
	var latest model.AnswerHistory
	err := r.db.
		Where("answer_id = ? AND entity_type = ?", answerID, entityType).
		Order("version DESC").
		First(&latest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return latest.Version, nil
}

func (r *answerHistoryRepository) FindByAnswer(answerID uint) ([]model.AnswerHistory, error) {
	var rows []model.AnswerHistory
	err := r.db.
		Where("answer_id = ?", answerID).
		Order("version DESC").
		Find(&rows).Error
	return rows, err
}
