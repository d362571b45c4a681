package repository

import (
	"github.com/hqdang/Polliwog/internal/model"
	"gorm.io/gorm"
)

type QuestionGroupRepository interface {
	Create(group *model.QuestionGroup) error
	FindActiveByID(id uint) (*model.QuestionGroup, error)
	FindByTitle(titleID uint) ([]model.QuestionGroup, error)
}

type questionGroupRepository struct {
	db *gorm.DB
}

func NewQuestionGroupRepository(db *gorm.DB) QuestionGroupRepository {
	return &questionGroupRepository{db: db}
}

func (r *questionGroupRepository) Create(group *model.QuestionGroup) error {
	return r.db.Create(group).Error
}

func (r *questionGroupRepository) FindActiveByID(id uint) (*model.QuestionGroup, error) {
	var group model.QuestionGroup
	err := r.db.
		Where("id = ? AND status = ?", id, model.StatusActive).
		First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *questionGroupRepository) FindByTitle(titleID uint) ([]model.QuestionGroup, error) {
	var groups []model.QuestionGroup
	err := r.db.
		Where("title_id = ? AND status = ?", titleID, model.StatusActive).
		Order("id ASC").
		Find(&groups).Error
	return groups, err
}
