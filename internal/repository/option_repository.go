package repository

import (
	"github.com/hqdang/Polliwog/internal/model"
	"gorm.io/gorm"
)

type OptionRepository interface {
	Create(option *model.Option) error
	FindByID(id uint) (*model.Option, error)
	CountActiveByQuestion(questionID uint) (int64, error)
	// CountActiveByQuestionAndIDs counts how many of ids are active options
	// of questionID; a shortfall means foreign option ids were submitted.
	CountActiveByQuestionAndIDs(questionID uint, ids []int64) (int64, error)
	Update(option *model.Option) error
	Delete(id uint) error
	DeleteByQuestion(questionID uint) error
}

type optionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) OptionRepository {
	return &optionRepository{db: db}
}

func (r *optionRepository) Create(option *model.Option) error {
	return r.db.Create(option).Error
}

func (r *optionRepository) FindByID(id uint) (*model.Option, error) {
	var option model.Option
	if err := r.db.First(&option, id).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *optionRepository) CountActiveByQuestion(questionID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Option{}).
		Where("question_id = ? AND status = ?", questionID, model.StatusActive).
		Count(&count).Error
	return count, err
}

func (r *optionRepository) CountActiveByQuestionAndIDs(questionID uint, ids []int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Option{}).
		Where("question_id = ? AND id IN ? AND status = ?", questionID, ids, model.StatusActive).
		Count(&count).Error
	return count, err
}

func (r *optionRepository) Update(option *model.Option) error {
	return r.db.Save(option).Error
}

func (r *optionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Option{}, id).Error
}

func (r *optionRepository) DeleteByQuestion(questionID uint) error {
	return r.db.Where("question_id = ?", questionID).Delete(&model.Option{}).Error
}
