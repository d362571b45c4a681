package repository

import (
	"github.com/hqdang/Polliwog/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindActiveByID(id uint) (*model.Question, error)
	// FindActiveByIDs returns the active questions among ids, optionally
	// restricted to one group. Callers compare the result count against the
	// requested count to detect missing/inactive/misgrouped ids.
	FindActiveByIDs(ids []uint, groupID *uint) ([]model.Question, error)
	FindByTitle(titleID uint, limit, offset int) ([]model.Question, int64, error)
	FindAll(limit, offset int) ([]model.Question, int64, error)
	Update(question *model.Question) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	// Creates associated Options in the same statement batch when populated.
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.Preload("Options").First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindActiveByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.Preload("Options").
		Where("id = ? AND status = ?", id, model.StatusActive).
		First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindActiveByIDs(ids []uint, groupID *uint) ([]model.Question, error) {
	var questions []model.Question
	query := r.db.Preload("Options").
		Where("id IN ? AND status = ?", ids, model.StatusActive)
	if groupID != nil {
		query = query.Where("group_id = ?", *groupID)
	}
	err := query.Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindByTitle(titleID uint, limit, offset int) ([]model.Question, int64, error) {
	var questions []model.Question
	var count int64

	query := r.db.Model(&model.Question{}).
		Where("title_id = ? AND status = ?", titleID, model.StatusActive)
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Options").
		Order("sequence_no ASC NULLS LAST, id ASC").
		Limit(limit).Offset(offset).
		Find(&questions).Error
	return questions, count, err
}

func (r *questionRepository) FindAll(limit, offset int) ([]model.Question, int64, error) {
	var questions []model.Question
	var count int64

	query := r.db.Model(&model.Question{}).Where("status = ?", model.StatusActive)
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Options").
		Order("id ASC").
		Limit(limit).Offset(offset).
		Find(&questions).Error
	return questions, count, err
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Question{}, id).Error
}
