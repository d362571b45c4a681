package repository

import (
	"github.com/hqdang/Polliwog/internal/model"
	"gorm.io/gorm"
)

type TitleRepository interface {
	Create(title *model.Title) error
	FindActiveByID(id uint) (*model.Title, error)
	FindAll() ([]model.Title, error)
	Update(title *model.Title) error
}

type titleRepository struct {
	db *gorm.DB
}

func NewTitleRepository(db *gorm.DB) TitleRepository {
	return &titleRepository{db: db}
}

func (r *titleRepository) Create(title *model.Title) error {
	return r.db.Create(title).Error
}

func (r *titleRepository) FindActiveByID(id uint) (*model.Title, error) {
	var title model.Title
	err := r.db.
		Where("id = ? AND status = ?", id, model.StatusActive).
		First(&title).Error
	if err != nil {
		return nil, err
	}
	return &title, nil
}

func (r *titleRepository) FindAll() ([]model.Title, error) {
	var titles []model.Title
	err := r.db.
		Where("status = ?", model.StatusActive).
		Order("created_at DESC").
		Find(&titles).Error
	return titles, err
}

func (r *titleRepository) Update(title *model.Title) error {
	return r.db.Save(title).Error
}
