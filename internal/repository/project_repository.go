package repository

import (
	"github.com/hqdang/Polliwog/internal/model"
	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(project *model.Project) error
	FindActiveByID(id uint) (*model.Project, error)
	FindActiveByIDAndUser(id, userID uint) (*model.Project, error)
	FindAllActiveByUser(userID uint, limit, offset int) ([]model.Project, int64, error)
	Update(project *model.Project) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *model.Project) error {
	return r.db.Create(project).Error
}

func (r *projectRepository) FindActiveByID(id uint) (*model.Project, error) {
	var project model.Project
	err := r.db.
		Where("id = ? AND status = ?", id, model.StatusActive).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindActiveByIDAndUser(id, userID uint) (*model.Project, error) {
	var project model.Project
	err := r.db.
		Where("id = ? AND user_id = ? AND status = ?", id, userID, model.StatusActive).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindAllActiveByUser(userID uint, limit, offset int) ([]model.Project, int64, error) {
	var projects []model.Project
	var count int64

	query := r.db.Model(&model.Project{}).
		Where("user_id = ? AND status = ?", userID, model.StatusActive)
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&projects).Error
	return projects, count, err
}

func (r *projectRepository) Update(project *model.Project) error {
	return r.db.Save(project).Error
}
