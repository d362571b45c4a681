package repository

import (
	"github.com/hqdang/Polliwog/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepository interface {
	// WithTx returns a repository bound to the given transaction handle.
	WithTx(tx *gorm.DB) AnswerRepository
	Create(answer *model.Answer) error
	Update(answer *model.Answer) error
	FindByID(id uint) (*model.Answer, error)
	FindActive(userID, projectID, questionID uint) (*model.Answer, error)
	FindActiveByUserAndQuestions(userID uint, questionIDs []uint) ([]model.Answer, error)
	// FindActiveByUserAndQuestionsForUpdate takes row locks on the matched
	// answers for the duration of the surrounding transaction, serializing
	// concurrent regenerations of the same answers.
	FindActiveByUserAndQuestionsForUpdate(userID uint, questionIDs []uint) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) WithTx(tx *gorm.DB) AnswerRepository {
	return &answerRepository{db: tx}
}

func (r *answerRepository) Create(answer *model.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) Update(answer *model.Answer) error {
	return r.db.Save(answer).Error
}

func (r *answerRepository) FindByID(id uint) (*model.Answer, error) {
	var answer model.Answer
	if err := r.db.First(&answer, id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) FindActive(userID, projectID, questionID uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.
		Where("user_id = ? AND project_id = ? AND question_id = ? AND status = ?",
			userID, projectID, questionID, model.StatusActive).
		First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) FindActiveByUserAndQuestions(userID uint, questionIDs []uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.
		Where("user_id = ? AND question_id IN ? AND status = ?", userID, questionIDs, model.StatusActive).
		Find(&answers).Error
	return answers, err
}

func (r *answerRepository) FindActiveByUserAndQuestionsForUpdate(userID uint, questionIDs []uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND question_id IN ? AND status = ?", userID, questionIDs, model.StatusActive).
		Find(&answers).Error
	return answers, err
}
