package repository

import (
	"github.com/hqdang/Polliwog/internal/model"
	"gorm.io/gorm"
)

type TokenRepository interface {
	Create(token *model.Token) error
	Find(userID uint, token, tokenType string) (*model.Token, error)
	DeleteByUserAndType(userID uint, tokenType string) error
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(token *model.Token) error {
	return r.db.Create(token).Error
}

func (r *tokenRepository) Find(userID uint, token, tokenType string) (*model.Token, error) {
	var row model.Token
	err := r.db.
		Where("user_id = ? AND token = ? AND type = ?", userID, token, tokenType).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *tokenRepository) DeleteByUserAndType(userID uint, tokenType string) error {
	return r.db.Where("user_id = ? AND type = ?", userID, tokenType).Delete(&model.Token{}).Error
}
