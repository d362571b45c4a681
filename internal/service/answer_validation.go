package service

import (
	"fmt"

	"github.com/hqdang/Polliwog/internal/model"
	"github.com/hqdang/Polliwog/internal/repository"
)

// validateAnswerPayload enforces the shape an answer must have for its
// question type: exactly one of answerText / selectedOptionIDs is present,
// text and llm questions take text, option questions take option ids owned by
// the question, and radio questions take exactly one.
func validateAnswerPayload(optionRepo repository.OptionRepository, question *model.Question, answerText *string, optionIDs []int64) error {
	hasText := answerText != nil && *answerText != ""
	hasOptions := len(optionIDs) > 0
	if hasText == hasOptions {
		return ErrInvalidAnswerPayload
	}

	if !question.HasOptions() {
		if !hasText {
			return ErrInvalidAnswerPayload
		}
		return nil
	}

	if !hasOptions {
		return ErrInvalidAnswerPayload
	}
	if question.QuestionType == model.QuestionTypeRadio && len(optionIDs) != 1 {
		return ErrInvalidAnswerPayload
	}

	unique := make(map[int64]struct{}, len(optionIDs))
	for _, id := range optionIDs {
		unique[id] = struct{}{}
	}
	if len(unique) != len(optionIDs) {
		return ErrInvalidOptionIDs
	}

	count, err := optionRepo.CountActiveByQuestionAndIDs(question.ID, optionIDs)
	if err != nil {
		return fmt.Errorf("failed to verify option ids: %w", err)
	}
	if count != int64(len(optionIDs)) {
		return ErrInvalidOptionIDs
	}
	return nil
}
