package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hqdang/Polliwog/internal/dto"
	"github.com/hqdang/Polliwog/internal/model"
	"github.com/hqdang/Polliwog/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AnswerRegenerationService handles batch answer workflows: the initial bulk
// submission of a question group and the regenerate cycle that snapshots the
// previous answers into version history before overwriting them.
type AnswerRegenerationService interface {
	BulkSubmit(ctx context.Context, userID uint, req dto.BulkSubmitAnswersRequest) (*dto.BulkSubmitAnswersResponse, error)
	// Regenerate replaces the caller's existing answers with the submitted
	// batch inside one transaction. Each replaced answer gets a history row
	// whose version continues that answer's sequence, tagged with the
	// rejection reason; batch entries for questions the caller never
	// answered are skipped. A fresh system prompt is generated from the new
	// answers; if generation fails nothing is committed.
	Regenerate(ctx context.Context, userID uint, req dto.RegenerateAnswersRequest) (*dto.RegenerateAnswersResponse, error)
}

type answerRegenerationService struct {
	transactor   Transactor
	answerRepo   repository.AnswerRepository
	historyRepo  repository.AnswerHistoryRepository
	questionRepo repository.QuestionRepository
	optionRepo   repository.OptionRepository
	projectRepo  repository.ProjectRepository
	prompts      SystemPromptGenerator
}

func NewAnswerRegenerationService(
	transactor Transactor,
	answerRepo repository.AnswerRepository,
	historyRepo repository.AnswerHistoryRepository,
	questionRepo repository.QuestionRepository,
	optionRepo repository.OptionRepository,
	projectRepo repository.ProjectRepository,
	prompts SystemPromptGenerator,
) AnswerRegenerationService {
	return &answerRegenerationService{
		transactor:   transactor,
		answerRepo:   answerRepo,
		historyRepo:  historyRepo,
		questionRepo: questionRepo,
		optionRepo:   optionRepo,
		projectRepo:  projectRepo,
		prompts:      prompts,
	}
}

// resolveBatch checks a batch's question ids against the catalog: every id
// must name a distinct active question, all inside groupID when one is given.
// Payloads are validated against their question's type up front so a batch is
// accepted or rejected as a whole.
func (s *answerRegenerationService) resolveBatch(items []dto.AnswerItem, groupID *uint) (map[uint]*model.Question, error) {
	ids := make([]uint, 0, len(items))
	seen := make(map[uint]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.ID]; dup {
			return nil, ErrInvalidQuestionIDs
		}
		seen[item.ID] = struct{}{}
		ids = append(ids, item.ID)
	}

	questions, err := s.questionRepo.FindActiveByIDs(ids, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	if len(questions) != len(ids) {
		return nil, ErrInvalidQuestionIDs
	}

	byID := make(map[uint]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}
	for _, item := range items {
		if err := validateAnswerPayload(s.optionRepo, byID[item.ID], item.AnswerText, item.SelectedOptionIDs); err != nil {
			return nil, err
		}
	}
	return byID, nil
}

func (s *answerRegenerationService) BulkSubmit(ctx context.Context, userID uint, req dto.BulkSubmitAnswersRequest) (*dto.BulkSubmitAnswersResponse, error) {
	if _, err := s.projectRepo.FindActiveByIDAndUser(req.ProjectID, userID); err != nil {
		return nil, ErrProjectNotFound
	}
	if _, err := s.resolveBatch(req.Data, req.GroupID); err != nil {
		return nil, err
	}

	// Items are upserted one by one rather than atomically; a failure partway
	// leaves the earlier items saved, matching single submits of each.
	resp := dto.BulkSubmitAnswersResponse{Message: "Answers submitted successfully"}
	answers := make([]*model.Answer, 0, len(req.Data))
	for _, item := range req.Data {
		existing, err := s.answerRepo.FindActive(userID, req.ProjectID, item.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up answer for question %d: %w", item.ID, err)
		}
		if err == nil {
			setAnswerContent(existing, item.AnswerText, item.SelectedOptionIDs)
			existing.UpdatedBy = &userID
			if err := s.answerRepo.Update(existing); err != nil {
				return nil, fmt.Errorf("failed to update answer for question %d: %w", item.ID, err)
			}
			answers = append(answers, existing)
			resp.Updated++
			continue
		}

		answer := &model.Answer{
			QuestionID: item.ID,
			UserID:     userID,
			ProjectID:  req.ProjectID,
			Status:     model.StatusActive,
			CreatedBy:  &userID,
		}
		setAnswerContent(answer, item.AnswerText, item.SelectedOptionIDs)
		if err := s.answerRepo.Create(answer); err != nil {
			return nil, fmt.Errorf("failed to create answer for question %d: %w", item.ID, err)
		}
		answers = append(answers, answer)
		resp.Created++
	}

	batch := make([]model.Answer, 0, len(answers))
	for _, a := range answers {
		batch = append(batch, *a)
	}
	prompt, err := s.prompts.Generate(ctx, batch)
	if err != nil {
		// Answers are already saved; the prompt can be regenerated later.
		log.Error().Err(err).Uint("userID", userID).Msg("bulk submit: system prompt generation failed")
	} else {
		for _, a := range answers {
			a.SystemPrompt = &prompt
			if err := s.answerRepo.Update(a); err != nil {
				return nil, fmt.Errorf("failed to stamp system prompt: %w", err)
			}
		}
	}

	for _, a := range answers {
		resp.Answers = append(resp.Answers, toAnswerResponse(a))
	}
	return &resp, nil
}

func (s *answerRegenerationService) Regenerate(ctx context.Context, userID uint, req dto.RegenerateAnswersRequest) (*dto.RegenerateAnswersResponse, error) {
	if _, err := s.resolveBatch(req.Data, req.GroupID); err != nil {
		return nil, err
	}

	itemByQuestion := make(map[uint]dto.AnswerItem, len(req.Data))
	questionIDs := make([]uint, 0, len(req.Data))
	for _, item := range req.Data {
		itemByQuestion[item.ID] = item
		questionIDs = append(questionIDs, item.ID)
	}

	resp := dto.RegenerateAnswersResponse{
		Message:  "Answers regenerated successfully",
		Versions: make(map[uint]int, len(req.Data)),
	}

	err := s.transactor.Transaction(func(tx *gorm.DB) error {
		answerRepo := s.answerRepo.WithTx(tx)
		historyRepo := s.historyRepo.WithTx(tx)

		// Row locks serialize concurrent regenerations of the same answers,
		// so the version read below cannot race another writer.
		answers, err := answerRepo.FindActiveByUserAndQuestionsForUpdate(userID, questionIDs)
		if err != nil {
			return fmt.Errorf("failed to lock answers: %w", err)
		}
		// Questions the caller never answered are skipped; only a batch with
		// nothing to regenerate is an error.
		if len(answers) == 0 {
			return ErrNoExistingAnswers
		}

		for i := range answers {
			a := &answers[i]
			latest, err := historyRepo.LatestVersion(a.ID, model.EntityTypeQuestion)
			if err != nil {
				return fmt.Errorf("failed to read history version: %w", err)
			}
			version := latest + 1

			if err := historyRepo.Create(&model.AnswerHistory{
				AnswerID:          a.ID,
				UserID:            a.UserID,
				EntityType:        model.EntityTypeQuestion,
				AnswerText:        a.AnswerText,
				SelectedOptionIDs: a.SelectedOptionIDs,
				SystemPrompt:      a.SystemPrompt,
				RejectionReason:   req.RejectionReason,
				Version:           version,
				Status:            model.StatusActive,
				CreatedBy:         userID,
			}); err != nil {
				return fmt.Errorf("failed to snapshot answer %d: %w", a.ID, err)
			}
			resp.Versions[a.ID] = version

			item := itemByQuestion[a.QuestionID]
			setAnswerContent(a, item.AnswerText, item.SelectedOptionIDs)
			a.UpdatedBy = &userID
		}

		prompt, err := s.prompts.Generate(ctx, answers)
		if err != nil {
			return fmt.Errorf("system prompt generation failed: %w", err)
		}
		for i := range answers {
			answers[i].SystemPrompt = &prompt
			if err := answerRepo.Update(&answers[i]); err != nil {
				return fmt.Errorf("failed to update answer %d: %w", answers[i].ID, err)
			}
			resp.Answers = append(resp.Answers, toAnswerResponse(&answers[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
