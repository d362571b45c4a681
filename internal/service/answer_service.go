package service

import (
	"errors"
	"fmt"

	"github.com/hqdang/Polliwog/internal/dto"
	"github.com/hqdang/Polliwog/internal/model"
	"github.com/hqdang/Polliwog/internal/repository"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type AnswerService interface {
	// Submit upserts the caller's answer for one question: submitting twice
	// for the same (question, project) overwrites the existing row instead of
	// creating a second one.
	Submit(userID uint, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	Update(userID uint, req dto.UpdateAnswerRequest) (*dto.AnswerResponse, error)
	ListByTitle(userID, titleID uint) (*dto.UserAnswersResponse, error)
	// SaveLlmHistory logs an LLM-generated answer the caller rejected, with
	// the reason; ListLlmHistory reads the log back per (project, question).
	SaveLlmHistory(userID uint, req dto.SaveLlmHistoryRequest) (*dto.SaveLlmHistoryResponse, error)
	ListLlmHistory(userID, projectID, questionID uint) (*dto.LlmHistoryListResponse, error)
}

type answerService struct {
	answerRepo     repository.AnswerRepository
	questionRepo   repository.QuestionRepository
	optionRepo     repository.OptionRepository
	projectRepo    repository.ProjectRepository
	titleRepo      repository.TitleRepository
	llmHistoryRepo repository.LlmHistoryRepository
}

func NewAnswerService(
	answerRepo repository.AnswerRepository,
	questionRepo repository.QuestionRepository,
	optionRepo repository.OptionRepository,
	projectRepo repository.ProjectRepository,
	titleRepo repository.TitleRepository,
	llmHistoryRepo repository.LlmHistoryRepository,
) AnswerService {
	return &answerService{
		answerRepo:     answerRepo,
		questionRepo:   questionRepo,
		optionRepo:     optionRepo,
		projectRepo:    projectRepo,
		titleRepo:      titleRepo,
		llmHistoryRepo: llmHistoryRepo,
	}
}

func toAnswerResponse(a *model.Answer) dto.AnswerResponse {
	return dto.AnswerResponse{
		ID:                a.ID,
		QuestionID:        a.QuestionID,
		ProjectID:         a.ProjectID,
		AnswerText:        a.AnswerText,
		SelectedOptionIDs: []int64(a.SelectedOptionIDs),
		SystemPrompt:      a.SystemPrompt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// setAnswerContent overwrites the answer's payload, clearing whichever shape
// the new payload does not use.
func setAnswerContent(a *model.Answer, answerText *string, optionIDs []int64) {
	if len(optionIDs) > 0 {
		a.AnswerText = nil
		a.SelectedOptionIDs = pq.Int64Array(optionIDs)
	} else {
		a.AnswerText = answerText
		a.SelectedOptionIDs = nil
	}
}

func (s *answerService) Submit(userID uint, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	if _, err := s.projectRepo.FindActiveByIDAndUser(req.ProjectID, userID); err != nil {
		return nil, ErrProjectNotFound
	}
	question, err := s.questionRepo.FindActiveByID(req.QuestionID)
	if err != nil {
		return nil, ErrQuestionNotFound
	}
	if err := validateAnswerPayload(s.optionRepo, question, req.AnswerText, req.SelectedOptionIDs); err != nil {
		return nil, err
	}

	existing, err := s.answerRepo.FindActive(userID, req.ProjectID, req.QuestionID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up answer: %w", err)
	}
	if err == nil {
		setAnswerContent(existing, req.AnswerText, req.SelectedOptionIDs)
		existing.UpdatedBy = &userID
		if err := s.answerRepo.Update(existing); err != nil {
			return nil, fmt.Errorf("failed to update answer: %w", err)
		}
		return &dto.SubmitAnswerResponse{Message: "Answer updated successfully", Answer: toAnswerResponse(existing)}, nil
	}

	answer := model.Answer{
		QuestionID: req.QuestionID,
		UserID:     userID,
		ProjectID:  req.ProjectID,
		Status:     model.StatusActive,
		CreatedBy:  &userID,
	}
	setAnswerContent(&answer, req.AnswerText, req.SelectedOptionIDs)
	if err := s.answerRepo.Create(&answer); err != nil {
		return nil, fmt.Errorf("failed to create answer: %w", err)
	}
	return &dto.SubmitAnswerResponse{Message: "Answer submitted successfully", Answer: toAnswerResponse(&answer), Created: true}, nil
}

func (s *answerService) Update(userID uint, req dto.UpdateAnswerRequest) (*dto.AnswerResponse, error) {
	answer, err := s.answerRepo.FindByID(req.AnswerID)
	if err != nil || answer.Status != model.StatusActive {
		return nil, ErrAnswerNotFound
	}
	if answer.UserID != userID {
		return nil, ErrForbidden
	}
	if answer.ProjectID != req.ProjectID {
		return nil, ErrAnswerNotFound
	}

	question, err := s.questionRepo.FindActiveByID(answer.QuestionID)
	if err != nil {
		return nil, ErrQuestionNotFound
	}
	if err := validateAnswerPayload(s.optionRepo, question, req.AnswerText, req.SelectedOptionIDs); err != nil {
		return nil, err
	}

	setAnswerContent(answer, req.AnswerText, req.SelectedOptionIDs)
	answer.UpdatedBy = &userID
	if err := s.answerRepo.Update(answer); err != nil {
		return nil, fmt.Errorf("failed to update answer: %w", err)
	}
	resp := toAnswerResponse(answer)
	return &resp, nil
}

func toLlmHistoryResponse(h *model.LlmHistory) dto.LlmHistoryResponse {
	return dto.LlmHistoryResponse{
		ID:              h.ID,
		QuestionID:      h.QuestionID,
		ProjectID:       h.ProjectID,
		LlmAnswer:       h.LlmAnswer,
		RejectionReason: h.RejectionReason,
		CreatedAt:       h.CreatedAt,
	}
}

func (s *answerService) SaveLlmHistory(userID uint, req dto.SaveLlmHistoryRequest) (*dto.SaveLlmHistoryResponse, error) {
	if _, err := s.projectRepo.FindActiveByIDAndUser(req.ProjectID, userID); err != nil {
		return nil, ErrProjectNotFound
	}
	if _, err := s.questionRepo.FindActiveByID(req.QuestionID); err != nil {
		return nil, ErrQuestionNotFound
	}

	history := model.LlmHistory{
		QuestionID:      req.QuestionID,
		UserID:          userID,
		ProjectID:       req.ProjectID,
		LlmAnswer:       req.LlmAnswer,
		RejectionReason: req.RejectionReason,
		CreatedBy:       userID,
	}
	if err := s.llmHistoryRepo.Create(&history); err != nil {
		return nil, fmt.Errorf("failed to save llm history: %w", err)
	}
	return &dto.SaveLlmHistoryResponse{
		Message: "LLM history saved successfully",
		History: toLlmHistoryResponse(&history),
	}, nil
}

func (s *answerService) ListLlmHistory(userID, projectID, questionID uint) (*dto.LlmHistoryListResponse, error) {
	if _, err := s.projectRepo.FindActiveByIDAndUser(projectID, userID); err != nil {
		return nil, ErrProjectNotFound
	}

	rows, err := s.llmHistoryRepo.FindByUserScope(userID, projectID, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load llm history: %w", err)
	}
	resp := dto.LlmHistoryListResponse{History: make([]dto.LlmHistoryResponse, 0, len(rows))}
	for i := range rows {
		resp.History = append(resp.History, toLlmHistoryResponse(&rows[i]))
	}
	return &resp, nil
}

func (s *answerService) ListByTitle(userID, titleID uint) (*dto.UserAnswersResponse, error) {
	title, err := s.titleRepo.FindActiveByID(titleID)
	if err != nil {
		return nil, ErrTitleNotFound
	}

	// Limit -1 cancels the page clause; the per-title listing is not paged.
	questions, _, err := s.questionRepo.FindByTitle(titleID, -1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	questionIDs := make([]uint, 0, len(questions))
	for i := range questions {
		questionIDs = append(questionIDs, questions[i].ID)
	}

	var answers []model.Answer
	if len(questionIDs) > 0 {
		answers, err = s.answerRepo.FindActiveByUserAndQuestions(userID, questionIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load answers: %w", err)
		}
	}
	byQuestion := make(map[uint]*model.Answer, len(answers))
	for i := range answers {
		byQuestion[answers[i].QuestionID] = &answers[i]
	}

	resp := dto.UserAnswersResponse{
		Title: dto.TitleResponse{
			ID:          title.ID,
			Name:        title.Name,
			Description: title.Description,
			CreatedAt:   title.CreatedAt,
		},
		Answers: make([]dto.UserAnswerView, 0, len(questions)),
	}
	for i := range questions {
		view := dto.UserAnswerView{Question: toQuestionResponse(&questions[i])}
		if a, ok := byQuestion[questions[i].ID]; ok {
			ar := toAnswerResponse(a)
			view.Answer = &ar
		}
		resp.Answers = append(resp.Answers, view)
	}
	return &resp, nil
}
