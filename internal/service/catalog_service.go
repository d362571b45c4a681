package service

import (
	"fmt"

	"github.com/hqdang/Polliwog/internal/dto"
	"github.com/hqdang/Polliwog/internal/model"
	"github.com/hqdang/Polliwog/internal/pagination"
	"github.com/hqdang/Polliwog/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// CatalogService manages the admin-authored survey structure: titles,
// question groups, questions and their options.
type CatalogService interface {
	CreateTitle(adminID uint, req dto.CreateTitleRequest) (*dto.TitleResponse, error)
	ListTitles() (*dto.TitleListResponse, error)
	CreateQuestionGroup(adminID uint, req dto.CreateQuestionGroupRequest) (*dto.QuestionGroupResponse, error)
	CreateQuestion(adminID uint, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	ListTitleQuestions(titleID uint, page, limit int) (*dto.TitleQuestionsResponse, error)
	ListQuestions(page, limit int) (*dto.QuestionListResponse, error)
	UpdateText(adminID uint, req dto.UpdateTextRequest) error
	AddOption(adminID uint, req dto.AddOptionRequest) (*dto.OptionResponse, error)
	DeleteOption(adminID, optionID uint) error
	DeleteQuestion(adminID, questionID uint) error
}

type catalogService struct {
	titleRepo    repository.TitleRepository
	groupRepo    repository.QuestionGroupRepository
	questionRepo repository.QuestionRepository
	optionRepo   repository.OptionRepository
}

func NewCatalogService(
	titleRepo repository.TitleRepository,
	groupRepo repository.QuestionGroupRepository,
	questionRepo repository.QuestionRepository,
	optionRepo repository.OptionRepository,
) CatalogService {
	return &catalogService{
		titleRepo:    titleRepo,
		groupRepo:    groupRepo,
		questionRepo: questionRepo,
		optionRepo:   optionRepo,
	}
}

func toQuestionResponse(q *model.Question) dto.QuestionResponse {
	resp := dto.QuestionResponse{
		ID:           q.ID,
		TitleID:      q.TitleID,
		GroupID:      q.GroupID,
		QuestionText: q.QuestionText,
		QuestionType: q.QuestionType,
		IsRequired:   q.IsRequired,
	}
	for _, o := range q.Options {
		if o.Status != model.StatusActive {
			continue
		}
		resp.Options = append(resp.Options, dto.OptionResponse{ID: o.ID, OptionText: o.OptionText})
	}
	return resp
}

func (s *catalogService) CreateTitle(adminID uint, req dto.CreateTitleRequest) (*dto.TitleResponse, error) {
	title := model.Title{
		Name:        req.Name,
		Description: req.Description,
		Status:      model.StatusActive,
		CreatedBy:   &adminID,
	}
	if err := s.titleRepo.Create(&title); err != nil {
		return nil, fmt.Errorf("failed to create title: %w", err)
	}

	var resp dto.TitleResponse
	copier.Copy(&resp, &title)
	return &resp, nil
}

func (s *catalogService) ListTitles() (*dto.TitleListResponse, error) {
	titles, err := s.titleRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list titles: %w", err)
	}

	resp := dto.TitleListResponse{
		Message: "Titles retrieved successfully",
		Data:    make([]dto.TitleResponse, 0, len(titles)),
	}
	for i := range titles {
		var t dto.TitleResponse
		copier.Copy(&t, &titles[i])
		resp.Data = append(resp.Data, t)
	}
	return &resp, nil
}

func (s *catalogService) CreateQuestionGroup(adminID uint, req dto.CreateQuestionGroupRequest) (*dto.QuestionGroupResponse, error) {
	if _, err := s.titleRepo.FindActiveByID(req.TitleID); err != nil {
		return nil, ErrTitleNotFound
	}

	group := model.QuestionGroup{
		TitleID:   req.TitleID,
		Name:      req.Name,
		Status:    model.StatusActive,
		CreatedBy: &adminID,
	}
	if err := s.groupRepo.Create(&group); err != nil {
		return nil, fmt.Errorf("failed to create question group: %w", err)
	}
	return &dto.QuestionGroupResponse{ID: group.ID, TitleID: group.TitleID, Name: group.Name}, nil
}

func (s *catalogService) CreateQuestion(adminID uint, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if req.TitleID != nil {
		if _, err := s.titleRepo.FindActiveByID(*req.TitleID); err != nil {
			return nil, ErrTitleNotFound
		}
	}
	if req.GroupID != nil {
		group, err := s.groupRepo.FindActiveByID(*req.GroupID)
		if err != nil {
			return nil, ErrGroupNotFound
		}
		if req.TitleID != nil && group.TitleID != *req.TitleID {
			return nil, ErrGroupNotFound
		}
	}

	question := model.Question{
		TitleID:      req.TitleID,
		GroupID:      req.GroupID,
		QuestionText: req.QuestionText,
		QuestionType: req.QuestionType,
		IsRequired:   req.IsRequired,
		Status:       model.StatusActive,
		CreatedBy:    &adminID,
	}

	if question.HasOptions() {
		if len(req.Options) == 0 {
			return nil, ErrInvalidAnswerPayload
		}
		for _, item := range req.Options {
			question.Options = append(question.Options, model.Option{
				OptionText: item.OptionText,
				Status:     model.StatusActive,
				CreatedBy:  &adminID,
			})
		}
	} else if len(req.Options) > 0 {
		return nil, ErrOptionsNotAllowed
	}

	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Msg("failed to create question")
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	resp := toQuestionResponse(&question)
	return &resp, nil
}

func (s *catalogService) ListTitleQuestions(titleID uint, page, limit int) (*dto.TitleQuestionsResponse, error) {
	title, err := s.titleRepo.FindActiveByID(titleID)
	if err != nil {
		return nil, ErrTitleNotFound
	}

	groups, err := s.groupRepo.FindByTitle(titleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load question groups: %w", err)
	}

	p := pagination.Normalize(page, limit)
	questions, total, err := s.questionRepo.FindByTitle(titleID, p.Limit, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	resp := dto.TitleQuestionsResponse{Pagination: pagination.NewMeta(p, total)}
	copier.Copy(&resp.Title, title)

	byGroup := make(map[uint][]dto.QuestionResponse)
	for i := range questions {
		q := toQuestionResponse(&questions[i])
		if questions[i].GroupID == nil {
			resp.Ungrouped = append(resp.Ungrouped, q)
			continue
		}
		byGroup[*questions[i].GroupID] = append(byGroup[*questions[i].GroupID], q)
	}
	for _, g := range groups {
		resp.Grouped = append(resp.Grouped, dto.GroupedQuestionsResponse{
			GroupID:   g.ID,
			GroupName: g.Name,
			Questions: byGroup[g.ID],
		})
	}
	return &resp, nil
}

func (s *catalogService) ListQuestions(page, limit int) (*dto.QuestionListResponse, error) {
	p := pagination.Normalize(page, limit)
	questions, total, err := s.questionRepo.FindAll(p.Limit, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	resp := dto.QuestionListResponse{
		Questions:  make([]dto.QuestionResponse, 0, len(questions)),
		Pagination: pagination.NewMeta(p, total),
	}
	for i := range questions {
		resp.Questions = append(resp.Questions, toQuestionResponse(&questions[i]))
	}
	return &resp, nil
}

func (s *catalogService) UpdateText(adminID uint, req dto.UpdateTextRequest) error {
	switch req.Type {
	case "question":
		question, err := s.questionRepo.FindActiveByID(req.ID)
		if err != nil {
			return ErrQuestionNotFound
		}
		question.QuestionText = req.Text
		question.UpdatedBy = &adminID
		if err := s.questionRepo.Update(question); err != nil {
			return fmt.Errorf("failed to update question text: %w", err)
		}
	case "option":
		option, err := s.optionRepo.FindByID(req.ID)
		if err != nil || option.Status != model.StatusActive {
			return ErrOptionNotFound
		}
		option.OptionText = req.Text
		option.UpdatedBy = &adminID
		if err := s.optionRepo.Update(option); err != nil {
			return fmt.Errorf("failed to update option text: %w", err)
		}
	}
	return nil
}

func (s *catalogService) AddOption(adminID uint, req dto.AddOptionRequest) (*dto.OptionResponse, error) {
	question, err := s.questionRepo.FindActiveByID(req.QuestionID)
	if err != nil {
		return nil, ErrQuestionNotFound
	}
	if !question.HasOptions() {
		return nil, ErrOptionsNotAllowed
	}

	option := model.Option{
		QuestionID: question.ID,
		OptionText: req.OptionText,
		Status:     model.StatusActive,
		CreatedBy:  &adminID,
	}
	if err := s.optionRepo.Create(&option); err != nil {
		return nil, fmt.Errorf("failed to create option: %w", err)
	}
	return &dto.OptionResponse{ID: option.ID, OptionText: option.OptionText}, nil
}

func (s *catalogService) DeleteOption(adminID, optionID uint) error {
	option, err := s.optionRepo.FindByID(optionID)
	if err != nil || option.Status != model.StatusActive {
		return ErrOptionNotFound
	}

	count, err := s.optionRepo.CountActiveByQuestion(option.QuestionID)
	if err != nil {
		return fmt.Errorf("failed to count options: %w", err)
	}
	if count <= 1 {
		return ErrLastOption
	}
	return s.optionRepo.Delete(optionID)
}

func (s *catalogService) DeleteQuestion(adminID, questionID uint) error {
	if _, err := s.questionRepo.FindActiveByID(questionID); err != nil {
		return ErrQuestionNotFound
	}
	if err := s.optionRepo.DeleteByQuestion(questionID); err != nil {
		return fmt.Errorf("failed to delete question options: %w", err)
	}
	return s.questionRepo.Delete(questionID)
}
