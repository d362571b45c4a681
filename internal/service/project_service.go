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

type ProjectService interface {
	Create(userID uint, req dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	List(userID uint, page, limit int) (*dto.ProjectListResponse, error)
	Get(userID, projectID uint) (*dto.ProjectResponse, error)
	Update(userID, projectID uint, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(userID, projectID uint) error

	// Admin operations are not scoped to the caller's own projects.
	ListUsers(page, limit int) (*dto.UserListResponse, error)
	ListUserProjects(userID uint, page, limit int) (*dto.ProjectListResponse, error)
	AdminGet(projectID uint) (*dto.ProjectResponse, error)
	AdminUpdate(adminID, projectID uint, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	AdminDelete(adminID, projectID uint) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository) ProjectService {
	return &projectService{projectRepo: projectRepo, userRepo: userRepo}
}

func toProjectResponse(project *model.Project) *dto.ProjectResponse {
	var resp dto.ProjectResponse
	copier.Copy(&resp, project)
	return &resp
}

func (s *projectService) Create(userID uint, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	project := model.Project{
		UserID:      userID,
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		CompanyInfo: req.CompanyInfo,
		Status:      model.StatusActive,
		CreatedBy:   &userID,
	}
	if err := s.projectRepo.Create(&project); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("failed to create project")
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return toProjectResponse(&project), nil
}

func (s *projectService) List(userID uint, page, limit int) (*dto.ProjectListResponse, error) {
	p := pagination.Normalize(page, limit)
	projects, total, err := s.projectRepo.FindAllActiveByUser(userID, p.Limit, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	resp := dto.ProjectListResponse{
		Projects:   make([]dto.ProjectResponse, 0, len(projects)),
		Pagination: pagination.NewMeta(p, total),
	}
	for i := range projects {
		resp.Projects = append(resp.Projects, *toProjectResponse(&projects[i]))
	}
	return &resp, nil
}

func (s *projectService) Get(userID, projectID uint) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindActiveByIDAndUser(projectID, userID)
	if err != nil {
		return nil, ErrProjectNotFound
	}
	return toProjectResponse(project), nil
}

func applyProjectUpdate(project *model.Project, req dto.UpdateProjectRequest, actorID uint) {
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Type != nil {
		project.Type = *req.Type
	}
	if req.Description != nil {
		project.Description = req.Description
	}
	if req.CompanyInfo != nil {
		project.CompanyInfo = req.CompanyInfo
	}
	project.UpdatedBy = &actorID
}

func (s *projectService) Update(userID, projectID uint, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindActiveByIDAndUser(projectID, userID)
	if err != nil {
		return nil, ErrProjectNotFound
	}
	applyProjectUpdate(project, req, userID)
	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return toProjectResponse(project), nil
}

func (s *projectService) Delete(userID, projectID uint) error {
	project, err := s.projectRepo.FindActiveByIDAndUser(projectID, userID)
	if err != nil {
		return ErrProjectNotFound
	}
	project.Status = model.StatusDeleted
	project.UpdatedBy = &userID
	if err := s.projectRepo.Update(project); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *projectService) ListUsers(page, limit int) (*dto.UserListResponse, error) {
	p := pagination.Normalize(page, limit)
	users, total, err := s.userRepo.FindAllActive(p.Limit, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	resp := dto.UserListResponse{
		Users:      make([]dto.UserResponse, 0, len(users)),
		Pagination: pagination.NewMeta(p, total),
	}
	for i := range users {
		var u dto.UserResponse
		copier.Copy(&u, &users[i])
		resp.Users = append(resp.Users, u)
	}
	return &resp, nil
}

func (s *projectService) ListUserProjects(userID uint, page, limit int) (*dto.ProjectListResponse, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, ErrUserNotFound
	}
	return s.List(userID, page, limit)
}

func (s *projectService) AdminGet(projectID uint) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindActiveByID(projectID)
	if err != nil {
		return nil, ErrProjectNotFound
	}
	return toProjectResponse(project), nil
}

func (s *projectService) AdminUpdate(adminID, projectID uint, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindActiveByID(projectID)
	if err != nil {
		return nil, ErrProjectNotFound
	}
	applyProjectUpdate(project, req, adminID)
	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return toProjectResponse(project), nil
}

func (s *projectService) AdminDelete(adminID, projectID uint) error {
	project, err := s.projectRepo.FindActiveByID(projectID)
	if err != nil {
		return ErrProjectNotFound
	}
	project.Status = model.StatusDeleted
	project.UpdatedBy = &adminID
	if err := s.projectRepo.Update(project); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
