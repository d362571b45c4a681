package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hqdang/Polliwog/internal/controller"
	"github.com/hqdang/Polliwog/internal/dto"
	"github.com/hqdang/Polliwog/internal/service"
)

// ProjectAdminController exposes cross-tenant project and user management.
type ProjectAdminController struct {
	projectService service.ProjectService
}

func NewProjectAdminController(projectService service.ProjectService) *ProjectAdminController {
	return &ProjectAdminController{projectService: projectService}
}

// ListUsers godoc
// @Summary (Admin) List active users
// @Tags Admin - Users
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} dto.UserListResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (ctrl *ProjectAdminController) ListUsers(c *gin.Context) {
	page, limit := controller.PageQuery(c)
	users, err := ctrl.projectService.ListUsers(page, limit)
	if err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListUserProjects godoc
// @Summary (Admin) List a user's projects
// @Tags Admin - Users
// @Produce json
// @Param user_id path int true "User ID"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} dto.ProjectListResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /admin/users/{user_id}/projects [get]
func (ctrl *ProjectAdminController) ListUserProjects(c *gin.Context) {
	userID, ok := controller.ParseUintParam(c, "user_id")
	if !ok {
		return
	}

	page, limit := controller.PageQuery(c)
	projects, err := ctrl.projectService.ListUserProjects(userID, page, limit)
	if err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject godoc
// @Summary (Admin) Get any project by id
// @Tags Admin - Projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /admin/projects/{id} [get]
func (ctrl *ProjectAdminController) GetProject(c *gin.Context) {
	id, ok := controller.ParseUintParam(c, "id")
	if !ok {
		return
	}

	project, err := ctrl.projectService.AdminGet(id)
	if err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdateProject godoc
// @Summary (Admin) Update any project
// @Tags Admin - Projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /admin/projects/{id} [put]
func (ctrl *ProjectAdminController) UpdateProject(c *gin.Context) {
	id, ok := controller.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	project, err := ctrl.projectService.AdminUpdate(controller.CurrentUserID(c), id, req)
	if err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary (Admin) Soft delete any project
// @Tags Admin - Projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /admin/projects/{id} [delete]
func (ctrl *ProjectAdminController) DeleteProject(c *gin.Context) {
	id, ok := controller.ParseUintParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.projectService.AdminDelete(controller.CurrentUserID(c), id); err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Project deleted successfully"})
}
