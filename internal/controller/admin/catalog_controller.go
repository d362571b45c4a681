package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hqdang/Polliwog/internal/controller"
	"github.com/hqdang/Polliwog/internal/dto"
	"github.com/hqdang/Polliwog/internal/service"
	"github.com/rs/zerolog/log"
)

// CatalogController exposes the admin endpoints managing titles, question
// groups, questions and options.
type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// CreateTitle godoc
// @Summary (Admin) Create a survey title
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param title body dto.CreateTitleRequest true "Title data"
// @Success 201 {object} dto.TitleResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /admin/titles [post]
func (ctrl *CatalogController) CreateTitle(c *gin.Context) {
	var req dto.CreateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateTitle: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	title, err := ctrl.catalogService.CreateTitle(controller.CurrentUserID(c), req)
	if err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, title)
}

// ListTitles godoc
// @Summary (Admin) List all active titles
// @Tags Admin - Catalog
// @Produce json
// @Success 200 {object} dto.TitleListResponse
// @Security BearerAuth
// @Router /admin/titles [get]
func (ctrl *CatalogController) ListTitles(c *gin.Context) {
	titles, err := ctrl.catalogService.ListTitles()
	if err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, titles)
}

// CreateQuestionGroup godoc
// @Summary (Admin) Create a question group under a title
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param group body dto.CreateQuestionGroupRequest true "Group data"
// @Success 201 {object} dto.QuestionGroupResponse
// @Failure 404 {object} dto.ErrorResponse "Title not found"
// @Security BearerAuth
// @Router /admin/question-groups [post]
func (ctrl *CatalogController) CreateQuestionGroup(c *gin.Context) {
	var req dto.CreateQuestionGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	group, err := ctrl.catalogService.CreateQuestionGroup(controller.CurrentUserID(c), req)
	if err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

// CreateQuestion godoc
// @Summary (Admin) Create a question, optionally with its options
// @Description Radio, select and checkbox questions must include at least one option; text and llm questions take none.
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Options do not match the question type"
// @Failure 404 {object} dto.ErrorResponse "Title or group not found"
// @Security BearerAuth
// @Router /admin/questions [post]
func (ctrl *CatalogController) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuestion: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := ctrl.catalogService.CreateQuestion(controller.CurrentUserID(c), req)
	if err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

// ListTitleQuestions godoc
// @Summary (Admin) List a title's questions grouped by question group
// @Tags Admin - Catalog
// @Produce json
// @Param title_id path int true "Title ID"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} dto.TitleQuestionsResponse
// @Failure 404 {object} dto.ErrorResponse "Title not found"
// @Security BearerAuth
// @Router /admin/titles/{title_id}/questions [get]
func (ctrl *CatalogController) ListTitleQuestions(c *gin.Context) {
	titleID, ok := controller.ParseUintParam(c, "title_id")
	if !ok {
		return
	}

	page, limit := controller.PageQuery(c)
	resp, err := ctrl.catalogService.ListTitleQuestions(titleID, page, limit)
	if err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListQuestions godoc
// @Summary (Admin) List all active questions
// @Tags Admin - Catalog
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} dto.QuestionListResponse
// @Security BearerAuth
// @Router /admin/questions [get]
func (ctrl *CatalogController) ListQuestions(c *gin.Context) {
	page, limit := controller.PageQuery(c)
	resp, err := ctrl.catalogService.ListQuestions(page, limit)
	if err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateText godoc
// @Summary (Admin) Update the text of a question or option
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param update body dto.UpdateTextRequest true "Target type, id and new text"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Question or option not found"
// @Security BearerAuth
// @Router /admin/catalog/text [put]
func (ctrl *CatalogController) UpdateText(c *gin.Context) {
	var req dto.UpdateTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := ctrl.catalogService.UpdateText(controller.CurrentUserID(c), req); err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Text updated successfully"})
}

// AddOption godoc
// @Summary (Admin) Add an option to a question
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param option body dto.AddOptionRequest true "Question id and option text"
// @Success 201 {object} dto.OptionResponse
// @Failure 400 {object} dto.ErrorResponse "Question type does not take options"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Security BearerAuth
// @Router /admin/options [post]
func (ctrl *CatalogController) AddOption(c *gin.Context) {
	var req dto.AddOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	option, err := ctrl.catalogService.AddOption(controller.CurrentUserID(c), req)
	if err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, option)
}

// DeleteOption godoc
// @Summary (Admin) Delete an option
// @Description Refuses to delete a question's last remaining option.
// @Tags Admin - Catalog
// @Produce json
// @Param id path int true "Option ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Option is the question's last one"
// @Failure 404 {object} dto.ErrorResponse "Option not found"
// @Security BearerAuth
// @Router /admin/options/{id} [delete]
func (ctrl *CatalogController) DeleteOption(c *gin.Context) {
	id, ok := controller.ParseUintParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.catalogService.DeleteOption(controller.CurrentUserID(c), id); err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Option deleted successfully"})
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question and its options
// @Tags Admin - Catalog
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Security BearerAuth
// @Router /admin/questions/{id} [delete]
func (ctrl *CatalogController) DeleteQuestion(c *gin.Context) {
	id, ok := controller.ParseUintParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.catalogService.DeleteQuestion(controller.CurrentUserID(c), id); err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Question deleted successfully"})
}
