package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hqdang/Polliwog/internal/controller"
	"github.com/hqdang/Polliwog/internal/dto"
	"github.com/hqdang/Polliwog/internal/service"
	"github.com/rs/zerolog/log"
)

type AnswerController struct {
	answerService       service.AnswerService
	regenerationService service.AnswerRegenerationService
}

func NewAnswerController(
	answerService service.AnswerService,
	regenerationService service.AnswerRegenerationService,
) *AnswerController {
	return &AnswerController{
		answerService:       answerService,
		regenerationService: regenerationService,
	}
}

// SubmitAnswer godoc
// @Summary Submit an answer to one question
// @Description Creates the caller's answer for the question, or overwrites it when one already exists.
// @Tags Answers
// @Accept json
// @Produce json
// @Param answer body dto.SubmitAnswerRequest true "Answer payload"
// @Success 200 {object} dto.SubmitAnswerResponse "Existing answer overwritten"
// @Success 201 {object} dto.SubmitAnswerResponse "Answer created"
// @Failure 400 {object} dto.ErrorResponse "Payload does not match the question type"
// @Failure 404 {object} dto.ErrorResponse "Project or question not found"
// @Security BearerAuth
// @Router /answers/submit [post]
func (ctrl *AnswerController) SubmitAnswer(c *gin.Context) {
	var req dto.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := ctrl.answerService.Submit(controller.CurrentUserID(c), req)
	if err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}

// UpdateAnswer godoc
// @Summary Update an existing answer by id
// @Tags Answers
// @Accept json
// @Produce json
// @Param answer body dto.UpdateAnswerRequest true "Updated answer payload"
// @Success 200 {object} dto.AnswerResponse
// @Failure 403 {object} dto.ErrorResponse "Answer belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Security BearerAuth
// @Router /answers/update [put]
func (ctrl *AnswerController) UpdateAnswer(c *gin.Context) {
	var req dto.UpdateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := ctrl.answerService.Update(controller.CurrentUserID(c), req)
	if err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BulkSubmitAnswers godoc
// @Summary Submit a batch of answers
// @Description Upserts each answer in the batch and stamps a freshly generated system prompt on all of them.
// @Tags Answers
// @Accept json
// @Produce json
// @Param batch body dto.BulkSubmitAnswersRequest true "Batch of answers, optionally scoped to one question group"
// @Success 200 {object} dto.BulkSubmitAnswersResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown question ids or payload mismatch"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /answers/bulk-submit [post]
func (ctrl *AnswerController) BulkSubmitAnswers(c *gin.Context) {
	var req dto.BulkSubmitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("BulkSubmitAnswers: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := ctrl.regenerationService.BulkSubmit(c.Request.Context(), controller.CurrentUserID(c), req)
	if err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegenerateAnswers godoc
// @Summary Regenerate a batch of answers
// @Description Snapshots the current answers into version history with the rejection reason, then overwrites them with the submitted batch. All or nothing.
// @Tags Answers
// @Accept json
// @Produce json
// @Param batch body dto.RegenerateAnswersRequest true "Replacement answers and the reason the previous ones were rejected"
// @Success 200 {object} dto.RegenerateAnswersResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown question ids or payload mismatch"
// @Failure 404 {object} dto.ErrorResponse "No existing answers for the given questions"
// @Security BearerAuth
// @Router /answers/regenerate [post]
func (ctrl *AnswerController) RegenerateAnswers(c *gin.Context) {
	var req dto.RegenerateAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("RegenerateAnswers: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := ctrl.regenerationService.Regenerate(c.Request.Context(), controller.CurrentUserID(c), req)
	if err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SaveLlmHistory godoc
// @Summary Log a rejected LLM-generated answer
// @Description Stores the generated answer the caller rejected for a question, together with the rejection reason.
// @Tags Answers
// @Accept json
// @Produce json
// @Param history body dto.SaveLlmHistoryRequest true "Rejected LLM answer and reason"
// @Success 201 {object} dto.SaveLlmHistoryResponse
// @Failure 404 {object} dto.ErrorResponse "Project or question not found"
// @Security BearerAuth
// @Router /llm-history [post]
func (ctrl *AnswerController) SaveLlmHistory(c *gin.Context) {
	var req dto.SaveLlmHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := ctrl.answerService.SaveLlmHistory(controller.CurrentUserID(c), req)
	if err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListLlmHistory godoc
// @Summary List the caller's rejected LLM answers for a question
// @Tags Answers
// @Produce json
// @Param project_id query int true "Project ID"
// @Param question_id query int true "Question ID"
// @Success 200 {object} dto.LlmHistoryListResponse
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /llm-history [get]
func (ctrl *AnswerController) ListLlmHistory(c *gin.Context) {
	projectID, ok := controller.ParseUintQuery(c, "project_id")
	if !ok {
		return
	}
	questionID, ok := controller.ParseUintQuery(c, "question_id")
	if !ok {
		return
	}

	resp, err := ctrl.answerService.ListLlmHistory(controller.CurrentUserID(c), projectID, questionID)
	if err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListTitleAnswers godoc
// @Summary List the caller's answers for a title
// @Description Returns every question under the title paired with the caller's current answer where one exists.
// @Tags Answers
// @Produce json
// @Param title_id path int true "Title ID"
// @Success 200 {object} dto.UserAnswersResponse
// @Failure 404 {object} dto.ErrorResponse "Title not found"
// @Security BearerAuth
// @Router /titles/{title_id}/answers [get]
func (ctrl *AnswerController) ListTitleAnswers(c *gin.Context) {
	titleID, ok := controller.ParseUintParam(c, "title_id")
	if !ok {
		return
	}

	resp, err := ctrl.answerService.ListByTitle(controller.CurrentUserID(c), titleID)
	if err != nil {
		controller.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
