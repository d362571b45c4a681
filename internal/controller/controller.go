package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hqdang/Polliwog/internal/dto"
	"github.com/hqdang/Polliwog/internal/middleware"
	"github.com/hqdang/Polliwog/internal/service"
	"github.com/rs/zerolog/log"
)

// HandleServiceError maps the service layer's sentinel errors to HTTP
// responses. Anything unrecognized is logged and reported as a 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmailExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidOtp),
		errors.Is(err, service.ErrOtpExpired),
		errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrEmailNotVerified),
		errors.Is(err, service.ErrAccountInactive),
		errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrProjectNotFound),
		errors.Is(err, service.ErrTitleNotFound),
		errors.Is(err, service.ErrGroupNotFound),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrOptionNotFound),
		errors.Is(err, service.ErrAnswerNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrNoExistingAnswers):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrInvalidAnswerPayload),
		errors.Is(err, service.ErrInvalidOptionIDs),
		errors.Is(err, service.ErrInvalidQuestionIDs),
		errors.Is(err, service.ErrOptionsNotAllowed),
		errors.Is(err, service.ErrLastOption):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
	}
}

// CurrentUserID reads the authenticated user's id stored by the auth
// middleware. Routes using it must be behind middleware.Auth.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(middleware.ContextUserIDKey)
	id, _ := v.(uint)
	return id
}

// ParseUintParam parses a numeric path parameter, responding 400 on failure.
func ParseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}

// ParseUintQuery parses a numeric query parameter, responding 400 when it is
// missing or malformed.
func ParseUintQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}

// PageQuery reads the page/limit query parameters, leaving normalization of
// out-of-range values to the pagination package.
func PageQuery(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}
