package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/staffhub/internal/app/models/dto"
	"github.com/emre/staffhub/internal/pkg/apperrors"
	"github.com/emre/staffhub/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the response envelope. Driver and
// internal detail is logged but never echoed to the client.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrDepartmentAlreadyExists):
		// legacy behavior: duplicate name is reported as a 200 with Status false
		c.JSON(http.StatusOK, dto.Fail("Department already exists"))
	case errors.Is(err, apperrors.ErrDepartmentNotFound),
		errors.Is(err, apperrors.ErrEmployeeNotFound),
		errors.Is(err, apperrors.ErrTaskNotFound),
		errors.Is(err, apperrors.ErrTeamNotFound),
		errors.Is(err, apperrors.ErrLeaveRequestNotFound),
		errors.Is(err, apperrors.ErrFeedbackNotFound),
		errors.Is(err, apperrors.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrInvalidTaskStatus),
		errors.Is(err, apperrors.ErrInvalidReviewStatus):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.Fail("Invalid credentials"))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
	}
}
