package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/pkg/apperrors"
	"github.com/asadk/maktab/internal/pkg/logger"
)

// HandleAPIError maps service and repository errors to HTTP responses.
// Controllers call it for every non-nil error, keeping status code policy in
// one place.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, messageOf(err, "Resource not found")))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, messageOf(err, "Validation failed")))
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrInvalidReference),
		errors.Is(err, apperrors.ErrHasDependents):
		c.JSON(http.StatusConflict,
			dto.NewErrorResponse(dto.ErrorCodeConstraintViolation, messageOf(err, "Constraint violation")))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeInvalidCredentials, "Invalid username or password"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeExpiredToken, "Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeInvalidToken, "Invalid token"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden,
			dto.NewErrorResponse(dto.ErrorCodeForbidden, "Permission denied"))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

// messageOf pulls the client-facing message off a wrapped application error,
// falling back when the error carries none.
func messageOf(err error, fallback string) string {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
