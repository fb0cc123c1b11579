package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/fx_deal_system/internal/apperrors"
	"github.com/SscSPs/fx_deal_system/internal/dto"
	"github.com/SscSPs/fx_deal_system/internal/middleware"
	"github.com/SscSPs/fx_deal_system/internal/platform/validation"
	"github.com/gin-gonic/gin"
)

const (
	errorTitleInvalidDeal      = "Invalid Deal"
	errorTitleDuplicateDeal    = "Duplicate Deal"
	errorTitleValidationFailed = "Validation Failed"
	errorTitleIntegrity        = "Data Integrity Violation"
	errorTitleInternal         = "Internal Server Error"

	messageIntegrity  = "The request conflicts with data that is already stored."
	messageUnexpected = "An unexpected error occurred. Please try again later."
)

// writeError maps the application error taxonomy to an HTTP response.
// Anything outside the taxonomy becomes a generic 500 without internal detail. Missing deals
// arrive as InvalidDeal, so a bare apperrors.ErrNotFound is unexpected here.
func writeError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromContext(c)
	now := time.Now()

	var fields apperrors.ValidationErrors
	switch {
	case errors.As(err, &fields):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(now, http.StatusBadRequest, errorTitleValidationFailed, fields))
	case errors.Is(err, apperrors.ErrDuplicateDeal):
		logger.Warn("Duplicate deal error", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.NewErrorResponse(now, http.StatusConflict, errorTitleDuplicateDeal, err.Error()))
	case errors.Is(err, apperrors.ErrInvalidDeal):
		logger.Warn("Invalid deal error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(now, http.StatusBadRequest, errorTitleInvalidDeal, err.Error()))
	case errors.Is(err, apperrors.ErrIntegrityViolation), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Data integrity violation", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.NewErrorResponse(now, http.StatusConflict, errorTitleIntegrity, messageIntegrity))
	default:
		logger.Error("Unexpected error occurred", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(now, http.StatusInternalServerError, errorTitleInternal, messageUnexpected))
	}
}

// writeBindError reports a request body that could not be decoded or failed shape validation.
func writeBindError(c *gin.Context, err error) {
	fields, ok := validation.FieldErrors(err)
	if !ok {
		fields = apperrors.ValidationErrors{validation.BodyField: "Malformed request body: " + err.Error()}
	}
	writeError(c, fields)
}

// RecoveryHandler turns a panic into the generic 500 response. Use with gin.CustomRecovery.
func RecoveryHandler(c *gin.Context, recovered any) {
	writeError(c, fmt.Errorf("panic recovered: %v", recovered))
	c.Abort()
}
