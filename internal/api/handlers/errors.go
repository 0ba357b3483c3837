package handlers

import (
	"errors"
	"net/http"

	"energy-dashboard/internal/api/models"
	"energy-dashboard/internal/model"
	"energy-dashboard/internal/projection"

	"github.com/gin-gonic/gin"
)

// writeError maps the core's sentinel errors onto the API error envelope.
// All projection failures are deterministic caller problems; retrying the
// same request cannot succeed, so nothing here signals retryability.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_ERROR"

	switch {
	case errors.Is(err, projection.ErrInsufficientData):
		status, code = http.StatusUnprocessableEntity, "INSUFFICIENT_DATA"
	case errors.Is(err, projection.ErrInvalidHorizon):
		status, code = http.StatusBadRequest, "INVALID_HORIZON"
	case errors.Is(err, model.ErrUnknownMethod):
		status, code = http.StatusBadRequest, "UNKNOWN_METHOD"
	case errors.Is(err, model.ErrUnknownPreset):
		status, code = http.StatusBadRequest, "UNKNOWN_PRESET"
	case errors.Is(err, model.ErrMissingParameter):
		status, code = http.StatusBadRequest, "MISSING_PARAMETER"
	}

	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

func writeBadRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
