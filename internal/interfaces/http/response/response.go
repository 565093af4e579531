package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "token-market.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response, mapping domain errors to HTTP statuses
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"error": appErr.Message})
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		status, message = http.StatusNotFound, "resource not found"
	case errors.Is(err, domainerrors.ErrBadRequest):
		status, message = http.StatusBadRequest, "invalid request"
	case errors.Is(err, domainerrors.ErrUnauthorized):
		status, message = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domainerrors.ErrForbidden), errors.Is(err, domainerrors.ErrKYCNotApproved):
		status, message = http.StatusForbidden, "forbidden"
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		status, message = http.StatusConflict, "resource already exists"
	case errors.Is(err, domainerrors.ErrOfferNotActive):
		status, message = http.StatusBadRequest, "offer is not active"
	case errors.Is(err, domainerrors.ErrInsufficientQuantity):
		status, message = http.StatusBadRequest, "insufficient quantity available"
	case errors.Is(err, domainerrors.ErrUpstreamFailure):
		status, message = http.StatusInternalServerError, "payment provider unavailable"
	}

	c.JSON(status, gin.H{"error": message})
}

// ErrorWithStatus sends an error response with an explicit status and message
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
