package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// RespondError maps the error taxonomy to an HTTP status and writes
// the response. Validation errors come back 400, missing records 404,
// expired sessions 401, in-flight saves 409 and collaborator failures
// 502; anything unclassified is a 500.
func RespondError(c *gin.Context, err error) {
	var ve *ValidationError
	var te *TransportError
	switch {
	case errors.As(err, &ve):
		JSONError(c, http.StatusBadRequest, "Validation failed", ve.Error())
	case errors.Is(err, ErrNotFound):
		JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, ErrSessionExpired):
		JSONError(c, http.StatusUnauthorized, "Session expired", "Please sign in again.")
	case errors.Is(err, ErrSaveInFlight):
		JSONError(c, http.StatusConflict, "Save in flight", err.Error())
	case errors.As(err, &te):
		JSONError(c, http.StatusBadGateway, "Upstream failure", "The request could not be completed. Your changes were not lost; please retry.")
	default:
		JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}
