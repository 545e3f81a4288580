package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dashpulse/internal/domain/dto"
	"github.com/guttosm/dashpulse/internal/domain/models"
	"github.com/guttosm/dashpulse/internal/graph"
)

// StatusFor maps a domain error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, graph.ErrTooManyGraphs):
		return http.StatusTooManyRequests
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidArgument):
		return "Invalid request"
	case errors.Is(err, models.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, graph.ErrTooManyGraphs):
		return "Too many open graphs"
	case errors.Is(err, context.DeadlineExceeded):
		return "Request timed out"
	default:
		return "Internal server error"
	}
}

// ErrorHandler renders the last error attached with c.Error when the handler chain
// wrote nothing. A dto.ErrorResponse is sent as is with the current status (500 if unset);
// any other error is mapped through StatusFor.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	err := c.Errors.Last().Err

	var resp dto.ErrorResponse
	if errors.As(err, &resp) {
		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		c.JSON(status, resp)
		return
	}

	c.JSON(StatusFor(err), dto.NewErrorResponse(messageFor(err), err))
}

// AbortWithError stops the chain and writes status with a standard error envelope.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}

// AbortWithDomainError stops the chain with the status StatusFor assigns to err.
func AbortWithDomainError(c *gin.Context, message string, err error) {
	AbortWithError(c, StatusFor(err), message, err)
}
