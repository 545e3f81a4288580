package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dashpulse/internal/domain/dto"
	"github.com/guttosm/dashpulse/internal/logger"
)

// RecoveryMiddleware converts a handler panic into a 500 envelope. The log line carries
// the request id, the matched route and, on graph routes, the graph session id.
//
//	router.Use(middleware.RequestID(), middleware.RecoveryMiddleware())
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			cause := fmt.Errorf("%v", r)

			ev := logger.L().Error().
				Err(cause).
				Str("request_id", c.GetString(RequestIDKey)).
				Str("method", c.Request.Method).
				Str("route", c.FullPath())
			if id := c.Param("id"); id != "" {
				ev = ev.Str("graph_id", id)
			}
			ev.Bytes("stack", debug.Stack()).Msg("handler_panic_recovered")

			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", cause))
		}()
		c.Next()
	}
}
