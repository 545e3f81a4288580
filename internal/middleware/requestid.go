package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

var newRequestID = uuid.NewString

// RequestID tags every request with an identifier stored under RequestIDKey and echoed in
// the X-Request-ID response header. A well-formed UUID sent by the client is reused so a
// caller can correlate its own logs; anything else is replaced.
//
// Example log usage:
//
//	rid, _ := c.Get(middleware.RequestIDKey)
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = newRequestID()
		}
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
