package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"escrow-marketplace/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags the request context with an id, reusing the client's when sent.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(log.SetRequestID(c.Request.Context(), id))
		c.Next()
	}
}
