// Package session identifies demo page sessions. All per-session state is
// in-memory and lives only as long as the process; nothing is persisted.
package session

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderName is the request/response header carrying the session ID.
const HeaderName = "X-Session-ID"

const contextKey = "demoSessionID"

// Middleware resolves the session ID from the request header, minting a new
// one when absent or malformed, and echoes it on the response so the page
// can carry it forward.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader(HeaderName))
		if err != nil {
			id = uuid.New()
		}
		c.Set(contextKey, id)
		c.Header(HeaderName, id.String())
		c.Next()
	}
}

// FromContext returns the session ID resolved by Middleware.
func FromContext(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(contextKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
