package httpserver

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sessionHeader carries the opaque storefront session id. The id is not an
// authentication token; it only namespaces the session's cart and identity
// in the store.
const sessionHeader = "Storefront-Session"

const sessionKey = "session"

// sessionMiddleware reads the session id from the request header, issuing
// a fresh one when absent or malformed, and echoes it on the response so
// the browser can persist it.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(sessionHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(sessionKey, id)
		c.Header(sessionHeader, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
