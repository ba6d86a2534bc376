package middleware

import (
	"github.com/gin-gonic/gin"

	"mtnshop/internal/session"
)

// SessionHeader carries the shopper's session id. The server echoes the id
// back on every response so a first-time client can pick it up.
const SessionHeader = "X-Session-ID"

const sessionKey = "shopperSession"

func ShopperSession(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := manager.GetOrCreate(c.GetHeader(SessionHeader))
		c.Header(SessionHeader, s.ID)
		c.Set(sessionKey, s)
		c.Next()
	}
}

// SessionFrom returns the session attached by ShopperSession. It panics if
// the middleware was not installed on the route, which is a wiring bug.
func SessionFrom(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}
