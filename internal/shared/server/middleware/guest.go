package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	guestIDKey = "guestId"

	// GuestIDHeader carries the caller's anonymous identity. The server
	// mints one when the client does not send it and echoes it back.
	GuestIDHeader = "X-Guest-Id"
)

// GuestIdentity reads the guest ID header and stores it in context. Requests
// without one get a fresh UUID, returned in the response header so the client
// can persist it.
func GuestIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		guestID := strings.TrimSpace(c.GetHeader(GuestIDHeader))
		if guestID == "" || len(guestID) > 128 {
			guestID = uuid.NewString()
		}

		c.Set(guestIDKey, guestID)
		c.Header(GuestIDHeader, guestID)
		c.Next()
	}
}

// GuestIDFromContext fetches the guest ID set by the identity middleware.
func GuestIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(guestIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
