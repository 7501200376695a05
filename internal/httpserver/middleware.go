package httpserver

import (
	"net/http"

	"cartsession-api/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware tags each request with an id, keeping a caller's own
// id when one is supplied.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// accessTokenMiddleware gates the session routes behind the store's shared
// access token when one is configured. Tokens are UUIDs; a malformed token
// is rejected before comparison.
func accessTokenMiddleware(accessToken string, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !required || accessToken == "" {
			c.Next()
			return
		}

		requested := c.GetHeader("X-Access-Token")
		if requested != "" {
			if _, err := uuid.Parse(requested); err != nil {
				respondError(c, nil, domain.NewDataError(domain.CodeInvalidToken, "Invalid token provided.", http.StatusUnauthorized))
				c.Abort()
				return
			}
		}
		if requested != accessToken {
			respondError(c, nil, domain.NewDataError(domain.CodePermissionDenied, "Permission denied.", http.StatusForbidden))
			c.Abort()
			return
		}
		c.Next()
	}
}
