package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"bookme/pkg/response"
)

const bearerPrefix = "Bearer "

// AdminAuth requires "Authorization: Bearer <admin token>". With no token
// configured every admin request is rejected.
func (m Middleware) AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if m.adminToken == "" || !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			return
		}

		token := strings.TrimPrefix(header, bearerPrefix)
		if subtle.ConstantTimeCompare([]byte(token), []byte(m.adminToken)) != 1 {
			m.l.Warnf(c.Request.Context(), "admin auth rejected from %s", c.ClientIP())
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
