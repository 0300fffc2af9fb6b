package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dgsoftwash/booking-api/internal/auth"
)

const AdminTokenHeader = "X-Admin-Token"

// AdminAuth gates the console API behind a bearer-style token checked
// against the token store. Every failure is the same 401: no hints
// about why.
func AdminAuth(tokens auth.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AdminTokenHeader)
		if token == "" || !tokens.Valid(c.Request.Context(), token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized",
			})
			return
		}
		c.Next()
	}
}
