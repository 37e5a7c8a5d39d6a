package middleware

import (
	"net/http"

	"docportal/services/user"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware permits only authenticated users whose stored role is
// admin. Must run after JWTAuthMiddleware; a valid credential with an
// insufficient role is a distinct "forbidden" outcome, not "unauthorized".
func AdminAuthMiddleware(userService user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authentication"})
			return
		}

		isAdmin, err := userService.IsAdmin(email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Role lookup failed"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
			return
		}

		c.Next()
	}
}
