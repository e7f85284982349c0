package middleware

import (
	"net/http"
	"strings"

	"shopcart_backend/internal/auth"
	"shopcart_backend/internal/logger"
	"shopcart_backend/internal/repositories"
	"shopcart_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the Bearer access token and loads the account
// behind it. Handlers downstream read "userID" and "isStaff" from the gin
// context. A token whose user no longer exists is rejected the same way an
// invalid token is.
func AuthMiddleware(tokenManager *auth.TokenManager, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokenManager.ParseAccess(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(string(contextkeys.UserIDKey), user.ID)
		c.Set(string(contextkeys.IsStaffKey), user.IsStaff)
		c.Next()
	}
}

// StaffMiddleware restricts a route group to staff accounts. It assumes
// AuthMiddleware already ran.
func StaffMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isStaff, _ := c.Get(string(contextkeys.IsStaffKey))
		if staff, ok := isStaff.(bool); !ok || !staff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Staff access required"})
			return
		}
		c.Next()
	}
}
