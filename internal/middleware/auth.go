// Package middleware holds the gin middleware.
package middleware

import (
	"net/http"
	"strings"

	"vaccine-village-go/internal/repository"
	"vaccine-village-go/internal/service"
	"vaccine-village-go/pkg/log"
	"vaccine-village-go/pkg/token"

	"github.com/gin-gonic/gin"
)

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"code": status, "message": message, "data": nil})
}

// AuthMiddleware verifies the bearer access token and stores the user
// ("user") and its claims ("claims") in the gin context.
func AuthMiddleware(jwtManager *token.JWTManager, userService service.UserService, blacklist repository.TokenBlacklistRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			abort(c, http.StatusUnauthorized, "missing or malformed Authorization header")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)

		claims, err := jwtManager.VerifyToken(tokenString)
		if err != nil || claims.Refresh {
			abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		revoked, err := blacklist.Contains(c.Request.Context(), tokenString)
		if err != nil {
			log.Error("Failed to check token blacklist", err)
			abort(c, http.StatusInternalServerError, "internal error")
			return
		}
		if revoked {
			abort(c, http.StatusUnauthorized, "token has been revoked")
			return
		}

		user, err := userService.GetProfile(claims.UserID)
		if err != nil {
			abort(c, http.StatusUnauthorized, "user not found")
			return
		}

		c.Set("user", user)
		c.Set("claims", claims)
		c.Set("token", tokenString)
		c.Next()
	}
}
