package middleware

import (
	"net/http"

	"vaccine-village-go/internal/model"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware lets only ADMIN users through. It must run after
// AuthMiddleware.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("user")
		if !exists {
			abort(c, http.StatusInternalServerError, "user missing from context")
			return
		}
		user, ok := v.(*model.User)
		if !ok {
			abort(c, http.StatusInternalServerError, "unexpected user type in context")
			return
		}
		if user.Role != model.RoleNameAdmin {
			abort(c, http.StatusForbidden, "admin role required")
			return
		}
		c.Next()
	}
}
