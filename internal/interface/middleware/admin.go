package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopwish/shopwish-api/internal/domain/repository"
	"github.com/shopwish/shopwish-api/pkg/response"
)

// RequireAdmin gates a route group to accounts carrying the admin role.
// It must run after Auth. The role is re-read from the store on every
// request so a revoked admin loses access immediately, token or not.
func RequireAdmin(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString(CtxUserIDKey)
		if uid == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing token", nil)
			c.Abort()
			return
		}
		u, err := users.GetByID(c.Request.Context(), uid)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid token", nil)
			c.Abort()
			return
		}
		if !u.IsAdmin {
			response.Error[any](c, http.StatusForbidden, "admin access only", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
