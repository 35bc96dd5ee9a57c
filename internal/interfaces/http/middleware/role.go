package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yishaq/backend/internal/domain/identity"
	"github.com/yishaq/backend/internal/interfaces/http/dto"
)

// RequireAdmin gates back-office routes. It must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetJWTRole(c) != string(identity.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponseWithRequestID(
					dto.ErrCodeForbidden,
					"Admin access required",
					c.GetString(RequestIDKey),
				))
			return
		}
		c.Next()
	}
}
