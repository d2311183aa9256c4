package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"comepouco/internal/auth"
	"comepouco/internal/entity"

	"github.com/gin-gonic/gin"
)

const (
	currentIdentityContextKey = "current-identity"

	msgMissingToken  = "Token não fornecido."
	msgMalformedAuth = "Formato de autorização inválido."
	msgAccessDenied  = "Acesso negado."
)

// AuthMiddleware JWT 认证中间件。角色每次从数据库读取，不信任 token 中的内容。
func (h *HTTPHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			Unauthorized(c, msgMissingToken)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			Unauthorized(c, msgMalformedAuth)
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			Unauthorized(c, msgMissingToken)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		identity, err := h.authService.Authenticate(ctx, tokenString)
		if err != nil {
			respondError(c, err)
			return
		}

		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), identity))
		c.Set(currentIdentityContextKey, identity)
		c.Next()
	}
}

// RequireRole 角色守卫中间件，必须挂在 AuthMiddleware 之后
func RequireRole(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			Unauthorized(c, msgMissingToken)
			return
		}
		if !identity.HasRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, APIError{
				Code:    ErrCodeForbidden,
				Message: msgAccessDenied,
			})
			return
		}
		c.Next()
	}
}

// CurrentIdentity 从上下文获取当前认证身份
func CurrentIdentity(c *gin.Context) (auth.Identity, bool) {
	value, exists := c.Get(currentIdentityContextKey)
	if exists {
		if identity, ok := value.(auth.Identity); ok {
			return identity, true
		}
	}
	if c.Request == nil {
		return auth.Identity{}, false
	}
	return auth.IdentityFrom(c.Request.Context())
}
