package middleware

import (
	"Storefront/pkg/context"
	"strings"

	"github.com/gin-gonic/gin"
)

type tokenVerifier interface {
	VerifyToken(token string) bool
}

// AdminToken 识别管理员 Bearer token。
// 不拦截请求，没有 token 的请求仍可在请求体里带密码
func AdminToken(v tokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && v.VerifyToken(strings.TrimSpace(parts[1])) {
			c.Set(context.CtxAdmin, true)
		}
		c.Next()
	}
}
