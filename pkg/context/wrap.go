package context

import (
	"Storefront/pkg/log"
	"Storefront/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxRequestID = "request_id"
	CtxAdmin     = "admin"
)

type HandlerFunc func(*gin.Context) error

// Wrap 把返回 error 的处理函数适配成 gin.HandlerFunc，统一错误输出
func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil {
			return
		}

		fields := []zap.Field{
			zap.String("route", c.FullPath()),
			zap.String("request_id", c.GetString(CtxRequestID)),
			zap.Error(err),
		}

		// 如果已经写过响应（比如 SSE），只记日志
		if c.Writer.Written() {
			log.L.Warn("handler error after response written", fields...)
			return
		}

		var be *response.BizError
		if errors.As(err, &be) {
			if be.Code >= http.StatusInternalServerError {
				log.L.Error("request failed", fields...)
			} else {
				log.L.Info("request rejected", fields...)
			}
			response.Fail(c, be.Code, be.Msg)
			return
		}

		log.L.Error("unexpected error", fields...)
		response.Fail(c, http.StatusInternalServerError, "Internal server error.")
	}
}

// IsAdmin 请求是否已通过 Bearer token 完成管理员认证
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(CtxAdmin)
}
