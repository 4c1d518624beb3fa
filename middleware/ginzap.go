package middleware

import (
	"Storefront/pkg/context"
	"Storefront/pkg/log"
	"Storefront/pkg/response"
	"Storefront/pkg/snowflake"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const headerRequestID = "X-Request-Id"

// GinZap 访问日志，同时给每个请求分配 request id
func GinZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = snowflake.GenString()
		}
		c.Set(context.CtxRequestID, requestID)
		c.Header(headerRequestID, requestID)

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", c.Writer.Status()),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			log.L.Warn("request", fields...)
			return
		}
		log.L.Info("request", fields...)
	}
}

// Recovery panic 统一返回 500 JSON
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.L.Error("panic recovered",
			zap.String("request_id", c.GetString(context.CtxRequestID)),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
			zap.Stack("stack"))
		response.Abort(c, http.StatusInternalServerError, "Internal server error.")
	})
}
