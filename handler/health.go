package handler

import (
	"Storefront/pkg/context"
	"Storefront/pkg/response"
	ctx "context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Health struct {
	DB *gorm.DB
}

func (h *Health) RegisterRouter(r gin.IRouter) {
	r.GET("/healthz", context.Wrap(h.Check))
}

// Check 数据库可用即认为健康
func (h *Health) Check(c *gin.Context) error {
	sqlDB, err := h.DB.DB()
	if err != nil {
		return response.NewError(http.StatusServiceUnavailable, "database unavailable")
	}
	pingCtx, cancel := ctx.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return &response.BizError{Code: http.StatusServiceUnavailable, Msg: "database unavailable", Err: err}
	}
	response.Success(c, gin.H{"status": "ok"})
	return nil
}
