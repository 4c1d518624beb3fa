package handler

import (
	"Storefront/pkg/context"
	"Storefront/pkg/response"
	"Storefront/service"
	"Storefront/types"

	"github.com/gin-gonic/gin"
)

type Settings struct {
	SettingsService service.ISettingsService
	AdminService    service.IAdminService
}

func (s *Settings) RegisterRouter(r gin.IRouter) {
	r.GET("/settings", context.Wrap(s.Get))
	r.POST("/update-settings", context.Wrap(s.Update))
}

func (s *Settings) Get(c *gin.Context) error {
	settings, err := s.SettingsService.Get(c.Request.Context())
	if err != nil {
		return err
	}
	// 店铺信息很少变化，允许浏览器短暂缓存
	c.Header("Cache-Control", "public, max-age=60")
	response.Success(c, settings)
	return nil
}

func (s *Settings) Update(c *gin.Context) error {
	var req types.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest(msgInvalidJSON)
	}
	if err := authorizeAdmin(c, s.AdminService, req.Password); err != nil {
		return err
	}

	settings, err := s.SettingsService.Update(c.Request.Context(), req.Settings)
	if err != nil {
		return err
	}
	response.Success(c, settings)
	return nil
}
