package handler

import (
	"Storefront/pkg/context"
	"Storefront/pkg/response"
	"Storefront/service"
	"Storefront/types"

	"github.com/gin-gonic/gin"
)

const msgInvalidJSON = "Bad Request: Invalid JSON format."

type Admin struct {
	AdminService service.IAdminService
}

func (a *Admin) RegisterRouter(r gin.IRouter) {
	r.POST("/admin/login", context.Wrap(a.Login))
}

func (a *Admin) Login(c *gin.Context) error {
	var req types.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest(msgInvalidJSON)
	}
	resp, err := a.AdminService.Login(c.Request.Context(), req.Password)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// authorizeAdmin 已通过 Bearer token 认证的请求不再校验密码
func authorizeAdmin(c *gin.Context, admin service.IAdminService, password string) error {
	if context.IsAdmin(c) {
		return nil
	}
	return admin.Authorize("", password)
}
