package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 错误响应体，成功时直接返回数据本身
type Response struct {
	Error string `json:"error"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func Fail(c *gin.Context, code int, msg string) {
	c.JSON(code, Response{Error: msg})
}
