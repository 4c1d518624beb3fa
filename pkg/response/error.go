package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BizError 业务错误，Code 即 HTTP 状态码，Err 只用于日志不会返回给客户端
type BizError struct {
	Code int
	Msg  string
	Err  error
}

func (e *BizError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *BizError) Unwrap() error {
	return e.Err
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func BadRequest(msg string) *BizError {
	return NewError(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) *BizError {
	return NewError(http.StatusUnauthorized, msg)
}

func NotFound(msg string) *BizError {
	return NewError(http.StatusNotFound, msg)
}

// Internal 持久化等服务端错误，msg 是给客户端的通用提示
func Internal(msg string, err error) *BizError {
	return &BizError{
		Code: http.StatusInternalServerError,
		Msg:  msg,
		Err:  err,
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{Error: msg})
}
