package handler

import (
	"Storefront/pkg/context"
	"Storefront/pkg/log"
	"Storefront/pkg/response"
	"Storefront/service"
	"Storefront/types"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgStreamFailed = "Stream failed"

type Chat struct {
	ChatService service.IChatService
}

func (h *Chat) RegisterRouter(r gin.IRouter) {
	r.POST("/chat", context.Wrap(h.Chat))
}

func (h *Chat) Chat(c *gin.Context) error {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Bad Request: Invalid JSON.")
	}
	message := strings.TrimSpace(req.Message)
	sessionID := strings.TrimSpace(req.SessionID)
	if message == "" || sessionID == "" {
		return response.BadRequest("Bad Request: Missing message or sessionId")
	}

	c.Header("Content-Type", sse.ContentType)
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	err := h.ChatService.Stream(c.Request.Context(), sessionID, message, func(text string) error {
		return writeChunk(c, types.ChatChunk{Text: text})
	})
	if err != nil {
		// 响应头已经发出，错误只能放在流里
		log.L.Error("chat stream failed",
			zap.String("session_id", sessionID),
			zap.String("request_id", c.GetString(context.CtxRequestID)),
			zap.Error(err))
		_ = writeChunk(c, types.ChatChunk{Error: msgStreamFailed})
	}
	return nil
}

// writeChunk 输出 "data: {json}\n\n"，前端按 "data: " 前缀解析
func writeChunk(c *gin.Context, chunk types.ChatChunk) error {
	payload, err := json.Marshal(chunk)
	if err != nil {
		return err
	}
	if err := sse.Encode(c.Writer, sse.Event{Data: " " + string(payload)}); err != nil {
		return err
	}
	c.Writer.Flush()
	return nil
}
