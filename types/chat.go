package types

type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// ChatChunk SSE 每一帧的数据
type ChatChunk struct {
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage 会话历史中的一条消息
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
