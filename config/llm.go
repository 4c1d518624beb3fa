package config

import "time"

const (
	ChatStoreMemory = "memory"
	ChatStoreRedis  = "redis"
)

// LLM OpenAI 兼容接口
type LLM struct {
	APIKey  string `json:"api_key" yaml:"api_key"`
	BaseURL string `json:"base_url" yaml:"base_url"`
	Model   string `json:"model" yaml:"model"`
}

func (l *LLM) fillDefaults() {
	if l.BaseURL == "" {
		l.BaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	}
	if l.Model == "" {
		l.Model = "gemini-2.5-flash"
	}
}

// Chat 导购会话
type Chat struct {
	Store      string        `json:"store" yaml:"store"`
	SessionTTL time.Duration `json:"session_ttl" yaml:"session_ttl"`
	// MaxHistory 单个会话保留的最大消息条数
	MaxHistory int `json:"max_history" yaml:"max_history"`
}

func (c *Chat) fillDefaults() {
	if c.Store == "" {
		c.Store = ChatStoreMemory
	}
	if c.SessionTTL == 0 {
		c.SessionTTL = time.Hour
	}
	if c.MaxHistory == 0 {
		c.MaxHistory = 40
	}
}

func ProvideChatConfig(cfg *Config) *Chat {
	return cfg.Chat
}
