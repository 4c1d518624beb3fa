package llm

import (
	"Storefront/config"
	"Storefront/pkg/log"
	"Storefront/types"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

const systemPrompt = `You are 'Stylo', a friendly and knowledgeable AI fashion advisor for an online store called '%s'.
Your goal is to provide helpful, concise, and stylish advice on clothing choices, pairings, and current trends.
You should be enthusiastic and use emojis to make the conversation engaging and fun.
Keep your responses relatively short and easy to read.
Strictly refuse to answer questions not related to fashion, style, or the products in this store.
Politely redirect any off-topic conversation back to fashion with a friendly tone.`

const DefaultStoreName = "Chic Threads"

// SystemPrompt 导购人设
func SystemPrompt(storeName string) string {
	if strings.TrimSpace(storeName) == "" {
		storeName = DefaultStoreName
	}
	return fmt.Sprintf(systemPrompt, storeName)
}

// Streamer 流式对话，onDelta 每收到一段文本回调一次，返回完整回复
type Streamer interface {
	Stream(ctx context.Context, system string, history []types.ChatMessage, message string, onDelta func(string) error) (string, error)
}

type Client struct {
	client openai.Client
	model  string
}

func NewClient(conf *config.Config) *Client {
	return &Client{
		client: openai.NewClient(
			option.WithAPIKey(conf.LLM.APIKey),
			option.WithBaseURL(conf.LLM.BaseURL),
			option.WithMaxRetries(1),
		),
		model: conf.LLM.Model,
	}
}

func (c *Client) Stream(ctx context.Context, system string, history []types.ChatMessage, message string, onDelta func(string) error) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: BuildMessages(system, history, message),
	}

	startTime := time.Now()
	stream := c.client.Chat.Completions.NewStreaming(ctx, params)
	defer stream.Close()

	var reply strings.Builder
	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		reply.WriteString(delta)
		if err := onDelta(delta); err != nil {
			return reply.String(), err
		}
	}
	if err := stream.Err(); err != nil {
		return reply.String(), fmt.Errorf("chat completion stream: %w", err)
	}

	log.L.Debug("chat completion finished",
		zap.String("model", c.model),
		zap.Int("chars", reply.Len()),
		zap.Duration("elapsed", time.Since(startTime)))
	return reply.String(), nil
}

// BuildMessages system + 历史 + 本轮用户消息
func BuildMessages(system string, history []types.ChatMessage, message string) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	if system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	for _, m := range history {
		switch m.Role {
		case types.ChatRoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Text))
		default:
			messages = append(messages, openai.UserMessage(m.Text))
		}
	}
	return append(messages, openai.UserMessage(message))
}
