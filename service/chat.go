package service

import (
	"Storefront/config"
	"Storefront/dao"
	"Storefront/dao/cache"
	"Storefront/pkg/llm"
	"Storefront/pkg/log"
	"Storefront/types"
	"context"

	"go.uber.org/zap"
)

type ChatService struct {
	LLM         llm.Streamer
	Store       cache.ConversationStore
	SettingsDao *dao.Settings
	Config      *config.Chat
}

var _ IChatService = (*ChatService)(nil)

type IChatService interface {
	Stream(ctx context.Context, sessionID, message string, onDelta func(string) error) error
}

// Stream 转发一轮对话，只有上游成功结束才写回历史
func (s *ChatService) Stream(ctx context.Context, sessionID, message string, onDelta func(string) error) error {
	history, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		log.L.Warn("load conversation failed, starting fresh", zap.String("session_id", sessionID), zap.Error(err))
		history = nil
	}

	var storeName string
	if settings, err := s.SettingsDao.Get(ctx); err == nil {
		storeName = settings.StoreName
	}

	reply, err := s.LLM.Stream(ctx, llm.SystemPrompt(storeName), history, message, onDelta)
	if err != nil {
		return err
	}

	history = append(history,
		types.ChatMessage{Role: types.ChatRoleUser, Text: message},
		types.ChatMessage{Role: types.ChatRoleAssistant, Text: reply},
	)
	history = trimHistory(history, s.Config.MaxHistory)
	if err := s.Store.Save(ctx, sessionID, history); err != nil {
		log.L.Warn("save conversation failed", zap.String("session_id", sessionID), zap.Error(err))
	}
	return nil
}

// trimHistory 保留最近的消息，并保证第一条是用户消息
func trimHistory(history []types.ChatMessage, max int) []types.ChatMessage {
	if max <= 0 || len(history) <= max {
		return history
	}
	history = history[len(history)-max:]
	for len(history) > 0 && history[0].Role != types.ChatRoleUser {
		history = history[1:]
	}
	return history
}
