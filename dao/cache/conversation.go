package cache

import (
	"Storefront/config"
	"Storefront/types"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/redis/go-redis/v9"
)

// ConversationStore 会话 ID -> 历史消息
type ConversationStore interface {
	Load(ctx context.Context, sessionID string) ([]types.ChatMessage, error)
	Save(ctx context.Context, sessionID string, history []types.ChatMessage) error
}

type conversation struct {
	history  []types.ChatMessage
	lastSeen time.Time
}

// MemoryConversationStore 进程内存储，空闲超过 ttl 的会话失效
type MemoryConversationStore struct {
	sessions cmap.ConcurrentMap[string, *conversation]
	ttl      time.Duration
	now      func() time.Time

	mu        sync.Mutex
	lastSweep time.Time
}

func NewMemoryConversationStore(ttl time.Duration, now func() time.Time) *MemoryConversationStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryConversationStore{
		sessions:  cmap.New[*conversation](),
		ttl:       ttl,
		now:       now,
		lastSweep: now(),
	}
}

func (s *MemoryConversationStore) expired(c *conversation, now time.Time) bool {
	return now.Sub(c.lastSeen) >= s.ttl
}

func (s *MemoryConversationStore) Load(_ context.Context, sessionID string) ([]types.ChatMessage, error) {
	c, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, nil
	}
	now := s.now()
	if s.expired(c, now) {
		s.sessions.RemoveCb(sessionID, func(_ string, v *conversation, exists bool) bool {
			return exists && s.expired(v, now)
		})
		return nil, nil
	}
	out := make([]types.ChatMessage, len(c.history))
	copy(out, c.history)
	return out, nil
}

func (s *MemoryConversationStore) Save(_ context.Context, sessionID string, history []types.ChatMessage) error {
	now := s.now()
	saved := make([]types.ChatMessage, len(history))
	copy(saved, history)
	s.sessions.Set(sessionID, &conversation{history: saved, lastSeen: now})
	s.maybeSweep(now)
	return nil
}

// Len 当前保存的会话数，包含尚未清理的过期会话
func (s *MemoryConversationStore) Len() int {
	return s.sessions.Count()
}

// maybeSweep 每隔 ttl 清理一次过期会话，避免只写不读的会话一直占内存
func (s *MemoryConversationStore) maybeSweep(now time.Time) {
	s.mu.Lock()
	if now.Sub(s.lastSweep) < s.ttl {
		s.mu.Unlock()
		return
	}
	s.lastSweep = now
	s.mu.Unlock()

	for _, key := range s.sessions.Keys() {
		s.sessions.RemoveCb(key, func(_ string, v *conversation, exists bool) bool {
			return exists && s.expired(v, now)
		})
	}
}

const conversationKeyPrefix = "storefront:chat:session:"

// RedisConversationStore 多实例部署时共享会话，每轮对话刷新过期时间
type RedisConversationStore struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisConversationStore(rds *redis.Client, ttl time.Duration) *RedisConversationStore {
	return &RedisConversationStore{redis: rds, ttl: ttl}
}

func (s *RedisConversationStore) key(sessionID string) string {
	return conversationKeyPrefix + sessionID
}

func (s *RedisConversationStore) Load(ctx context.Context, sessionID string) ([]types.ChatMessage, error) {
	raw, err := s.redis.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var history []types.ChatMessage
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, fmt.Errorf("decode conversation %s: %w", sessionID, err)
	}
	return history, nil
}

func (s *RedisConversationStore) Save(ctx context.Context, sessionID string, history []types.ChatMessage) error {
	raw, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, s.key(sessionID), raw, s.ttl).Err()
}

// NewConversationStore 配置为 redis 且客户端可用时使用 Redis，否则进程内存储
func NewConversationStore(conf *config.Config, rds *redis.Client) ConversationStore {
	if conf.Chat.Store == config.ChatStoreRedis && rds != nil {
		return NewRedisConversationStore(rds, conf.Chat.SessionTTL)
	}
	return NewMemoryConversationStore(conf.Chat.SessionTTL, time.Now)
}
