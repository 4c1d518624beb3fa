package service

import (
	"Storefront/dao"
	"Storefront/dao/cache"
	"Storefront/types"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeStreamer 把用户消息转成大写分两段返回
type fakeStreamer struct {
	systems  []string
	received [][]types.ChatMessage
	err      error
}

func (f *fakeStreamer) Stream(_ context.Context, system string, history []types.ChatMessage, message string, onDelta func(string) error) (string, error) {
	f.systems = append(f.systems, system)
	f.received = append(f.received, history)
	if f.err != nil {
		return "", f.err
	}
	reply := strings.ToUpper(message)
	half := len(reply) / 2
	for _, part := range []string{reply[:half], reply[half:]} {
		if err := onDelta(part); err != nil {
			return "", err
		}
	}
	return reply, nil
}

func newChatService(db *gorm.DB, llm *fakeStreamer) *ChatService {
	return &ChatService{
		LLM:         llm,
		Store:       cache.NewMemoryConversationStore(time.Hour, nil),
		SettingsDao: dao.NewSettings(db),
		Config:      testConfig().Chat,
	}
}

func collect(t *testing.T, svc *ChatService, session, message string) (string, error) {
	t.Helper()
	var sb strings.Builder
	err := svc.Stream(context.Background(), session, message, func(s string) error {
		sb.WriteString(s)
		return nil
	})
	return sb.String(), err
}

func TestChatKeepsHistoryPerSession(t *testing.T) {
	llm := &fakeStreamer{}
	svc := newChatService(seededDB(t), llm)

	out, err := collect(t, svc, "s1", "hello")
	require.NoError(t, err)
	assert.Equal(t, "HELLO", out)
	assert.Contains(t, llm.systems[0], "'Chic Threads'")

	_, err = collect(t, svc, "s1", "jeans?")
	require.NoError(t, err)
	require.Len(t, llm.received[1], 2)
	assert.Equal(t, types.ChatMessage{Role: types.ChatRoleUser, Text: "hello"}, llm.received[1][0])
	assert.Equal(t, types.ChatMessage{Role: types.ChatRoleAssistant, Text: "HELLO"}, llm.received[1][1])

	// 另一个会话看不到 s1 的历史
	_, err = collect(t, svc, "s2", "hi")
	require.NoError(t, err)
	assert.Empty(t, llm.received[2])
}

func TestChatFailedTurnLeavesHistory(t *testing.T) {
	llm := &fakeStreamer{}
	svc := newChatService(seededDB(t), llm)

	_, err := collect(t, svc, "s1", "first")
	require.NoError(t, err)

	llm.err = errors.New("upstream 503")
	_, err = collect(t, svc, "s1", "second")
	require.Error(t, err)

	history, err := svc.Store.Load(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "first", history[0].Text)
}

func TestChatTrimsHistory(t *testing.T) {
	llm := &fakeStreamer{}
	svc := newChatService(seededDB(t), llm)

	for _, msg := range []string{"a", "b", "c", "d", "e"} {
		_, err := collect(t, svc, "s1", msg)
		require.NoError(t, err)
	}

	history, err := svc.Store.Load(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, history, 6)
	assert.Equal(t, types.ChatMessage{Role: types.ChatRoleUser, Text: "c"}, history[0])
}

func TestTrimHistoryStartsWithUser(t *testing.T) {
	history := []types.ChatMessage{
		{Role: types.ChatRoleUser, Text: "1"},
		{Role: types.ChatRoleAssistant, Text: "2"},
		{Role: types.ChatRoleUser, Text: "3"},
		{Role: types.ChatRoleAssistant, Text: "4"},
	}
	got := trimHistory(history, 3)
	require.Len(t, got, 2)
	assert.Equal(t, "3", got[0].Text)

	assert.Len(t, trimHistory(history, 0), 4)
}
