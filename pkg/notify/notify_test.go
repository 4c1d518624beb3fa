package notify

import (
	"Storefront/types"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type fakeSender struct {
	topic string
	key   string
	body  []byte
	err   error
}

func (f *fakeSender) SendMsg(_ context.Context, topic, key string, body []byte) error {
	f.topic, f.key, f.body = topic, key, body
	return f.err
}

type notifierFunc func(ctx context.Context, n *types.OrderNotification) error

func (f notifierFunc) OrderPlaced(ctx context.Context, n *types.OrderNotification) error {
	return f(ctx, n)
}

func sample() *types.OrderNotification {
	return &types.OrderNotification{
		Recipient:    "ops@example.com",
		OrderID:      7,
		Reference:    "ORD-ABCDEFGH",
		CustomerName: "Ann",
		TotalPrice:   decimal.RequireFromString("45.5"),
		ItemCount:    2,
		StoreName:    "Chic Threads",
	}
}

func TestMQNotifier(t *testing.T) {
	s := &fakeSender{}
	n := NewMQNotifier(s, "order_notice")

	require.NoError(t, n.OrderPlaced(context.Background(), sample()))
	assert.Equal(t, "order_notice", s.topic)
	_, err := uuid.Parse(s.key)
	assert.NoError(t, err)
	assert.Equal(t, "ops@example.com", gjson.GetBytes(s.body, "recipient").String())
	assert.Equal(t, "45.5", gjson.GetBytes(s.body, "total_price").Raw)
}

func TestSafe(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, Safe(ctx, LogNotifier{}, sample()))

	boom := errors.New("boom")
	err := Safe(ctx, notifierFunc(func(context.Context, *types.OrderNotification) error { return boom }), sample())
	assert.ErrorIs(t, err, boom)

	err = Safe(ctx, notifierFunc(func(context.Context, *types.OrderNotification) error { panic("smtp down") }), sample())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp down")
}
