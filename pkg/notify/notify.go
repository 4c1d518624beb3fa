package notify

import (
	"Storefront/config"
	"Storefront/pkg/log"
	"Storefront/pkg/rocketmq"
	"Storefront/types"
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"
)

// Notifier 新订单通知运营
type Notifier interface {
	OrderPlaced(ctx context.Context, n *types.OrderNotification) error
}

// LogNotifier 只写日志，本地开发默认使用
type LogNotifier struct{}

func (LogNotifier) OrderPlaced(_ context.Context, n *types.OrderNotification) error {
	log.L.Info("new order notification",
		zap.String("recipient", n.Recipient),
		zap.Uint64("order_id", n.OrderID),
		zap.String("reference", n.Reference),
		zap.String("customer", n.CustomerName),
		zap.String("total", n.TotalPrice.StringFixed(2)),
		zap.Int("items", n.ItemCount),
		zap.String("store", n.StoreName))
	return nil
}

type sender interface {
	SendMsg(ctx context.Context, topic, key string, body []byte) error
}

// MQNotifier 投递到 RocketMQ，由邮件服务消费
type MQNotifier struct {
	mq    sender
	topic string
}

func NewMQNotifier(mq sender, topic string) *MQNotifier {
	return &MQNotifier{mq: mq, topic: topic}
}

func (m *MQNotifier) OrderPlaced(ctx context.Context, n *types.OrderNotification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return m.mq.SendMsg(ctx, m.topic, uuid.NewString(), body)
}

// NewNotifier 按配置选择实现
func NewNotifier(conf *config.Config) (Notifier, func(), error) {
	switch conf.Notify.Driver {
	case config.NotifyDriverRocketMQ:
		mq, err := rocketmq.InitProducer(conf.RocketMQ)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := mq.Shutdown(); err != nil {
				log.L.Warn("shutdown rocketmq producer", zap.Error(err))
			}
		}
		return NewMQNotifier(mq, conf.Notify.Topic), cleanup, nil
	default:
		return LogNotifier{}, func() {}, nil
	}
}

// Safe 调用 notifier，错误和 panic 都转成 error 返回
func Safe(ctx context.Context, n Notifier, msg *types.OrderNotification) (err error) {
	var pc panics.Catcher
	pc.Try(func() {
		err = n.OrderPlaced(ctx, msg)
	})
	if r := pc.Recovered(); r != nil {
		return fmt.Errorf("notifier panic: %v", r.Value)
	}
	return err
}
