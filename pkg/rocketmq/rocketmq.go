package rocketmq

import (
	"Storefront/config"
	"Storefront/pkg/log"
	"context"
	"fmt"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

type Rocketmq struct {
	RocketmqProducer rocketmq.Producer
}

func init() {
	rlog.SetLogLevel("error")
}

func InitProducer(cfg *config.RocketMQConfig) (*Rocketmq, error) {
	p, err := rocketmq.NewProducer(
		producer.WithNsResolver(primitive.NewPassthroughResolver(cfg.NameServer)),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(cfg.Producer.Retry),
	)
	if err != nil {
		return nil, fmt.Errorf("new rocketmq producer: %w", err)
	}
	if err = p.Start(); err != nil {
		return nil, fmt.Errorf("start rocketmq producer: %w", err)
	}
	log.L.Info("init producer success", zap.Strings("nameserver", cfg.NameServer))
	return &Rocketmq{RocketmqProducer: p}, nil
}

// SendMsg 同步发送，key 用于在控制台检索消息
func (p *Rocketmq) SendMsg(ctx context.Context, topic, key string, body []byte) error {
	msg := primitive.NewMessage(topic, body)
	if key != "" {
		msg.WithKeys([]string{key})
	}

	res, err := p.RocketmqProducer.SendSync(ctx, msg)
	if err != nil {
		return err
	}
	if res.Status != primitive.SendOK {
		return fmt.Errorf("rocketmq send status %d", res.Status)
	}
	log.L.Info("send message success", zap.String("topic", topic), zap.String("msg_id", res.MsgID))
	return nil
}

func (p *Rocketmq) Shutdown() error {
	return p.RocketmqProducer.Shutdown()
}
