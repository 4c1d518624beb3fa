package client

import (
	"Storefront/config"
	"Storefront/pkg/log"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient 未配置地址时返回 nil，会话退回进程内存储
func NewRedisClient(conf *config.Config) (*redis.Client, func(), error) {
	if conf.Redis.Address == "" {
		return nil, func() {}, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Address,
		Password: conf.Redis.Password,
		Username: conf.Redis.Username,
		DB:       conf.Redis.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connect redis %s: %w", conf.Redis.Address, err)
	}
	log.L.Info("redis client success", zap.String("addr", conf.Redis.Address))
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.L.Warn("close redis", zap.Error(err))
		}
	}
	return client, cleanup, nil
}
