//go:build wireinject
// +build wireinject

package main

import (
	"Storefront/config"
	"Storefront/dao"
	"Storefront/dao/cache"
	"Storefront/handler"
	"Storefront/pkg/client"
	"Storefront/pkg/database"
	"Storefront/pkg/llm"
	"Storefront/pkg/notify"
	"Storefront/pkg/server"
	"Storefront/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		database.ProvideDB,
		client.NewRedisClient,
		config.ProvideChatConfig,
		notify.NewNotifier,
		llm.NewClient,
		wire.Bind(new(llm.Streamer), new(*llm.Client)),
		cache.NewConversationStore,

		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Health), "*"),
		wire.Struct(new(handler.Admin), "*"),
		wire.Struct(new(handler.Product), "*"),
		wire.Struct(new(handler.Order), "*"),
		wire.Struct(new(handler.Review), "*"),
		wire.Struct(new(handler.Settings), "*"),
		wire.Struct(new(handler.Chat), "*"),

		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil, nil, nil
}

func InitSeeder(cfg *config.Config) (*service.SeedService, func(), error) {
	wire.Build(
		database.ProvideDB,
		wire.Struct(new(service.SeedService), "*"),
	)
	return nil, nil, nil
}
