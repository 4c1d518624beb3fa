package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(ProductService), "*"),
	wire.Bind(new(IProductService), new(*ProductService)),

	wire.Struct(new(OrderService), "*"),
	wire.Bind(new(IOrderService), new(*OrderService)),

	wire.Struct(new(ReviewService), "*"),
	wire.Bind(new(IReviewService), new(*ReviewService)),

	wire.Struct(new(SettingsService), "*"),
	wire.Bind(new(ISettingsService), new(*SettingsService)),

	wire.Struct(new(ChatService), "*"),
	wire.Bind(new(IChatService), new(*ChatService)),

	NewAdminService,
	wire.Bind(new(IAdminService), new(*AdminService)),

	wire.Struct(new(SeedService), "*"),
)
