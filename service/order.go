package service

import (
	"Storefront/config"
	"Storefront/dao"
	"Storefront/models"
	"Storefront/pkg/log"
	"Storefront/pkg/notify"
	"Storefront/pkg/response"
	"Storefront/pkg/utils"
	"Storefront/types"
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OrderService struct {
	DB          *gorm.DB
	Config      *config.Config
	SettingsDao *dao.Settings
	Notifier    notify.Notifier
}

var _ IOrderService = (*OrderService)(nil)

type IOrderService interface {
	PlaceOrder(ctx context.Context, req *types.PlaceOrderRequest) (*models.Order, error)
}

func (s *OrderService) PlaceOrder(ctx context.Context, req *types.PlaceOrderRequest) (*models.Order, error) {
	order, err := buildOrder(req)
	if err != nil {
		return nil, err
	}

	// 客户端断开不影响已经开始的事务
	txCtx := context.WithoutCancel(ctx)
	err = s.DB.WithContext(txCtx).Transaction(func(tx *gorm.DB) error {
		if s.Config.Order.RepriceFromCatalog {
			if err := repriceFromCatalog(txCtx, dao.NewProduct(tx), order.Items); err != nil {
				return err
			}
		}
		order.TotalPrice = orderTotal(order.Items)
		items := order.Items
		order.Items = nil
		return dao.NewOrder(tx).CreateWithItems(txCtx, order, items)
	})
	if err != nil {
		var be *response.BizError
		if errors.As(err, &be) {
			return nil, be
		}
		return nil, response.Internal("Failed to place order.", err)
	}

	if ref, err := utils.GenHashID(s.Config.App.HashSalt, order.ID); err == nil {
		order.Reference = ref
	} else {
		log.L.Warn("gen order reference failed", zap.Uint64("order_id", order.ID), zap.Error(err))
	}

	s.notify(txCtx, order)
	return order, nil
}

// notify 通知失败只记录日志，订单已经提交
func (s *OrderService) notify(ctx context.Context, order *models.Order) {
	msg := &types.OrderNotification{
		Recipient:      s.Config.Notify.Email,
		Sender:         s.Config.Notify.Sender,
		OrderID:        order.ID,
		Reference:      order.Reference,
		CustomerName:   order.CustomerName,
		CustomerEmail:  order.CustomerEmail,
		CustomerPhone:  order.CustomerPhone,
		DeliveryMethod: order.DeliveryMethod,
		TotalPrice:     order.TotalPrice,
		ItemCount:      len(order.Items),
	}
	if order.DeliveryMethod == models.DeliveryMethodDelivery {
		msg.Address = strings.Join([]string{
			deref(order.CustomerAddress), deref(order.CustomerCity), deref(order.CustomerState), deref(order.CustomerZip),
		}, ", ")
	}

	settings, err := s.SettingsDao.Get(ctx)
	if err != nil {
		log.L.Warn("load store settings for notification", zap.Error(err))
	} else {
		msg.StoreName = settings.StoreName
		msg.ShopAddress = deref(settings.ShopAddress)
	}

	if err := notify.Safe(ctx, s.Notifier, msg); err != nil {
		log.L.Error("order notification failed", zap.Uint64("order_id", order.ID), zap.Error(err))
	}
}

// buildOrder 校验请求并生成待写入的订单，不访问数据库
func buildOrder(req *types.PlaceOrderRequest) (*models.Order, error) {
	if req == nil || req.CustomerDetails == nil || len(req.CartItems) == 0 {
		return nil, response.BadRequest("Bad Request: Missing required customer or order fields.")
	}
	d := req.CustomerDetails
	name := strings.TrimSpace(d.Name)
	email := strings.TrimSpace(d.Email)
	phone := strings.TrimSpace(d.Phone)
	method := strings.TrimSpace(d.DeliveryMethod)
	if name == "" || email == "" || phone == "" || method == "" {
		return nil, response.BadRequest("Bad Request: Missing required customer or order fields.")
	}

	order := &models.Order{
		CustomerName:   name,
		CustomerEmail:  email,
		CustomerPhone:  phone,
		DeliveryMethod: method,
	}
	switch method {
	case models.DeliveryMethodDelivery:
		address := strings.TrimSpace(d.Address)
		city := strings.TrimSpace(d.City)
		state := strings.TrimSpace(d.State)
		zip := strings.TrimSpace(d.Zip)
		if address == "" || city == "" || state == "" || zip == "" {
			return nil, response.BadRequest("Bad Request: Missing address details for a delivery order.")
		}
		order.CustomerAddress = &address
		order.CustomerCity = &city
		order.CustomerState = &state
		order.CustomerZip = &zip
	case models.DeliveryMethodPickup:
	default:
		return nil, response.BadRequest("Bad Request: deliveryMethod must be 'delivery' or 'pickup'.")
	}

	order.Items = make([]models.OrderItem, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		if item.ID == 0 || item.Quantity < 1 || item.Price.IsNegative() {
			return nil, response.BadRequest("Bad Request: Invalid cart item.")
		}
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ID,
			Quantity:  item.Quantity,
			Price:     item.Price.Round(2),
		})
	}
	return order, nil
}

// repriceFromCatalog 用商品表的价格覆盖购物车单价
func repriceFromCatalog(ctx context.Context, products *dao.Product, items []models.OrderItem) error {
	ids := make([]uint64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	catalog, err := products.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for i := range items {
		p, ok := catalog[items[i].ProductID]
		if !ok {
			return response.BadRequest("Bad Request: Unknown product in cart.")
		}
		items[i].Price = p.Price
	}
	return nil
}

func orderTotal(items []models.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total.Round(2)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// nullable 空字符串写成 NULL
func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
