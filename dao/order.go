package dao

import (
	"Storefront/models"
	"context"

	"gorm.io/gorm"
)

type Order struct {
	Repo[models.Order]
}

func NewOrder(db *gorm.DB) *Order {
	return &Order{
		Repo: NewRepo[models.Order](db),
	}
}

// CreateWithItems 写入订单和明细，调用方负责提供事务
func (d *Order) CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	db := d.Db.WithContext(ctx)
	// 明细单独写入，避免关联自动 upsert
	if err := db.Omit("Items").Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if err := db.Omit("Product").Create(&items).Error; err != nil {
		return err
	}
	order.Items = items
	return nil
}

// GetWithItems 订单及明细
func (d *Order) GetWithItems(ctx context.Context, id uint64) (*models.Order, error) {
	var order models.Order
	err := d.Db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}
