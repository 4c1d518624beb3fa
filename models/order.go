package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DeliveryMethodDelivery = "delivery"
	DeliveryMethodPickup   = "pickup"
)

// Order 订单主表，创建后不再修改
type Order struct {
	ID              uint64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	CustomerName    string          `gorm:"size:255;not null;column:customer_name" json:"customer_name"`
	CustomerEmail   string          `gorm:"size:255;not null;column:customer_email" json:"customer_email"`
	CustomerPhone   string          `gorm:"size:50;column:customer_phone" json:"customer_phone"`
	DeliveryMethod  string          `gorm:"size:50;not null;column:delivery_method" json:"delivery_method"`
	CustomerAddress *string         `gorm:"type:text;column:customer_address" json:"customer_address"` // 自提订单地址字段均为 NULL
	CustomerCity    *string         `gorm:"size:100;column:customer_city" json:"customer_city"`
	CustomerState   *string         `gorm:"size:100;column:customer_state" json:"customer_state"`
	CustomerZip     *string         `gorm:"size:20;column:customer_zip" json:"customer_zip"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null;column:total_price" json:"total_price"` // 服务端计算
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	// Reference 对外展示的订单编号，由 ID 推导，不落库
	Reference string `gorm:"-" json:"reference,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单明细，Price 为下单时的单价快照
type OrderItem struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrderID   uint64          `gorm:"not null;index:idx_order_items_order_id;column:order_id" json:"order_id"`
	ProductID uint64          `gorm:"not null;index:idx_order_items_product_id;column:product_id" json:"product_id"`
	Quantity  int             `gorm:"not null;column:quantity" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null;column:price" json:"price"`

	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
