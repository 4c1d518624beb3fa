package types

import (
	"github.com/shopspring/decimal"
)

// CartItem 购物车条目，Price 是加入购物车时的单价
type CartItem struct {
	ID       uint64          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// CustomerDetails 结算表单
type CustomerDetails struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DeliveryMethod string `json:"deliveryMethod"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	Zip            string `json:"zip"`
}

type PlaceOrderRequest struct {
	CustomerDetails *CustomerDetails `json:"customerDetails"`
	CartItems       []CartItem       `json:"cartItems"`
}

// OrderNotification 新订单通知内容
type OrderNotification struct {
	Recipient      string          `json:"recipient"`
	Sender         string          `json:"sender,omitempty"`
	OrderID        uint64          `json:"order_id"`
	Reference      string          `json:"reference"`
	CustomerName   string          `json:"customer_name"`
	CustomerEmail  string          `json:"customer_email"`
	CustomerPhone  string          `json:"customer_phone"`
	DeliveryMethod string          `json:"delivery_method"`
	Address        string          `json:"address,omitempty"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	ItemCount      int             `json:"item_count"`
	StoreName      string          `json:"store_name,omitempty"`
	ShopAddress    string          `json:"shop_address,omitempty"`
}
