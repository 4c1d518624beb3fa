package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// 价格以 JSON 数字输出，和前端的 number 类型保持一致
	decimal.MarshalJSONWithoutQuotes = true
}

// Product 对应数据库中的 products 表
type Product struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string          `gorm:"size:255;not null;column:name" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;column:price" json:"price"` // Price: 单价，两位小数
	Description string          `gorm:"type:text;column:description" json:"description"`
	ImageURL    string          `gorm:"size:255;column:image_url" json:"imageUrl"`
	Category    string          `gorm:"size:100;index:idx_products_category;column:category" json:"category"`
}

func (Product) TableName() string {
	return "products"
}
