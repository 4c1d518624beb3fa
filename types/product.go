package types

import (
	"Storefront/models"

	"github.com/shopspring/decimal"
)

type SortOption string

const (
	SortDefault   SortOption = "default"
	SortPriceAsc  SortOption = "price_asc"
	SortPriceDesc SortOption = "price_desc"
	SortNameAsc   SortOption = "name_asc"
	SortNameDesc  SortOption = "name_desc"

	// CategoryAll 不按分类过滤
	CategoryAll = "all"
)

// ProductFilter 商品列表查询参数
type ProductFilter struct {
	Search   string     `form:"search"`
	Category string     `form:"category"`
	SortBy   SortOption `form:"sortBy"`
}

// ProductWithRating 商品 + 评分聚合
type ProductWithRating struct {
	models.Product
	AvgRating   float64 `gorm:"column:avg_rating" json:"avg_rating"`
	ReviewCount int64   `gorm:"column:review_count" json:"review_count"`
}

// NewProduct 管理端新增商品
type NewProduct struct {
	Name        string           `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Description string           `json:"description"`
	ImageURL    string           `json:"imageUrl"`
	Category    string           `json:"category"`
}

type AddProductRequest struct {
	Product  *NewProduct `json:"product"`
	Password string      `json:"password"`
}
