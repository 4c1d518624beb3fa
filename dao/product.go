package dao

import (
	"Storefront/models"
	"Storefront/types"
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeEscape 任何方言下都是单字符，避免反斜杠在 MySQL/PostgreSQL 字符串里的差异
const likeEscape = "!"

var sortClauses = map[types.SortOption]string{
	types.SortDefault:   "p.id ASC",
	types.SortPriceAsc:  "p.price ASC, p.id ASC",
	types.SortPriceDesc: "p.price DESC, p.id ASC",
	types.SortNameAsc:   "p.name ASC, p.id ASC",
	types.SortNameDesc:  "p.name DESC, p.id ASC",
}

type Product struct {
	Repo[models.Product]
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{
		Repo: NewRepo[models.Product](db),
	}
}

// OrderClause 排序方式固定映射，未知值回退到默认
func OrderClause(sort types.SortOption) string {
	if c, ok := sortClauses[sort]; ok {
		return c
	}
	return sortClauses[types.SortDefault]
}

// EscapeLike 转义 LIKE 通配符，搜索词按字面匹配
func EscapeLike(s string) string {
	r := strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")
	return r.Replace(s)
}

// ListWithRating 商品列表 + 评分聚合，没有评价的商品评分和数量都是 0
func (p *Product) ListWithRating(ctx context.Context, filter types.ProductFilter) ([]*types.ProductWithRating, error) {
	query := p.Db.WithContext(ctx).
		Table("products AS p").
		Select("p.id, p.name, p.price, p.description, p.image_url, p.category, " +
			"COALESCE(AVG(r.rating), 0) AS avg_rating, COUNT(r.id) AS review_count").
		Joins("LEFT JOIN reviews r ON r.product_id = p.id")

	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("LOWER(p.name) LIKE ? ESCAPE '"+likeEscape+"'", "%"+EscapeLike(strings.ToLower(search))+"%")
	}
	if category := strings.TrimSpace(filter.Category); category != "" && category != types.CategoryAll {
		query = query.Where("p.category = ?", category)
	}

	products := make([]*types.ProductWithRating, 0)
	err := query.
		Group("p.id").
		Order(OrderClause(filter.SortBy)).
		Scan(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Categories 去重后的分类列表
func (p *Product) Categories(ctx context.Context) ([]string, error) {
	categories := make([]string, 0)
	err := p.Db.WithContext(ctx).
		Model(&models.Product{}).
		Where("category IS NOT NULL AND category <> ''").
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

// FindByIDs 根据 ID 列表查询商品
func (p *Product) FindByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Product, error) {
	result := make(map[uint64]*models.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var products []*models.Product
	if err := p.Db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	for _, item := range products {
		result[item.ID] = item
	}
	return result, nil
}

func (p *Product) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := p.Db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Upsert 按 ID 冲突时原地更新，重复执行不会产生重复数据
func (p *Product) Upsert(ctx context.Context, products []*models.Product) error {
	if len(products) == 0 {
		return nil
	}
	return p.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "price", "description", "image_url", "category"}),
		}).
		Create(&products).Error
}
