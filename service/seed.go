package service

import (
	"Storefront/dao"
	"Storefront/models"
	"Storefront/pkg/log"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SeedService struct {
	DB *gorm.DB
}

func strPtr(s string) *string { return &s }

// DefaultSettings 初始店铺配置
func DefaultSettings() *models.StoreSettings {
	return &models.StoreSettings{
		ID:             models.SettingsID,
		StoreName:      "Chic Threads",
		LogoURL:        strPtr("/vite.svg"),
		ShopAddress:    strPtr("123 Fashion Ave, Style City, 12345"),
		InstagramID:    strPtr("chicthreads"),
		WhatsappNumber: strPtr("+1234567890"),
	}
}

// DefaultProducts 初始商品目录，ID 固定
func DefaultProducts() []*models.Product {
	p := func(id uint64, name, price, desc, category string) *models.Product {
		return &models.Product{
			ID:          id,
			Name:        name,
			Price:       decimal.RequireFromString(price),
			Description: desc,
			ImageURL:    fmt.Sprintf("https://picsum.photos/seed/product%d/600/600", id),
			Category:    category,
		}
	}
	return []*models.Product{
		p(1, "Classic Denim Jacket", "89.99", "A timeless denim jacket that completes any casual look. Made with 100% organic cotton for ultimate comfort and durability. Features classic brass buttons and four pockets.", "Jackets"),
		p(2, "Linen Blend Shirt", "45.00", "Stay cool and stylish with this breathable linen-blend shirt. Perfect for warm weather, it offers a relaxed fit and a soft, comfortable feel. Available in multiple summer colors.", "Shirts"),
		p(3, "Slim-Fit Chinos", "65.50", "Versatile and modern, these slim-fit chinos are a wardrobe essential. Made from a comfortable stretch-twill fabric, they are perfect for both office and weekend wear.", "Pants"),
		p(4, "Merino Wool Sweater", "120.00", "Luxuriously soft and warm, this sweater is crafted from 100% fine merino wool. Its classic crewneck design makes it a versatile layering piece for colder months.", "Sweaters"),
		p(5, "Leather Ankle Boots", "150.00", "Handcrafted from genuine leather, these ankle boots feature a sleek design with a sturdy sole. They add a touch of sophistication to any outfit, from jeans to dresses.", "Shoes"),
		p(6, "Graphic Print T-Shirt", "29.99", "Express yourself with this soft cotton t-shirt featuring a unique, artistic graphic print. It has a comfortable, regular fit for everyday wear.", "T-Shirts"),
		p(7, "Tailored Wool Blazer", "220.00", "A beautifully tailored blazer made from premium Italian wool. This single-breasted jacket features sharp lapels and a structured silhouette for a polished, professional look.", "Jackets"),
		p(8, "Silk Scarf", "55.00", "Add a pop of color and elegance to your ensemble with this 100% silk scarf. It features a vibrant, abstract pattern and a luxuriously smooth feel.", "Accessories"),
	}
}

func sampleReviews() []*models.Review {
	return []*models.Review{
		{ProductID: 1, Rating: 5, Comment: "Absolutely love this jacket! It fits perfectly and the quality is amazing.", AuthorName: "Alice"},
		{ProductID: 1, Rating: 4, Comment: "Great style, very versatile. A little stiff at first but softens up nicely.", AuthorName: "Bob"},
		{ProductID: 3, Rating: 5, Comment: "These are the best chinos I have ever owned. The fit is perfect and they are so comfortable.", AuthorName: "Charlie"},
		{ProductID: 4, Rating: 5, Comment: "So soft and warm! Worth every penny. I want it in every color.", AuthorName: "Diana"},
	}
}

// Seed 可重复执行：配置只在缺失时写入，商品按 ID 覆盖，评价只在表为空时写入
func (s *SeedService) Seed(ctx context.Context) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := dao.NewSettings(tx).EnsureDefault(ctx, DefaultSettings()); err != nil {
			return fmt.Errorf("seed settings: %w", err)
		}

		products := DefaultProducts()
		if err := dao.NewProduct(tx).Upsert(ctx, products); err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
		// 显式写入 ID 后 PostgreSQL 的序列不会自动前移
		if tx.Dialector.Name() == "postgres" {
			err := tx.Exec("SELECT setval(pg_get_serial_sequence('products', 'id'), (SELECT MAX(id) FROM products))").Error
			if err != nil {
				return fmt.Errorf("reset products sequence: %w", err)
			}
		}

		reviewDao := dao.NewReview(tx)
		count, err := reviewDao.Count(ctx)
		if err != nil {
			return err
		}
		if count == 0 {
			if err := reviewDao.CreateBatch(ctx, sampleReviews()); err != nil {
				return fmt.Errorf("seed reviews: %w", err)
			}
		}

		log.L.Info("seed finished", zap.Int("products", len(products)), zap.Bool("reviews_seeded", count == 0))
		return nil
	})
}
