package dao

import (
	"Storefront/models"
	"context"

	"gorm.io/gorm"
)

type Review struct {
	Repo[models.Review]
}

func NewReview(db *gorm.DB) *Review {
	return &Review{
		Repo: NewRepo[models.Review](db),
	}
}

// ListByProduct 按时间倒序，同一时间按 ID 倒序
func (d *Review) ListByProduct(ctx context.Context, productID uint64) ([]*models.Review, error) {
	reviews := make([]*models.Review, 0)
	err := d.Db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&reviews).Error
	return reviews, err
}

// CreateBatch 批量写入
func (d *Review) CreateBatch(ctx context.Context, reviews []*models.Review) error {
	if len(reviews) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).Create(&reviews).Error
}
