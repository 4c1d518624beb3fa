package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用仓储，具体 DAO 通过嵌入获得基础读写
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) FindById(ctx context.Context, id uint64) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Create(item).Error
}

func (r Repo[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(new(T)).Count(&count).Error
	return count, err
}
