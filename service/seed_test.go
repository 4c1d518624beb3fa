package service

import (
	"Storefront/models"
	"Storefront/pkg/database/dbtest"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	seed := &SeedService{DB: db}

	require.NoError(t, seed.Seed(ctx))

	// 手动修改后再次执行：商品被覆盖，配置保留
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", 1).Update("name", "Renamed").Error)
	require.NoError(t, db.Model(&models.StoreSettings{}).Where("id = ?", models.SettingsID).Update("store_name", "Mine").Error)
	require.NoError(t, seed.Seed(ctx))

	var products, reviews, settings int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&models.Review{}).Count(&reviews).Error)
	require.NoError(t, db.Model(&models.StoreSettings{}).Count(&settings).Error)
	assert.Equal(t, int64(len(DefaultProducts())), products)
	assert.Equal(t, int64(4), reviews)
	assert.Equal(t, int64(1), settings)

	var first models.Product
	require.NoError(t, db.First(&first, 1).Error)
	assert.Equal(t, "Classic Denim Jacket", first.Name)

	var s models.StoreSettings
	require.NoError(t, db.First(&s, models.SettingsID).Error)
	assert.Equal(t, "Mine", s.StoreName)
}
