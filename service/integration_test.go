//go:build integration
// +build integration

package service

import (
	"Storefront/config"
	"Storefront/dao"
	"Storefront/pkg/database"
	"Storefront/types"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("storefront"),
		postgres.WithUsername("storefront"),
		postgres.WithPassword("storefront"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conf := &config.Config{
		App:      &config.App{},
		Database: &config.Database{Driver: config.DriverPostgres, DSN: dsn, MaxOpenConns: 5, MaxIdleConns: 2, ConnMaxLifetime: time.Minute},
	}
	db, cleanup, err := database.ProvideDB(conf)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	require.NoError(t, database.Migrate(db))
	return db
}

func TestPostgresEndToEnd(t *testing.T) {
	ctx := context.Background()
	db := setupPostgres(t)

	seed := &SeedService{DB: db}
	require.NoError(t, seed.Seed(ctx))
	require.NoError(t, seed.Seed(ctx))

	products := newProductService(db)

	// 序列已经越过种子数据的 ID
	added, err := products.AddProduct(ctx, &types.NewProduct{Name: "Cotton_Tee 100%", Price: decPtr("12.50"), Category: "T-Shirts"})
	require.NoError(t, err)
	assert.Equal(t, uint64(9), added.ID)

	list, err := products.ListProducts(ctx, types.ProductFilter{Search: "_tee 100%"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Cotton_Tee 100%"}, names(list))

	list, err = products.ListProducts(ctx, types.ProductFilter{Category: "Jackets", SortBy: types.SortPriceAsc})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.InDelta(t, 4.5, list[0].AvgRating, 1e-9)
	assert.Equal(t, "89.99", list[0].Price.StringFixed(2))

	orders := newOrderService(t, db, &recordingNotifier{})
	order, err := orders.PlaceOrder(ctx, deliveryRequest(item(1, "0.10", 3), item(2, "0.20", 1)))
	require.NoError(t, err)
	assert.Equal(t, "0.50", order.TotalPrice.StringFixed(2))

	stored, err := dao.NewOrder(db).GetWithItems(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.50", stored.TotalPrice.StringFixed(2))
	assert.Len(t, stored.Items, 2)

	// 明细失败时整单回滚
	_, err = orders.PlaceOrder(ctx, deliveryRequest(item(1, "1.00", 1), item(424242, "1.00", 1)))
	require.Error(t, err)
	count, err := dao.NewOrder(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	reviews := newReviewService(db)
	_, err = reviews.Create(ctx, &types.CreateReviewRequest{ProductID: 9, Rating: rating(3), AuthorName: "Pat"})
	require.NoError(t, err)
	got, err := reviews.List(ctx, "9")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
