package service

import (
	"Storefront/config"
	"Storefront/dao"
	"Storefront/pkg/database/dbtest"
	"Storefront/pkg/response"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		App:    &config.App{HashSalt: "test-salt"},
		Admin:  &config.Admin{Password: "s3cret", TokenTTL: time.Hour},
		Chat:   &config.Chat{MaxHistory: 6},
		Notify: &config.Notify{Email: "ops@example.com"},
		Order:  &config.Order{},
	}
}

// seededDB 内存库并写入默认商品、配置和评价
func seededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := dbtest.New(t)
	require.NoError(t, (&SeedService{DB: db}).Seed(context.Background()))
	return db
}

func newProductService(db *gorm.DB) *ProductService {
	return &ProductService{ProductDao: dao.NewProduct(db)}
}

// requireBizError 断言错误类型和状态码
func requireBizError(t *testing.T, err error, code int) *response.BizError {
	t.Helper()
	require.Error(t, err)
	var be *response.BizError
	require.True(t, errors.As(err, &be), "expected BizError, got %v", err)
	require.Equal(t, code, be.Code, be.Msg)
	return be
}
