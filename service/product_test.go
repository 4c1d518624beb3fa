package service

import (
	"Storefront/types"
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(products []*types.ProductWithRating) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestListProductsRatingAggregate(t *testing.T) {
	svc := newProductService(seededDB(t))

	products, err := svc.ListProducts(context.Background(), types.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 8)

	// 默认按 ID 升序
	for i, p := range products {
		assert.Equal(t, uint64(i+1), p.ID)
	}
	assert.InDelta(t, 4.5, products[0].AvgRating, 1e-9)
	assert.Equal(t, int64(2), products[0].ReviewCount)
	assert.InDelta(t, 5.0, products[2].AvgRating, 1e-9)
	assert.Equal(t, int64(1), products[2].ReviewCount)
	assert.Equal(t, 0.0, products[1].AvgRating)
	assert.Equal(t, int64(0), products[1].ReviewCount)
	assert.True(t, decimal.RequireFromString("89.99").Equal(products[0].Price))
}

func TestListProductsFilters(t *testing.T) {
	ctx := context.Background()
	svc := newProductService(seededDB(t))

	products, err := svc.ListProducts(ctx, types.ProductFilter{Category: "Jackets"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Classic Denim Jacket", "Tailored Wool Blazer"}, names(products))

	products, err = svc.ListProducts(ctx, types.ProductFilter{Search: "WOOL"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Merino Wool Sweater", "Tailored Wool Blazer"}, names(products))

	// 条件取交集
	products, err = svc.ListProducts(ctx, types.ProductFilter{Search: "wool", Category: "Jackets"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Tailored Wool Blazer"}, names(products))

	products, err = svc.ListProducts(ctx, types.ProductFilter{Category: types.CategoryAll})
	require.NoError(t, err)
	assert.Len(t, products, 8)

	products, err = svc.ListProducts(ctx, types.ProductFilter{Search: "no such thing"})
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestListProductsSearchIsLiteral(t *testing.T) {
	ctx := context.Background()
	db := seededDB(t)
	svc := newProductService(db)

	_, err := svc.AddProduct(ctx, &types.NewProduct{Name: "100% Cotton_Tee", Price: decPtr("10"), Category: "T-Shirts"})
	require.NoError(t, err)

	products, err := svc.ListProducts(ctx, types.ProductFilter{Search: "%"})
	require.NoError(t, err)
	assert.Equal(t, []string{"100% Cotton_Tee"}, names(products))

	products, err = svc.ListProducts(ctx, types.ProductFilter{Search: "a_e"})
	require.NoError(t, err)
	assert.Empty(t, products)

	products, err = svc.ListProducts(ctx, types.ProductFilter{Search: "on_t"})
	require.NoError(t, err)
	assert.Equal(t, []string{"100% Cotton_Tee"}, names(products))
}

func TestListProductsSort(t *testing.T) {
	ctx := context.Background()
	svc := newProductService(seededDB(t))

	products, err := svc.ListProducts(ctx, types.ProductFilter{SortBy: types.SortPriceAsc})
	require.NoError(t, err)
	for i := 1; i < len(products); i++ {
		assert.True(t, products[i-1].Price.LessThanOrEqual(products[i].Price))
	}

	products, err = svc.ListProducts(ctx, types.ProductFilter{SortBy: types.SortPriceDesc})
	require.NoError(t, err)
	assert.Equal(t, "Tailored Wool Blazer", products[0].Name)

	products, err = svc.ListProducts(ctx, types.ProductFilter{SortBy: types.SortNameAsc})
	require.NoError(t, err)
	assert.Equal(t, "Classic Denim Jacket", products[0].Name)

	products, err = svc.ListProducts(ctx, types.ProductFilter{SortBy: types.SortNameDesc})
	require.NoError(t, err)
	assert.Equal(t, "Tailored Wool Blazer", products[0].Name)

	products, err = svc.ListProducts(ctx, types.ProductFilter{Category: "Jackets", SortBy: types.SortPriceDesc})
	require.NoError(t, err)
	assert.Equal(t, []string{"Tailored Wool Blazer", "Classic Denim Jacket"}, names(products))
}

func TestListProductsUnknownSortIsDefault(t *testing.T) {
	ctx := context.Background()
	svc := newProductService(seededDB(t))

	want, err := svc.ListProducts(ctx, types.ProductFilter{})
	require.NoError(t, err)
	got, err := svc.ListProducts(ctx, types.ProductFilter{SortBy: "price; DROP TABLE products"})
	require.NoError(t, err)
	assert.Equal(t, names(want), names(got))
}

func TestCategories(t *testing.T) {
	svc := newProductService(seededDB(t))

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Accessories", "Jackets", "Pants", "Shirts", "Shoes", "Sweaters", "T-Shirts"}, categories)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestAddProduct(t *testing.T) {
	ctx := context.Background()
	svc := newProductService(seededDB(t))

	p, err := svc.AddProduct(ctx, &types.NewProduct{
		Name:     " Wool Beanie ",
		Price:    decPtr("19.999"),
		ImageURL: "https://img.example.com/beanie.jpg",
		Category: "Accessories",
	})
	require.NoError(t, err)
	assert.Greater(t, p.ID, uint64(8))
	assert.Equal(t, "Wool Beanie", p.Name)
	assert.Equal(t, "20", p.Price.String())

	_, err = svc.AddProduct(ctx, &types.NewProduct{Name: "No price", Category: "Hats"})
	requireBizError(t, err, http.StatusBadRequest)

	_, err = svc.AddProduct(ctx, &types.NewProduct{Name: "Neg", Category: "Hats", Price: decPtr("-1")})
	requireBizError(t, err, http.StatusBadRequest)

	_, err = svc.AddProduct(ctx, &types.NewProduct{Name: "", Category: "Hats", Price: decPtr("1")})
	requireBizError(t, err, http.StatusBadRequest)
}
