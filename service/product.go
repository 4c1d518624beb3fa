package service

import (
	"Storefront/dao"
	"Storefront/models"
	"Storefront/pkg/response"
	"Storefront/types"
	"context"
	"strings"
)

type ProductService struct {
	ProductDao *dao.Product
}

var _ IProductService = (*ProductService)(nil)

type IProductService interface {
	ListProducts(ctx context.Context, filter types.ProductFilter) ([]*types.ProductWithRating, error)
	Categories(ctx context.Context) ([]string, error)
	AddProduct(ctx context.Context, req *types.NewProduct) (*models.Product, error)
}

func (s *ProductService) ListProducts(ctx context.Context, filter types.ProductFilter) ([]*types.ProductWithRating, error) {
	products, err := s.ProductDao.ListWithRating(ctx, filter)
	if err != nil {
		return nil, response.Internal("Failed to fetch products from the database.", err)
	}
	return products, nil
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.ProductDao.Categories(ctx)
	if err != nil {
		return nil, response.Internal("Failed to fetch categories from the database.", err)
	}
	return categories, nil
}

func (s *ProductService) AddProduct(ctx context.Context, req *types.NewProduct) (*models.Product, error) {
	if req == nil || strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Category) == "" || req.Price == nil {
		return nil, response.BadRequest("Bad Request: Missing required product fields.")
	}
	if req.Price.IsNegative() {
		return nil, response.BadRequest("Bad Request: Price must not be negative.")
	}

	product := &models.Product{
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price.Round(2),
		Description: req.Description,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Category:    strings.TrimSpace(req.Category),
	}
	if err := s.ProductDao.Create(ctx, product); err != nil {
		return nil, response.Internal("Failed to add product to the database.", err)
	}
	return product, nil
}
