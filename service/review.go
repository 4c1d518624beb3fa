package service

import (
	"Storefront/dao"
	"Storefront/models"
	"Storefront/pkg/response"
	"Storefront/types"
	"context"
	"math"
	"strconv"
	"strings"
)

type ReviewService struct {
	ReviewDao  *dao.Review
	ProductDao *dao.Product
}

var _ IReviewService = (*ReviewService)(nil)

type IReviewService interface {
	List(ctx context.Context, productID string) ([]*models.Review, error)
	Create(ctx context.Context, req *types.CreateReviewRequest) (*models.Review, error)
}

func (s *ReviewService) List(ctx context.Context, productID string) ([]*models.Review, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, response.BadRequest("productId query parameter is required")
	}
	id, err := strconv.ParseUint(productID, 10, 64)
	if err != nil || id == 0 {
		return nil, response.BadRequest("productId must be a positive integer")
	}

	reviews, err := s.ReviewDao.ListByProduct(ctx, id)
	if err != nil {
		return nil, response.Internal("Failed to fetch reviews", err)
	}
	return reviews, nil
}

func (s *ReviewService) Create(ctx context.Context, req *types.CreateReviewRequest) (*models.Review, error) {
	author := strings.TrimSpace(req.AuthorName)
	if req.ProductID == 0 || req.Rating == nil || author == "" {
		return nil, response.BadRequest("Missing required fields: productId, rating, author_name")
	}
	rating := *req.Rating
	if rating != math.Trunc(rating) || rating < models.MinRating || rating > models.MaxRating {
		return nil, response.BadRequest("Rating must be a number between 1 and 5")
	}

	exists, err := s.ProductDao.Exists(ctx, req.ProductID)
	if err != nil {
		return nil, response.Internal("Failed to add review", err)
	}
	if !exists {
		return nil, response.BadRequest("Product does not exist")
	}

	review := &models.Review{
		ProductID:  req.ProductID,
		Rating:     int(rating),
		Comment:    strings.TrimSpace(req.Comment),
		AuthorName: author,
	}
	if err := s.ReviewDao.Create(ctx, review); err != nil {
		return nil, response.Internal("Failed to add review", err)
	}
	return review, nil
}
