package handler

import (
	"Storefront/pkg/context"
	"Storefront/pkg/response"
	"Storefront/service"
	"Storefront/types"

	"github.com/gin-gonic/gin"
)

type Review struct {
	ReviewService service.IReviewService
}

func (h *Review) RegisterRouter(r gin.IRouter) {
	r.GET("/reviews", context.Wrap(h.List))
	r.POST("/reviews", context.Wrap(h.Create))
}

func (h *Review) List(c *gin.Context) error {
	var req types.ListReviewsRequest
	_ = c.ShouldBindQuery(&req)

	reviews, err := h.ReviewService.List(c.Request.Context(), req.ProductID)
	if err != nil {
		return err
	}
	response.Success(c, reviews)
	return nil
}

func (h *Review) Create(c *gin.Context) error {
	var req types.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Invalid JSON format")
	}

	review, err := h.ReviewService.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, review)
	return nil
}
