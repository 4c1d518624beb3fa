package handler

import (
	"Storefront/pkg/context"
	"Storefront/pkg/response"
	"Storefront/service"
	"Storefront/types"

	"github.com/gin-gonic/gin"
)

type Order struct {
	OrderService service.IOrderService
}

func (o *Order) RegisterRouter(r gin.IRouter) {
	r.POST("/place-order", context.Wrap(o.PlaceOrder))
}

func (o *Order) PlaceOrder(c *gin.Context) error {
	var req types.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Bad Request: Invalid JSON.")
	}

	order, err := o.OrderService.PlaceOrder(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, order)
	return nil
}
