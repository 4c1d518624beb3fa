package handler

import (
	"Storefront/pkg/context"
	"Storefront/pkg/response"
	"Storefront/service"
	"Storefront/types"

	"github.com/gin-gonic/gin"
)

type Product struct {
	ProductService service.IProductService
	AdminService   service.IAdminService
}

func (p *Product) RegisterRouter(r gin.IRouter) {
	r.GET("/products", context.Wrap(p.ListProducts))
	r.GET("/categories", context.Wrap(p.Categories))
	r.POST("/add-product", context.Wrap(p.AddProduct))
}

func (p *Product) ListProducts(c *gin.Context) error {
	var filter types.ProductFilter
	// 参数都是字符串，绑定失败按无过滤处理
	_ = c.ShouldBindQuery(&filter)

	products, err := p.ProductService.ListProducts(c.Request.Context(), filter)
	if err != nil {
		return err
	}
	response.Success(c, products)
	return nil
}

func (p *Product) Categories(c *gin.Context) error {
	categories, err := p.ProductService.Categories(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, categories)
	return nil
}

func (p *Product) AddProduct(c *gin.Context) error {
	var req types.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest(msgInvalidJSON)
	}
	if err := authorizeAdmin(c, p.AdminService, req.Password); err != nil {
		return err
	}

	product, err := p.ProductService.AddProduct(c.Request.Context(), req.Product)
	if err != nil {
		return err
	}
	response.Created(c, product)
	return nil
}
