package controller

import (
	"ctchen222/acme-store/internal/api/models"
	"ctchen222/acme-store/internal/api/response"
	"ctchen222/acme-store/internal/api/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProductController handles product catalogue requests.
type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// Create handles POST /api/products.
func (pc *ProductController) Create(c *gin.Context) {
	var req models.CreateProductRequest
	if err := bindJSON(c, &req, "name is required"); err != nil {
		response.Fail(c, err)
		return
	}

	product, err := pc.productService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusCreated, product)
}

// List handles GET /api/products.
func (pc *ProductController) List(c *gin.Context) {
	products, err := pc.productService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessResponseList(c, products)
}
