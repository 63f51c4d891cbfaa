package controller

import (
	"ctchen222/acme-store/internal/api/models"
	"ctchen222/acme-store/internal/api/response"
	"ctchen222/acme-store/internal/api/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// FavoriteController handles the favorites of a single user.
type FavoriteController struct {
	favoriteService service.FavoriteService
}

// NewFavoriteController creates a new FavoriteController.
func NewFavoriteController(favoriteService service.FavoriteService) *FavoriteController {
	return &FavoriteController{favoriteService: favoriteService}
}

// List handles GET /api/users/:id/favorites.
func (fc *FavoriteController) List(c *gin.Context) {
	userID, err := idParam(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}

	products, err := fc.favoriteService.List(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessResponseList(c, products)
}

// Create handles POST /api/users/:id/favorites.
func (fc *FavoriteController) Create(c *gin.Context) {
	userID, err := idParam(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}

	var req models.CreateFavoriteRequest
	if err := bindJSON(c, &req, "product_id is required"); err != nil {
		response.Fail(c, err)
		return
	}

	favorite, err := fc.favoriteService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusCreated, favorite)
}

// Delete handles DELETE /api/users/:id/favorites/:favoriteId. It answers 204 whether
// or not a row was removed.
func (fc *FavoriteController) Delete(c *gin.Context) {
	userID, err := idParam(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}
	favoriteID, err := idParam(c, "favoriteId")
	if err != nil {
		response.Fail(c, err)
		return
	}

	if err := fc.favoriteService.Delete(c.Request.Context(), userID, favoriteID); err != nil {
		response.Fail(c, err)
		return
	}

	response.NoContent(c)
}
