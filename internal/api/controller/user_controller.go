package controller

import (
	"ctchen222/acme-store/internal/api/models"
	"ctchen222/acme-store/internal/api/response"
	"ctchen222/acme-store/internal/api/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserController handles user-related HTTP requests.
type UserController struct {
	userService service.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Create handles POST /api/users.
func (uc *UserController) Create(c *gin.Context) {
	var req models.CreateUserRequest
	if err := bindJSON(c, &req, "username and password are required"); err != nil {
		response.Fail(c, err)
		return
	}

	user, err := uc.userService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusCreated, user)
}

// List handles GET /api/users.
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.userService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessResponseList(c, users)
}
