package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse writes body as JSON with the given status code.
func SuccessResponse(c *gin.Context, code int, body any) {
	c.JSON(code, body)
}

// SuccessResponseList writes a JSON array. A nil slice is written as [] rather than null.
func SuccessResponseList[T any](c *gin.Context, list []T) {
	if list == nil {
		list = []T{}
	}
	c.JSON(http.StatusOK, list)
}

// NoContent writes a 204 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ErrorResponse writes {"error": message} with the given status code.
func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Message: message})
}
