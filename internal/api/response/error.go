package response

import (
	"ctchen222/acme-store/internal/api/apperr"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every error answer.
type ErrorBody struct {
	Message string `json:"error"`
}

// Fail logs err with full detail and answers with the status code and client-safe
// message of its apperr kind. Unclassified errors become a generic 500.
func Fail(c *gin.Context, err error) {
	status, message := apperr.Status(err)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(c.Request.Context(), level, "Request failed",
		"http.method", c.Request.Method,
		"http.path", c.FullPath(),
		"http.status", status,
		"request.id", c.GetString(RequestIDKey),
		"error", err,
	)

	_ = c.Error(err)
	ErrorResponse(c, status, message)
}

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"
