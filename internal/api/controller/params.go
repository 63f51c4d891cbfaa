package controller

import (
	"ctchen222/acme-store/internal/api/apperr"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const invalidBodyMessage = "invalid request body"

// idParam parses a non-negative integer path parameter.
func idParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 0 {
		return 0, apperr.Validation("invalid " + name)
	}
	return id, nil
}

// bindJSON decodes the request body into req. A well-formed body that lacks a
// required field is reported with missingMsg, anything unparsable as an invalid body.
func bindJSON(c *gin.Context, req any, missingMsg string) error {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return apperr.Validation(missingMsg)
	}
	return apperr.Validation(invalidBodyMessage)
}
