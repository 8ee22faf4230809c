package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/contactrelay/common"
)

// Bind decodes a JSON or urlencoded body into dest, chosen by Content-Type.
// An empty body or a value of the wrong shape is a validation error. A body
// that cannot be parsed at all, including one over the size cap, is left to
// ErrorHandler as an internal error.
func Bind[T any](c *gin.Context, dest *T) bool {
	err := c.ShouldBind(dest)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.Is(err, io.EOF) || errors.As(err, &typeErr) {
		c.Error(common.ValidationError()).SetMeta("invalid request body: " + err.Error())
		return false
	}

	c.Error(fmt.Errorf("parse request body: %w", err))
	return false
}
