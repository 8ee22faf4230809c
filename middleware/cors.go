package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/contactrelay/common"
)

type CORSOptions struct {
	// AllowOrigin decides whether a non-empty Origin may access the API.
	AllowOrigin func(origin string) bool
	Methods     []string
	Headers     []string
}

// CORS lets requests without an Origin header through untouched. Rejected
// origins are handed to ErrorHandler as common.ErrCORSNotAllowed.
func CORS(opts CORSOptions) gin.HandlerFunc {
	methods := strings.Join(opts.Methods, ",")
	headers := strings.Join(opts.Headers, ",")

	return func(c *gin.Context) {
		origin := strings.TrimSpace(c.GetHeader("Origin"))
		if origin == "" {
			c.Next()
			return
		}

		if opts.AllowOrigin != nil && !opts.AllowOrigin(origin) {
			c.Error(common.ErrCORSNotAllowed)
			c.Abort()
			return
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Add("Vary", "Origin")
		h.Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			h.Set("Access-Control-Allow-Methods", methods)
			h.Set("Access-Control-Allow-Headers", headers)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
