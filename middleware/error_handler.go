package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshu-sajeev/contactrelay/common"
	"go.uber.org/zap"
)

// ErrorHandler is the single place errors become responses. Every error is
// logged with full detail while clients only receive the generic body of
// its kind.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		err := last.Err

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		}
		if last.Meta != nil {
			fields = append(fields, zap.Any("detail", last.Meta))
		}

		if c.Writer.Written() {
			logger.Error("error after response was written", fields...)
			return
		}

		var apiErr common.APIError
		switch {
		case errors.Is(err, common.ErrCORSNotAllowed):
			logger.Warn("request rejected", fields...)
			c.JSON(http.StatusForbidden, common.CORSError())
		case errors.As(err, &apiErr):
			if apiErr.Status >= http.StatusInternalServerError {
				logger.Error("request failed", fields...)
			} else {
				logger.Info("request rejected", fields...)
			}
			c.JSON(apiErr.Status, apiErr)
		default:
			logger.Error("global error handler", fields...)
			c.JSON(http.StatusInternalServerError,
				common.InternalError("Something went wrong on the server"))
		}
	}
}

// Recovery turns panics into errors for ErrorHandler, which must be
// registered before it.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		c.Error(fmt.Errorf("panic recovered: %v", recovered))
		c.Abort()
	})
}
