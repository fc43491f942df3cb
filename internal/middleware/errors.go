package middleware

import (
	"errors"

	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/internal/apierr"
	"github.com/hx450652229/cd0037-API-Development-and-Documentation-project/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorTranslator renders the uniform error envelope for failures recorded
// by handlers via c.Error. Anything outside the taxonomy is logged and
// reported as an internal error; the cause never reaches the client.
func ErrorTranslator() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var apiErr *apierr.Error
		if !errors.As(err, &apiErr) {
			logger.Log.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			apiErr = apierr.Internal
		}

		c.JSON(apiErr.Status, apiErr.Response())
	}
}

// Recovery turns panics into the internal-error envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log.Error("panic recovered",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
		)
		c.AbortWithStatusJSON(apierr.Internal.Status, apierr.Internal.Response())
	})
}
