package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"brickonomics/pkg"
	"brickonomics/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logging logs basic request information with request ID.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.L().Info("request",
			zap.String("id", GetRequestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", c.ClientIP()),
		)
	}
}

// Recovery logs panics and returns 500 with a generic body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.L().Error("panic recovered",
			zap.String("id", GetRequestID(c)),
			zap.Any("panic", recovered),
			zap.ByteString("stack", debug.Stack()),
		)
		appErr := pkg.NewDomainErrorSimple(pkg.CodeInternal, "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}
