package middleware

import (
	"time"

	"gomart-be/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logging logs every HTTP request in structured JSON.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.FromCtx(c.Request.Context()).Info("incoming request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("ip", c.ClientIP()),
			zap.Duration("duration_ms", time.Since(start)),
		)
	}
}
