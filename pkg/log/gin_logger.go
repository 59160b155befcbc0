package log

import (
	"fmt"
	"net/http"
	"time"

	"paint_estimator/pkg/requestid"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GinLogger logs one line per completed request.
func GinLogger(l *zap.Logger, name string) gin.HandlerFunc {
	if l == nil {
		panic("log.GinLogger received a nil *zap.Logger")
	}
	logger := l.Named(name)

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		fields := []zap.Field{
			zap.String("request_id", requestid.FromContext(c.Request.Context())),
			zap.String("http_method", c.Request.Method),
			zap.String("http_path", path),
			zap.Int("http_status_code", status),
			zap.Int("response_bytes", c.Writer.Size()),
			zap.Duration("latency", time.Since(start)),
			zap.String("remote_addr", c.ClientIP()),
		}
		msg := fmt.Sprintf("HTTP request completed: %s", path)

		switch {
		case status >= 500:
			logger.Error(msg, fields...)
		case status >= 400:
			logger.Warn(msg, fields...)
		case isHealthCheck(c.Request.Method, path):
			logger.Debug(msg, fields...)
		default:
			logger.Info(msg, fields...)
		}
	}
}

func isHealthCheck(method, path string) bool {
	return method == http.MethodGet && (path == "/health" || path == "/metrics")
}
