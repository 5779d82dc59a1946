package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger пишет в лог каждый запрос. Приватные ошибки хендлеров попадают в лог, но не в ответ.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := l.WithFields(logrus.Fields{
		"component": "transport",
		"module":    "api",
	})
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"ip":      c.ClientIP(),
		}
		reqLog := entry.WithFields(fields)
		if len(c.Errors) > 0 {
			reqLog = reqLog.WithField("errors", c.Errors.String())
		}

		switch status := c.Writer.Status(); {
		case status >= 500: //nolint:mnd
			reqLog.Error("request failed")
		case status >= 400: //nolint:mnd
			reqLog.Warn("request rejected")
		default:
			reqLog.Debug("request served")
		}
	}
}
