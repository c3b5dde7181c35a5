package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware creates middleware for Echo framework using Zap logger
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Start timer
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			// Process request
			err := next(c)

			// Calculate metrics
			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			// Format URL
			if raw != "" {
				path = path + "?" + raw
			}

			// Get request ID
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			fields := []Field{
				Int("status", statusCode),
				Duration("latency", latency),
				String("client_ip", clientIP),
				String("method", method),
				String("path", path),
				String("request_id", requestID),
			}
			if err != nil {
				fields = append(fields, Err(err))
				logger.Error("HTTP request completed with error", fields...)
			} else {
				logger.Info("HTTP request completed", fields...)
			}

			return err
		}
	}
}
