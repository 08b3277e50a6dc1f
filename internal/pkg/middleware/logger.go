package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/fastaxi/dispatch/internal/pkg/logger"
)

// LoggerMiddleware creates a middleware for request logging
func LoggerMiddleware(appLogger *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			if raw != "" {
				path = path + "?" + raw
			}

			entry := appLogger.WithFields(logrus.Fields{
				"status":     statusCode,
				"latency":    latency.String(),
				"latency_ms": latency.Milliseconds(),
				"client_ip":  c.RealIP(),
				"method":     c.Request().Method,
				"path":       path,
			})

			switch {
			case statusCode >= 500:
				if err != nil {
					entry = entry.WithError(err)
				}
				entry.Error("Server error")
			case statusCode >= 400:
				entry.Warn("Client error")
			default:
				entry.Info("Request processed")
			}

			return err
		}
	}
}
