package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/fastaxi/dispatch/internal/pkg/logger"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics and
// logs them with a stack trace instead of crashing the process.
func PanicRecoveryMiddleware(appLogger *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					appLogger.WithFields(logrus.Fields{
						"method": c.Request().Method,
						"path":   c.Request().URL.Path,
						"stack":  string(debug.Stack()),
					}).WithError(err).Error("Recovered from panic")

					_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
						"success": false,
						"error":   "Internal server error",
					})
				}
			}()

			return next(c)
		}
	}
}
