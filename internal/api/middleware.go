package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/logger"
)

// requestLogger logs every request through the shared zap logger instead of
// echo's stdout format.
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ctx := c.Request().Context()
			if v.Error != nil {
				logger.Errorf(ctx, "%s %s -> %d (%s): %s", v.Method, v.URI, v.Status, v.Latency, v.Error.Error())
				return nil
			}
			logger.Infof(ctx, "%s %s -> %d (%s)", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	})
}
