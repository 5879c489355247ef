package observability

import (
	"net/http"
	"time"

	"cardapio/internal/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request and exposes a request-scoped
// logger to downstream code through the request context.
// Must run after echo's RequestID middleware.
func RequestLogger(base *zap.Logger) echo.MiddlewareFunc {
	if base == nil {
		base = zap.NewNop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = req.Header.Get(echo.HeaderXRequestID)
			}

			logger := base.With(
				zap.String("request_id", requestID),
				zap.String("method", req.Method),
				zap.String("route", c.Path()),
				zap.String("remote_ip", c.RealIP()),
			)
			c.SetRequest(req.WithContext(WithLogger(req.Context(), logger)))

			start := time.Now()
			err := next(c)
			if err != nil {
				//let echo write the response so the status is known
				c.Error(err)
			}

			fields := []zap.Field{
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
				zap.Int64("bytes", c.Response().Size),
			}
			if uid, ok := c.Get(middleware.CtxUserIDKey).(int64); ok {
				fields = append(fields, zap.Int64("user_id", uid))
			}

			status := c.Response().Status
			switch {
			case status >= http.StatusInternalServerError:
				logger.Error("request completed", fields...)
			case status >= http.StatusBadRequest:
				logger.Warn("request completed", fields...)
			default:
				logger.Info("request completed", fields...)
			}
			return nil
		}
	}
}
