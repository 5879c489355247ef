package handler

import (
	"errors"
	"net/http"
	"strconv"

	"cardapio/internal/middleware"
	"cardapio/internal/observability"
	"cardapio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorResponse is the single error envelope of the API.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Message: he.Message, Errors: he.Errors})
	}

	//500, details stay in the logs
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
}

func getUserIDFromContext(c echo.Context) (int64, bool) {
	id, ok := c.Get(middleware.CtxUserIDKey).(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

func parseIDParam(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized"})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Message: msg})
}

// HTTPErrorHandler renders errors that never reached a handler (unknown route,
// body too large, recovered panics) in the same envelope.
func HTTPErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		msg := "internal error"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			} else {
				msg = http.StatusText(status)
			}
		} else if uhe, ok := usecase.AsHTTPError(err); ok {
			status, msg = uhe.Status, uhe.Message
		}

		if status >= http.StatusInternalServerError {
			observability.FromContext(c.Request().Context(), log).Error("unhandled error", zap.Error(err))
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, ErrorResponse{Message: msg})
	}
}
