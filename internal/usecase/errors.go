package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cardapio/internal/observability"

	"go.uber.org/zap"
)

// HTTPError is what every usecase returns on failure. Errors carries per-field
// validation messages keyed by JSON path (items[0].quantity).
type HTTPError struct {
	Status  int
	Message string
	Errors  map[string]string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func NewValidationError(message string, fields map[string]string) error {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: message,
		Errors:  fields,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// dbError logs the cause and hides it from the client.
func dbError(ctx context.Context, log *zap.Logger, op string, err error) error {
	observability.FromContext(ctx, log).Error("db error", zap.String("op", op), zap.Error(err))
	return NewHTTPError(http.StatusInternalServerError, "db error")
}

// passthrough keeps HTTPErrors raised inside a transaction callback.
func passthrough(ctx context.Context, log *zap.Logger, op string, err error) error {
	if _, ok := AsHTTPError(err); ok {
		return err
	}
	return dbError(ctx, log, op, err)
}
