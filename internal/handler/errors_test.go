package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cardapio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newCtx(method string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestWriteError(t *testing.T) {
	t.Run("usecase error keeps status and field errors", func(t *testing.T) {
		c, rec := newCtx(http.MethodPost)
		err := usecase.NewValidationError("invalid order", map[string]string{"items": "must contain at least one item"})

		require.NoError(t, writeError(c, err))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"invalid order","errors":{"items":"must contain at least one item"}}`, rec.Body.String())
	})

	t.Run("errors field omitted when empty", func(t *testing.T) {
		c, rec := newCtx(http.MethodGet)

		require.NoError(t, writeError(c, usecase.NewHTTPError(http.StatusNotFound, "order not found")))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"order not found"}`, rec.Body.String())
	})

	t.Run("unknown error hides details", func(t *testing.T) {
		c, rec := newCtx(http.MethodGet)

		require.NoError(t, writeError(c, errors.New("pq: relation does not exist")))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"internal error"}`, rec.Body.String())
	})
}

func TestHTTPErrorHandler(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := HTTPErrorHandler(zap.New(core))

	c, rec := newCtx(http.MethodGet)
	h(echo.NewHTTPError(http.StatusRequestEntityTooLarge, "body too large"), c)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"message":"body too large"}`, rec.Body.String())
	assert.Equal(t, 0, logs.Len())

	c, rec = newCtx(http.MethodGet)
	h(errors.New("boom"), c)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"internal error"}`, rec.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("unhandled error").Len())

	c, rec = newCtx(http.MethodHead)
	h(echo.ErrNotFound, c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}
