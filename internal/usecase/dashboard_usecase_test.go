package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"cardapio/internal/domain/model"
	"cardapio/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardUsecase_DailySummary(t *testing.T) {
	t.Run("explicit date, missing statuses are zero", func(t *testing.T) {
		orders := new(OrderRepoMock)
		day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		orders.On("CountByStatusOnDate", mock.Anything, day).Return(map[model.OrderStatus]int64{
			model.OrderStatusCompleted: 4,
			model.OrderStatusCancelled: 1,
		}, nil)
		orders.On("SumTotalOnDate", mock.Anything, day).Return(d("123.455"), nil)

		uc := usecase.NewDashboardUsecase(orders, fixedClock{testNow}, nil)
		out, err := uc.DailySummary(context.Background(), "2024-05-01")
		require.NoError(t, err)

		assert.Equal(t, "2024-05-01", out.FilterDate)
		assert.Len(t, out.StatusCounts, len(model.OrderStatuses()))
		assert.Equal(t, int64(4), out.StatusCounts[model.OrderStatusCompleted])
		assert.Equal(t, int64(0), out.StatusCounts[model.OrderStatusReceived])
		assert.True(t, out.DailyTotalAmount.Equal(d("123.46")), out.DailyTotalAmount.String())
	})

	t.Run("empty date means today", func(t *testing.T) {
		orders := new(OrderRepoMock)
		orders.On("CountByStatusOnDate", mock.Anything, testNow).Return(map[model.OrderStatus]int64{}, nil)
		orders.On("SumTotalOnDate", mock.Anything, testNow).Return(decimal.Zero, nil)

		uc := usecase.NewDashboardUsecase(orders, fixedClock{testNow}, nil)
		out, err := uc.DailySummary(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "2024-05-10", out.FilterDate)
		assert.True(t, out.DailyTotalAmount.IsZero())
	})

	t.Run("bad date", func(t *testing.T) {
		orders := new(OrderRepoMock)
		uc := usecase.NewDashboardUsecase(orders, fixedClock{testNow}, nil)

		_, err := uc.DailySummary(context.Background(), "01/05/2024")
		assertStatus(t, err, http.StatusBadRequest)
		assertErrContains(t, err, "Invalid date format. Use YYYY-MM-DD.")
		orders.AssertNotCalled(t, "CountByStatusOnDate", mock.Anything, mock.Anything)
	})

	t.Run("db error", func(t *testing.T) {
		orders := new(OrderRepoMock)
		orders.On("CountByStatusOnDate", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		uc := usecase.NewDashboardUsecase(orders, fixedClock{testNow}, nil)
		_, err := uc.DailySummary(context.Background(), "2024-05-01")
		assertStatus(t, err, http.StatusInternalServerError)
	})
}
