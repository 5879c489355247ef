package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"cardapio/internal/domain/model"
	repo "cardapio/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type DailySummaryOutput struct {
	StatusCounts     map[model.OrderStatus]int64 `json:"status_counts"`
	DailyTotalAmount decimal.Decimal             `json:"daily_total_amount"`
	FilterDate       string                      `json:"filter_date"`
}

type DashboardUsecase struct {
	orders repo.OrderRepository
	clock  Clock
	log    *zap.Logger
}

func NewDashboardUsecase(orders repo.OrderRepository, clock Clock, log *zap.Logger) *DashboardUsecase {
	if clock == nil {
		clock = NewRealClock()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardUsecase{orders: orders, clock: clock, log: log}
}

// DailySummary counts orders per status and sums their totals for one UTC day.
// An empty date means today. Every known status is present in the counts.
func (u *DashboardUsecase) DailySummary(ctx context.Context, date string) (DailySummaryOutput, error) {
	day := u.clock.Now().UTC()
	if s := strings.TrimSpace(date); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return DailySummaryOutput{}, NewHTTPError(http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD.")
		}
		day = t
	}

	counts, err := u.orders.CountByStatusOnDate(ctx, day)
	if err != nil {
		return DailySummaryOutput{}, dbError(ctx, u.log, "count orders by status", err)
	}
	total, err := u.orders.SumTotalOnDate(ctx, day)
	if err != nil {
		return DailySummaryOutput{}, dbError(ctx, u.log, "sum order totals", err)
	}

	statusCounts := make(map[model.OrderStatus]int64, len(model.OrderStatuses()))
	for _, st := range model.OrderStatuses() {
		statusCounts[st] = counts[st]
	}

	return DailySummaryOutput{
		StatusCounts:     statusCounts,
		DailyTotalAmount: model.RoundMoney(total),
		FilterDate:       day.Format(dateLayout),
	}, nil
}
