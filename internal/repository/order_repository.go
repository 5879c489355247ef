package repository

import (
	"context"
	"time"

	"cardapio/internal/domain/model"

	"github.com/shopspring/decimal"
)

// OrderListFilter narrows order listings. From/To are inclusive calendar days (UTC);
// a nil UserID lists every client's orders.
type OrderListFilter struct {
	UserID *int64
	Status *model.OrderStatus
	From   *time.Time
	To     *time.Time
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	// locks the row until the surrounding transaction ends
	FindByIDForUpdate(ctx context.Context, orderID int64) (model.Order, error)

	// ErrNotFound when the order belongs to another user
	FindByIDAndUserID(ctx context.Context, orderID, userID int64) (model.Order, error)

	// same key, same order
	FindByIdempotencyKey(ctx context.Context, userID int64, key string) (model.Order, bool, error)

	List(ctx context.Context, f OrderListFilter) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)

	// UpdateStatus writes status only if version still matches; ErrStaleVersion otherwise.
	UpdateStatus(ctx context.Context, orderID int64, expectedVersion int64, status model.OrderStatus, updatedAt time.Time) error

	CountByStatusOnDate(ctx context.Context, day time.Time) (map[model.OrderStatus]int64, error)
	SumTotalOnDate(ctx context.Context, day time.Time) (decimal.Decimal, error)
}
