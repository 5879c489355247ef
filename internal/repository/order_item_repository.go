package repository

import (
	"context"

	"cardapio/internal/domain/model"
)

type OrderItemRepository interface {
	// CreateBulk inserts the items and their add-ons under orderID.
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)

	// keyed by order id, add-ons loaded
	ListByOrderIDs(ctx context.Context, orderIDs []int64) (map[int64][]model.OrderItem, error)
}
