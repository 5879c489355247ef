package repository

import (
	"cardapio/internal/domain/model"
	"context"
)

// Catalog reads used while pricing an order.
type MenuItemRepository interface {
	FindByID(ctx context.Context, id int64) (model.MenuItem, error)
}
