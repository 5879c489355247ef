package repository

import (
	"cardapio/internal/domain/model"
	"context"
)

type StoreRepository interface {
	// lowest id; ErrNotFound when no store is configured
	FindFirst(ctx context.Context) (model.Store, error)
	FindByAdminUserID(ctx context.Context, adminUserID int64) (model.Store, error)
}
