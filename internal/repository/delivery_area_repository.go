package repository

import (
	"cardapio/internal/domain/model"
	"context"
)

type DeliveryAreaRepository interface {
	FindByID(ctx context.Context, id int64) (model.DeliveryArea, error)

	// exact, case-sensitive district match
	FindByStoreAndDistrict(ctx context.Context, storeID int64, district string) (model.DeliveryArea, error)

	ListByStoreID(ctx context.Context, storeID int64) ([]model.DeliveryArea, error)

	// ErrConflict on a duplicate (store, district)
	Create(ctx context.Context, area model.DeliveryArea) (model.DeliveryArea, error)
	Update(ctx context.Context, area model.DeliveryArea) error
	Delete(ctx context.Context, id int64) error
}
