package repository

import (
	"cardapio/internal/domain/model"
	"context"
)

// Address lookups needed by ordering and fee calculation.
type AddressRepository interface {
	// returns ErrNotFound when the address does not exist or is owned by someone else
	FindByIDAndUserID(ctx context.Context, addressID, userID int64) (model.Address, error)
}
