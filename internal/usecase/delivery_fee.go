package usecase

import (
	"context"
	"errors"
	"fmt"

	"cardapio/internal/domain/model"
	repo "cardapio/internal/repository"

	"github.com/shopspring/decimal"
)

const msgNoStoreConfigured = "No store configured to calculate delivery fee."

// FeeQuote is the outcome of fee resolution. A zero fee with a Message is
// informational (uncovered district, no store); it never fails an order.
type FeeQuote struct {
	Fee      decimal.Decimal
	District string
	Covered  bool
	Message  string
}

// resolveFee looks up the (store, district) delivery area. District matching is
// exact: no trimming, no case folding.
func resolveFee(ctx context.Context, areas repo.DeliveryAreaRepository, storeID int64, district string) (FeeQuote, error) {
	area, err := areas.FindByStoreAndDistrict(ctx, storeID, district)
	if errors.Is(err, repo.ErrNotFound) {
		return FeeQuote{
			Fee:      decimal.Zero,
			District: district,
			Message:  fmt.Sprintf("No specific fee for district '%s'. It might be a zero-fee area or not covered.", district),
		}, nil
	}
	if err != nil {
		return FeeQuote{}, err
	}
	return FeeQuote{Fee: area.DeliveryFee, District: district, Covered: true}, nil
}

// quoteForAddress resolves against the first configured store.
func quoteForAddress(ctx context.Context, stores repo.StoreRepository, areas repo.DeliveryAreaRepository, addr model.Address) (FeeQuote, error) {
	store, err := stores.FindFirst(ctx)
	if errors.Is(err, repo.ErrNotFound) {
		return FeeQuote{Fee: decimal.Zero, District: addr.District, Message: msgNoStoreConfigured}, nil
	}
	if err != nil {
		return FeeQuote{}, err
	}
	return resolveFee(ctx, areas, store.ID, addr.District)
}
