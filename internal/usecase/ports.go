package usecase

import (
	"context"

	"cardapio/internal/domain/model"
)

// OrderValidator checks request shape before anything touches the database.
// Implemented in the validator package.
type OrderValidator interface {
	ValidateCreateOrder(in CreateOrderInput) error
}

type DeliveryAreaValidator interface {
	ValidateCreate(in DeliveryAreaInput) error
	ValidateUpdate(in DeliveryAreaPatch) error
}

// OrderEventPublisher is fire-and-forget from the usecase point of view:
// errors are logged, never returned to the client.
type OrderEventPublisher interface {
	Publish(ctx context.Context, ev model.OrderEvent) error
}
