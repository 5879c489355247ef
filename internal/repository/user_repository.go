package repository

import (
	"cardapio/internal/domain/model"
	"context"
)

type UserRepository interface {
	// returns ErrNotFound for unknown ids
	FindByID(ctx context.Context, userID int64) (model.User, error)
}
