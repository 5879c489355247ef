package repository

import (
	"context"

	"cardapio/internal/domain/model"
	repo "cardapio/internal/repository"

	"gorm.io/gorm"
)

type storeGormRepository struct {
	db *gorm.DB
}

func NewStoreGormRepository(db *gorm.DB) repo.StoreRepository {
	return &storeGormRepository{db: db}
}

func (r *storeGormRepository) FindFirst(ctx context.Context) (model.Store, error) {
	var s model.Store
	err := r.db.WithContext(ctx).Order("id asc").First(&s).Error
	if isNotFound(err) {
		return model.Store{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Store{}, err
	}
	return s, nil
}

func (r *storeGormRepository) FindByAdminUserID(ctx context.Context, adminUserID int64) (model.Store, error) {
	var s model.Store
	err := r.db.WithContext(ctx).
		Where("admin_user_id = ?", adminUserID).
		Order("id asc").
		First(&s).Error
	if isNotFound(err) {
		return model.Store{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Store{}, err
	}
	return s, nil
}
