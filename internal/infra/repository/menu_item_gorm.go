package repository

import (
	"context"

	"cardapio/internal/domain/model"
	repo "cardapio/internal/repository"

	"gorm.io/gorm"
)

type menuItemGormRepository struct {
	db *gorm.DB
}

func NewMenuItemGormRepository(db *gorm.DB) repo.MenuItemRepository {
	return &menuItemGormRepository{db: db}
}

func (r *menuItemGormRepository) FindByID(ctx context.Context, id int64) (model.MenuItem, error) {
	var m model.MenuItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if isNotFound(err) {
		return model.MenuItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.MenuItem{}, err
	}
	return m, nil
}
