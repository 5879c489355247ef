package repository

import (
	"context"

	"cardapio/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

// IDs are written back into items and their add-ons.
func (r *OrderItemGormRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&items).Error; err != nil {
		return err
	}

	var addons []*model.OrderItemAddon
	for i := range items {
		for j := range items[i].Addons {
			items[i].Addons[j].OrderItemID = items[i].ID
			addons = append(addons, &items[i].Addons[j])
		}
	}
	if len(addons) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(addons).Error
}

func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.WithContext(ctx).
		Preload("Addons", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.OrderItem{}, err
	}
	return items, nil
}

func (r *OrderItemGormRepository) ListByOrderIDs(ctx context.Context, orderIDs []int64) (map[int64][]model.OrderItem, error) {
	out := make(map[int64][]model.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return out, nil
	}

	var items []model.OrderItem
	err := r.db.WithContext(ctx).
		Preload("Addons", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Where("order_id IN ?", orderIDs).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	for _, it := range items {
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, nil
}
