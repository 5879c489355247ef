package repository

import (
	"context"

	"cardapio/internal/domain/model"
	repo "cardapio/internal/repository"

	"gorm.io/gorm"
)

type deliveryAreaGormRepository struct {
	db *gorm.DB
}

func NewDeliveryAreaGormRepository(db *gorm.DB) repo.DeliveryAreaRepository {
	return &deliveryAreaGormRepository{db: db}
}

func (r *deliveryAreaGormRepository) FindByID(ctx context.Context, id int64) (model.DeliveryArea, error) {
	var a model.DeliveryArea
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if isNotFound(err) {
		return model.DeliveryArea{}, repo.ErrNotFound
	}
	if err != nil {
		return model.DeliveryArea{}, err
	}
	return a, nil
}

func (r *deliveryAreaGormRepository) FindByStoreAndDistrict(ctx context.Context, storeID int64, district string) (model.DeliveryArea, error) {
	var a model.DeliveryArea
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND district_name = ?", storeID, district).
		First(&a).Error
	if isNotFound(err) {
		return model.DeliveryArea{}, repo.ErrNotFound
	}
	if err != nil {
		return model.DeliveryArea{}, err
	}
	return a, nil
}

func (r *deliveryAreaGormRepository) ListByStoreID(ctx context.Context, storeID int64) ([]model.DeliveryArea, error) {
	var list []model.DeliveryArea
	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("district_name asc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *deliveryAreaGormRepository) Create(ctx context.Context, area model.DeliveryArea) (model.DeliveryArea, error) {
	err := r.db.WithContext(ctx).Create(&area).Error
	if isUniqueViolation(err) {
		return model.DeliveryArea{}, repo.ErrConflict
	}
	if err != nil {
		return model.DeliveryArea{}, err
	}
	return area, nil
}

func (r *deliveryAreaGormRepository) Update(ctx context.Context, area model.DeliveryArea) error {
	res := r.db.WithContext(ctx).
		Model(&model.DeliveryArea{}).
		Where("id = ?", area.ID).
		Updates(map[string]interface{}{
			"district_name": area.DistrictName,
			"delivery_fee":  area.DeliveryFee,
			"updated_at":    area.UpdatedAt,
		})

	if isUniqueViolation(res.Error) {
		return repo.ErrConflict
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *deliveryAreaGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DeliveryArea{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
