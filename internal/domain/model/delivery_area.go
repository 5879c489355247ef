package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// (store_id, district_name) is unique.
type DeliveryArea struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreID      int64           `gorm:"not null;uniqueIndex:idx_delivery_areas_store_district,priority:1" json:"store_id"`
	DistrictName string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_delivery_areas_store_district,priority:2" json:"district_name"`
	DeliveryFee  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"delivery_fee"`
	CreatedAt    time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
