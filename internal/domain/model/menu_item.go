package model

import "github.com/shopspring/decimal"

// MenuItem is read by order creation only; the catalog itself is managed elsewhere.
type MenuItem struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Description string          `gorm:"type:varchar(300)" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	ImageURL    string          `gorm:"type:varchar(255)" json:"image_url"`
	CategoryID  int64           `gorm:"not null;index" json:"category_id"`
	Available   bool            `gorm:"not null;default:true" json:"available"`
	HasAddons   bool            `gorm:"not null;default:false" json:"has_addons"`
}

func (MenuItem) TableName() string {
	return "menu_item"
}
