package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceAtOrderTime is the unit price including the selected add-ons.
type OrderItem struct {
	ID                  int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID             int64           `gorm:"not null;index" json:"order_id"`
	MenuItemID          int64           `gorm:"not null;index" json:"menu_item_id"`
	MenuItemName        string          `gorm:"type:varchar(100);not null" json:"menu_item_name"`
	MenuItemDescription string          `gorm:"type:varchar(300)" json:"menu_item_description"`
	Quantity            int64           `gorm:"not null" json:"quantity"`
	PriceAtOrderTime    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price_at_order_time"`
	Observations        *string         `gorm:"type:varchar(500)" json:"observations"`
	CreatedAt           time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`

	Addons []OrderItemAddon `gorm:"foreignKey:OrderItemID" json:"selected_addons"`
}

func (it OrderItem) LineTotal() decimal.Decimal {
	return it.PriceAtOrderTime.Mul(decimal.NewFromInt(it.Quantity))
}

// AddonOptionID is nil for ad-hoc add-ons that have no catalog entry.
type OrderItemAddon struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderItemID   int64           `gorm:"not null;index" json:"order_item_id"`
	AddonOptionID *int64          `json:"addon_option_id"`
	AddonName     string          `gorm:"type:varchar(100);not null" json:"addon_name"`
	AddonPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"addon_price"`
}
