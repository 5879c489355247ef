package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentMethodPix        PaymentMethod = "PIX"
	PaymentMethodCash       PaymentMethod = "CASH"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPix, PaymentMethodCash:
		return true
	}
	return false
}

// TotalAmount and DeliveryFee are frozen when the order is created and never recomputed.
type Order struct {
	ID             int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         int64            `gorm:"not null;index;uniqueIndex:idx_orders_user_idem,priority:1" json:"user_id"`
	AddressID      int64            `gorm:"not null" json:"address_id"`
	OrderDate      time.Time        `gorm:"not null;index" json:"order_date"`
	Status         OrderStatus      `gorm:"type:varchar(30);not null;index" json:"status"`
	TotalAmount    decimal.Decimal  `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	DeliveryFee    decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0" json:"delivery_fee"`
	PaymentMethod  PaymentMethod    `gorm:"type:varchar(20);not null" json:"payment_method"`
	CashProvided   *decimal.Decimal `gorm:"type:numeric(12,2)" json:"cash_provided"`
	IdempotencyKey *string          `gorm:"type:varchar(255);uniqueIndex:idx_orders_user_idem,priority:2" json:"-"`
	Version        int64            `gorm:"not null;default:1" json:"-"`
	CreatedAt      time.Time        `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"not null;autoUpdateTime" json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// ItemsSubtotal is the order total without the delivery fee.
func (o Order) ItemsSubtotal() decimal.Decimal {
	return o.TotalAmount.Sub(o.DeliveryFee)
}
