package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
)

// OrderEvent is published after the change that produced it has committed.
type OrderEvent struct {
	EventID        string          `json:"event_id"`
	Type           OrderEventType  `json:"type"`
	OrderID        int64           `json:"order_id"`
	UserID         int64           `json:"user_id"`
	Status         OrderStatus     `json:"status"`
	PreviousStatus *OrderStatus    `json:"previous_status,omitempty"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	OccurredAt     time.Time       `json:"occurred_at"`
}
