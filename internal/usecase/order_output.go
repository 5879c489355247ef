package usecase

import (
	"time"

	"cardapio/internal/domain/model"

	"github.com/shopspring/decimal"
)

type OrderAddonOutput struct {
	ID            int64           `json:"id"`
	AddonOptionID *int64          `json:"addon_option_id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
}

type OrderItemOutput struct {
	ID                  int64              `json:"id"`
	MenuItemID          int64              `json:"menu_item_id"`
	MenuItemName        string             `json:"menu_item_name"`
	MenuItemDescription string             `json:"menu_item_description"`
	Quantity            int64              `json:"quantity"`
	PriceAtOrderTime    decimal.Decimal    `json:"price_at_order_time"`
	Subtotal            decimal.Decimal    `json:"subtotal"`
	Observations        *string            `json:"observations"`
	SelectedAddons      []OrderAddonOutput `json:"selected_addons"`
}

type OrderOutput struct {
	ID            int64               `json:"id"`
	UserID        int64               `json:"user_id"`
	AddressID     int64               `json:"address_id"`
	OrderDate     time.Time           `json:"order_date"`
	Status        model.OrderStatus   `json:"status"`
	PaymentMethod model.PaymentMethod `json:"payment_method"`
	CashProvided  *decimal.Decimal    `json:"cash_provided"`
	ItemsSubtotal decimal.Decimal     `json:"items_subtotal"`
	DeliveryFee   decimal.Decimal     `json:"delivery_fee"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	Items         []OrderItemOutput   `json:"items"`
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		addons := make([]OrderAddonOutput, 0, len(it.Addons))
		for _, a := range it.Addons {
			addons = append(addons, OrderAddonOutput{
				ID:            a.ID,
				AddonOptionID: a.AddonOptionID,
				Name:          a.AddonName,
				Price:         a.AddonPrice,
			})
		}
		outItems = append(outItems, OrderItemOutput{
			ID:                  it.ID,
			MenuItemID:          it.MenuItemID,
			MenuItemName:        it.MenuItemName,
			MenuItemDescription: it.MenuItemDescription,
			Quantity:            it.Quantity,
			PriceAtOrderTime:    it.PriceAtOrderTime,
			Subtotal:            it.LineTotal(),
			Observations:        it.Observations,
			SelectedAddons:      addons,
		})
	}

	return OrderOutput{
		ID:            o.ID,
		UserID:        o.UserID,
		AddressID:     o.AddressID,
		OrderDate:     o.OrderDate,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		CashProvided:  o.CashProvided,
		ItemsSubtotal: o.ItemsSubtotal(),
		DeliveryFee:   o.DeliveryFee,
		TotalAmount:   o.TotalAmount,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		Items:         outItems,
	}
}
