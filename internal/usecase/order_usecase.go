package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"cardapio/internal/domain/model"
	"cardapio/internal/observability"
	repo "cardapio/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const maxIdempotencyKeyLen = 255

type OrderUsecase struct {
	tx        repo.TransactionManager
	users     repo.UserRepository
	validator OrderValidator
	events    eventEmitter
	clock     Clock
	log       *zap.Logger
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	users repo.UserRepository,
	validator OrderValidator,
	events OrderEventPublisher,
	clock Clock,
	log *zap.Logger,
) *OrderUsecase {
	if clock == nil {
		clock = NewRealClock()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderUsecase{
		tx:        tx,
		users:     users,
		validator: validator,
		events:    eventEmitter{events: events, clock: clock, log: log},
		clock:     clock,
		log:       log,
	}
}

// AddonInput is a selected add-on as sent by the client. ID is nil for ad-hoc add-ons.
type AddonInput struct {
	ID    *int64           `json:"id"`
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

type OrderItemInput struct {
	MenuItemID     int64        `json:"menu_item_id"`
	Quantity       int64        `json:"quantity"`
	Observations   *string      `json:"observations"`
	SelectedAddons []AddonInput `json:"selected_addons"`
}

type CreateOrderInput struct {
	AddressID     int64            `json:"address_id"`
	PaymentMethod string           `json:"payment_method"`
	CashProvided  *decimal.Decimal `json:"cash_provided"`
	Items         []OrderItemInput `json:"items"`

	// from the X-Idempotency-Key header
	IdempotencyKey string `json:"-"`
}

// CreateOrder prices the request and persists the whole order graph in one transaction.
// Nothing is written when any line fails.
func (u *OrderUsecase) CreateOrder(ctx context.Context, userID int64, in CreateOrderInput) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.validator.ValidateCreateOrder(in); err != nil {
		return OrderOutput{}, err
	}
	key := strings.TrimSpace(in.IdempotencyKey)
	if len(key) > maxIdempotencyKeyLen {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid idempotency key")
	}

	if _, err := u.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return OrderOutput{}, NewHTTPError(http.StatusNotFound, "user not found")
		}
		return OrderOutput{}, dbError(ctx, u.log, "find user", err)
	}

	var (
		out      OrderOutput
		created  model.Order
		replayed bool
	)

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//same key, same order
		if key != "" {
			existing, found, err := r.Orders().FindByIdempotencyKey(ctx, userID, key)
			if err != nil {
				return err
			}
			if found {
				items, err := r.OrderItems().ListByOrderID(ctx, existing.ID)
				if err != nil {
					return err
				}
				out = toOrderOutput(existing, items)
				replayed = true
				return nil
			}
		}

		addr, err := r.Addresses().FindByIDAndUserID(ctx, in.AddressID, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "address not found")
		}
		if err != nil {
			return err
		}

		items, subtotal, err := priceItems(ctx, r.MenuItems(), in.Items)
		if err != nil {
			return err
		}

		quote, err := quoteForAddress(ctx, r.Stores(), r.DeliveryAreas(), addr)
		if err != nil {
			return err
		}

		pm := model.PaymentMethod(in.PaymentMethod)
		var cash *decimal.Decimal
		if pm == model.PaymentMethodCash && in.CashProvided != nil {
			c := model.RoundMoney(*in.CashProvided)
			cash = &c
		}

		total := model.RoundMoney(subtotal.Add(quote.Fee))
		if total.GreaterThan(model.MaxMoney) {
			return NewValidationError("invalid order", map[string]string{
				"items": "order total exceeds " + model.MaxMoney.StringFixed(2),
			})
		}

		now := u.clock.Now()
		order := model.Order{
			UserID:        userID,
			AddressID:     addr.ID,
			OrderDate:     now,
			Status:        model.OrderStatusReceived,
			TotalAmount:   total,
			DeliveryFee:   model.RoundMoney(quote.Fee),
			PaymentMethod: pm,
			CashProvided:  cash,
			Version:       1,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if key != "" {
			order.IdempotencyKey = &key
		}

		orderID, err := r.Orders().Create(ctx, order)
		if errors.Is(err, repo.ErrConflict) {
			//a concurrent request with the same key won
			return NewHTTPError(http.StatusConflict, "an order with this idempotency key is already being created")
		}
		if err != nil {
			return err
		}
		order.ID = orderID

		if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
			return err
		}

		after, _ := json.Marshal(struct {
			Status      model.OrderStatus `json:"status"`
			TotalAmount decimal.Decimal   `json:"total_amount"`
			DeliveryFee decimal.Decimal   `json:"delivery_fee"`
		}{order.Status, order.TotalAmount, order.DeliveryFee})
		if err := r.AuditLogs().Create(ctx, model.AuditLog{
			ActorUserID:  userID,
			Action:       model.AuditActionCreateOrder,
			ResourceType: model.AuditResourceOrder,
			ResourceID:   orderID,
			BeforeJSON:   "{}",
			AfterJSON:    string(after),
			CreatedAt:    now,
		}); err != nil {
			return err
		}

		created = order
		out = toOrderOutput(order, items)
		return nil
	})
	if err != nil {
		return OrderOutput{}, passthrough(ctx, u.log, "create order", err)
	}
	if replayed {
		return out, nil
	}

	observability.FromContext(ctx, u.log).Info("order created",
		zap.Int64("order_id", created.ID),
		zap.Int64("user_id", userID),
		zap.String("total_amount", created.TotalAmount.StringFixed(2)),
		zap.Int("items", len(out.Items)),
	)
	u.events.emit(ctx, model.OrderEvent{
		Type:        model.OrderEventCreated,
		OrderID:     created.ID,
		UserID:      created.UserID,
		Status:      created.Status,
		TotalAmount: created.TotalAmount,
	})
	return out, nil
}

// priceItems snapshots each line: unit price is the current catalog price plus
// the sum of the selected add-ons.
func priceItems(ctx context.Context, menu repo.MenuItemRepository, lines []OrderItemInput) ([]model.OrderItem, decimal.Decimal, error) {
	items := make([]model.OrderItem, 0, len(lines))
	subtotal := decimal.Zero

	for i, line := range lines {
		mi, err := menu.FindByID(ctx, line.MenuItemID)
		if errors.Is(err, repo.ErrNotFound) || (err == nil && !mi.Available) {
			return nil, decimal.Zero, NewHTTPError(http.StatusNotFound,
				fmt.Sprintf("menu item %d not found or unavailable", line.MenuItemID))
		}
		if err != nil {
			return nil, decimal.Zero, err
		}

		unit := mi.Price
		addons := make([]model.OrderItemAddon, 0, len(line.SelectedAddons))
		for _, a := range line.SelectedAddons {
			price := model.RoundMoney(*a.Price)
			unit = unit.Add(price)
			addons = append(addons, model.OrderItemAddon{
				AddonOptionID: a.ID,
				AddonName:     strings.TrimSpace(a.Name),
				AddonPrice:    price,
			})
		}
		if unit.GreaterThan(model.MaxMoney) {
			return nil, decimal.Zero, NewValidationError("invalid order", map[string]string{
				fmt.Sprintf("items[%d].selected_addons", i): "unit price exceeds " + model.MaxMoney.StringFixed(2),
			})
		}

		it := model.OrderItem{
			MenuItemID:          mi.ID,
			MenuItemName:        mi.Name,
			MenuItemDescription: mi.Description,
			Quantity:            line.Quantity,
			PriceAtOrderTime:    unit,
			Observations:        line.Observations,
			Addons:              addons,
		}
		subtotal = subtotal.Add(it.LineTotal())
		items = append(items, it)
	}
	return items, subtotal, nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64, q OrderListQuery) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	//clients can only ever see their own orders
	q.ClientID = ""
	f, err := buildOrderListFilter(q)
	if err != nil {
		return []OrderOutput{}, err
	}
	f.UserID = &userID

	var outs []OrderOutput
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().List(ctx, f)
		if err != nil {
			return err
		}
		outs, err = loadOrderOutputs(ctx, r, orders)
		return err
	})
	if err != nil {
		return []OrderOutput{}, passthrough(ctx, u.log, "list my orders", err)
	}
	return outs, nil
}

// GetMyOrderDetail answers 404 for orders of other users, same as for missing ones.
func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, userID int64, orderID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByIDAndUserID(ctx, orderID, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return err
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return err
		}
		out = toOrderOutput(o, items)
		return nil
	})
	if err != nil {
		return OrderOutput{}, passthrough(ctx, u.log, "get my order", err)
	}
	return out, nil
}

// CancelMyOrder cancels a RECEIVED order outright and turns an IN_PREPARATION
// one into a cancellation request.
func (u *OrderUsecase) CancelMyOrder(ctx context.Context, userID int64, orderID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var (
		out  OrderOutput
		from model.OrderStatus
		o    model.Order
	)
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		o, err = r.Orders().FindByIDForUpdate(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return err
		}
		if o.UserID != userID {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}

		next, err := o.Status.ClientCancel()
		if err != nil {
			return NewHTTPError(http.StatusBadRequest, err.Error())
		}

		now := u.clock.Now()
		if err := applyStatusChange(ctx, r, o, next, userID, model.AuditActionClientCancelOrder, now); err != nil {
			return err
		}
		from = o.Status
		o.Status = next
		o.Version++
		o.UpdatedAt = now

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return err
		}
		out = toOrderOutput(o, items)
		return nil
	})
	if err != nil {
		return OrderOutput{}, passthrough(ctx, u.log, "cancel order", err)
	}

	observability.FromContext(ctx, u.log).Info("order cancelled by client",
		zap.Int64("order_id", orderID),
		zap.String("from", string(from)),
		zap.String("to", string(o.Status)),
	)
	u.events.statusChanged(ctx, o, from)
	return out, nil
}
