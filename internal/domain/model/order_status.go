package model

import "errors"

type OrderStatus string

const (
	OrderStatusReceived              OrderStatus = "RECEIVED"
	OrderStatusInPreparation         OrderStatus = "IN_PREPARATION"
	OrderStatusCancellationRequested OrderStatus = "CANCELLATION_REQUESTED"
	OrderStatusCancelled             OrderStatus = "CANCELLED"
	OrderStatusOutForDelivery        OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusCompleted             OrderStatus = "COMPLETED"
)

var (
	ErrNotCancellable          = errors.New("order cannot be cancelled at this stage")
	ErrNotAwaitingCancellation = errors.New("order is not awaiting cancellation approval")
	ErrUnknownOrderStatus      = errors.New("unknown order status")
)

var orderStatuses = []OrderStatus{
	OrderStatusReceived,
	OrderStatusInPreparation,
	OrderStatusCancellationRequested,
	OrderStatusCancelled,
	OrderStatusOutForDelivery,
	OrderStatusCompleted,
}

func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatuses))
	copy(out, orderStatuses)
	return out
}

func (s OrderStatus) Valid() bool {
	for _, v := range orderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	if !st.Valid() {
		return "", ErrUnknownOrderStatus
	}
	return st, nil
}

// ClientCancel returns the status a client cancellation moves the order to.
// RECEIVED is cancelled outright; IN_PREPARATION only files a request the admin must approve.
func (s OrderStatus) ClientCancel() (OrderStatus, error) {
	switch s {
	case OrderStatusReceived:
		return OrderStatusCancelled, nil
	case OrderStatusInPreparation:
		return OrderStatusCancellationRequested, nil
	default:
		return s, ErrNotCancellable
	}
}

func (s OrderStatus) ApproveCancellation() (OrderStatus, error) {
	if s != OrderStatusCancellationRequested {
		return s, ErrNotAwaitingCancellation
	}
	return OrderStatusCancelled, nil
}

func (s OrderStatus) RejectCancellation() (OrderStatus, error) {
	if s != OrderStatusCancellationRequested {
		return s, ErrNotAwaitingCancellation
	}
	return OrderStatusInPreparation, nil
}

// AdminSet validates an admin-supplied target. Any known status is accepted from any state,
// including CANCELLED and COMPLETED.
func (s OrderStatus) AdminSet(target OrderStatus) (OrderStatus, error) {
	if !target.Valid() {
		return s, ErrUnknownOrderStatus
	}
	return target, nil
}
