package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"cardapio/internal/domain/model"
	"cardapio/internal/observability"
	repo "cardapio/internal/repository"

	"go.uber.org/zap"
)

type AdminOrderUsecase struct {
	tx     repo.TransactionManager
	events eventEmitter
	clock  Clock
	log    *zap.Logger
}

func NewAdminOrderUsecase(
	tx repo.TransactionManager,
	events OrderEventPublisher,
	clock Clock,
	log *zap.Logger,
) *AdminOrderUsecase {
	if clock == nil {
		clock = NewRealClock()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AdminOrderUsecase{
		tx:     tx,
		events: eventEmitter{events: events, clock: clock, log: log},
		clock:  clock,
		log:    log,
	}
}

type AdminUpdateOrderStatusInput struct {
	Status string `json:"status"`
}

func (u *AdminOrderUsecase) List(ctx context.Context, q OrderListQuery) ([]OrderOutput, error) {
	f, err := buildOrderListFilter(q)
	if err != nil {
		return []OrderOutput{}, err
	}

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
		return []OrderOutput{}, passthrough(ctx, u.log, "admin list orders", err)
	}
	return outs, nil
}

func (u *AdminOrderUsecase) Detail(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
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
		return OrderOutput{}, passthrough(ctx, u.log, "admin order detail", err)
	}
	return out, nil
}

// UpdateStatus sets any known status from any state, terminal ones included.
// Setting the current status again is a no-op.
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, actorAdminUserID int64, orderID int64, in AdminUpdateOrderStatusInput) (OrderOutput, error) {
	raw := strings.TrimSpace(in.Status)
	if raw == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "status is required")
	}
	target, err := model.ParseOrderStatus(raw)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	return u.transition(ctx, actorAdminUserID, orderID, model.AuditActionUpdateOrderStatus, func(cur model.OrderStatus) (model.OrderStatus, error) {
		return cur.AdminSet(target)
	})
}

func (u *AdminOrderUsecase) ApproveCancellation(ctx context.Context, actorAdminUserID int64, orderID int64) (OrderOutput, error) {
	return u.transition(ctx, actorAdminUserID, orderID, model.AuditActionApproveCancel, model.OrderStatus.ApproveCancellation)
}

func (u *AdminOrderUsecase) RejectCancellation(ctx context.Context, actorAdminUserID int64, orderID int64) (OrderOutput, error) {
	return u.transition(ctx, actorAdminUserID, orderID, model.AuditActionRejectCancel, model.OrderStatus.RejectCancellation)
}

func (u *AdminOrderUsecase) transition(
	ctx context.Context,
	actorAdminUserID int64,
	orderID int64,
	action model.AuditAction,
	next func(model.OrderStatus) (model.OrderStatus, error),
) (OrderOutput, error) {
	if actorAdminUserID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var (
		out     OrderOutput
		o       model.Order
		from    model.OrderStatus
		changed bool
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

		to, err := next(o.Status)
		if err != nil {
			return NewHTTPError(http.StatusBadRequest, err.Error())
		}

		from = o.Status
		if to != from {
			now := u.clock.Now()
			if err := applyStatusChange(ctx, r, o, to, actorAdminUserID, action, now); err != nil {
				return err
			}
			o.Status = to
			o.Version++
			o.UpdatedAt = now
			changed = true
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return err
		}
		out = toOrderOutput(o, items)
		return nil
	})
	if err != nil {
		return OrderOutput{}, passthrough(ctx, u.log, string(action), err)
	}

	if changed {
		observability.FromContext(ctx, u.log).Info("order status changed",
			zap.Int64("order_id", orderID),
			zap.Int64("admin_user_id", actorAdminUserID),
			zap.String("action", string(action)),
			zap.String("from", string(from)),
			zap.String("to", string(o.Status)),
		)
		u.events.statusChanged(ctx, o, from)
	}
	return out, nil
}

// History returns the audit trail of one order, newest first.
func (u *AdminOrderUsecase) History(ctx context.Context, orderID int64) ([]model.AuditLog, error) {
	if orderID <= 0 {
		return []model.AuditLog{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var logs []model.AuditLog
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Orders().FindByID(ctx, orderID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "order not found")
			}
			return err
		}

		rt := model.AuditResourceOrder
		var err error
		logs, err = r.AuditLogs().List(ctx, repo.AuditLogFilter{
			ResourceType: &rt,
			ResourceID:   &orderID,
			Limit:        200,
		})
		return err
	})
	if err != nil {
		return []model.AuditLog{}, passthrough(ctx, u.log, "order history", err)
	}
	if logs == nil {
		logs = []model.AuditLog{}
	}
	return logs, nil
}
