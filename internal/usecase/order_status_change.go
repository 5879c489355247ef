package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cardapio/internal/domain/model"
	"cardapio/internal/observability"
	repo "cardapio/internal/repository"

	"go.uber.org/zap"
)

type statusSnapshot struct {
	Status model.OrderStatus `json:"status"`
}

// applyStatusChange writes the new status guarded by the version read under lock,
// then records the audit row in the same transaction.
func applyStatusChange(ctx context.Context, r repo.TxRepos, o model.Order, to model.OrderStatus, actorID int64, action model.AuditAction, now time.Time) error {
	if err := r.Orders().UpdateStatus(ctx, o.ID, o.Version, to, now); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if errors.Is(err, repo.ErrStaleVersion) {
			return NewHTTPError(http.StatusConflict, "order was modified concurrently")
		}
		return err
	}

	before, _ := json.Marshal(statusSnapshot{Status: o.Status})
	after, _ := json.Marshal(statusSnapshot{Status: to})
	return r.AuditLogs().Create(ctx, model.AuditLog{
		ActorUserID:  actorID,
		Action:       action,
		ResourceType: model.AuditResourceOrder,
		ResourceID:   o.ID,
		BeforeJSON:   string(before),
		AfterJSON:    string(after),
		CreatedAt:    now,
	})
}

type eventEmitter struct {
	events OrderEventPublisher
	clock  Clock
	log    *zap.Logger
}

func (e eventEmitter) emit(ctx context.Context, ev model.OrderEvent) {
	if e.events == nil {
		return
	}
	ev.OccurredAt = e.clock.Now()
	if err := e.events.Publish(ctx, ev); err != nil {
		observability.FromContext(ctx, e.log).Warn("order event publish failed",
			zap.String("type", string(ev.Type)),
			zap.Int64("order_id", ev.OrderID),
			zap.Error(err),
		)
	}
}

func (e eventEmitter) statusChanged(ctx context.Context, o model.Order, from model.OrderStatus) {
	prev := from
	e.emit(ctx, model.OrderEvent{
		Type:           model.OrderEventStatusChanged,
		OrderID:        o.ID,
		UserID:         o.UserID,
		Status:         o.Status,
		PreviousStatus: &prev,
		TotalAmount:    o.TotalAmount,
	})
}
