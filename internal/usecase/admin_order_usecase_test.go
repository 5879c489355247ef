package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"cardapio/internal/domain/model"
	repo "cardapio/internal/repository"
	"cardapio/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const adminID int64 = 900

func newAdminOrderUC() (*usecase.AdminOrderUsecase, *TxReposMock, *TxManagerMock, *PublisherMock) {
	r := newTxRepos()
	tx := newTx(r)
	pub := new(PublisherMock)
	return usecase.NewAdminOrderUsecase(tx, pub, fixedClock{testNow}, nil), r, tx, pub
}

func TestAdminOrderUsecase_UpdateStatus_RejectsBadInput(t *testing.T) {
	uc, _, tx, _ := newAdminOrderUC()

	tests := []struct {
		name   string
		status string
		want   string
	}{
		{name: "empty", status: "  ", want: "status is required"},
		{name: "unknown", status: "SHIPPED", want: "invalid status"},
		{name: "lowercase", status: "received", want: "invalid status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.UpdateStatus(context.Background(), adminID, 7, usecase.AdminUpdateOrderStatusInput{Status: tt.status})
			assertStatus(t, err, http.StatusBadRequest)
			assertErrContains(t, err, tt.want)
		})
	}
	tx.AssertNotCalled(t, "WithinTx", mock.Anything)
}

func TestAdminOrderUsecase_UpdateStatus_Success(t *testing.T) {
	uc, r, _, pub := newAdminOrderUC()

	r.orders.On("FindByIDForUpdate", mock.Anything, int64(7)).
		Return(model.Order{ID: 7, UserID: clientID, Status: model.OrderStatusReceived, Version: 2}, nil)
	r.orders.On("UpdateStatus", mock.Anything, int64(7), int64(2), model.OrderStatusInPreparation, testNow).Return(nil)
	r.auditLogs.On("Create", mock.Anything, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.Action == model.AuditActionUpdateOrderStatus && l.ActorUserID == adminID && l.ResourceID == 7
	})).Return(nil)
	r.orderItems.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderItem{}, nil)
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(ev model.OrderEvent) bool {
		return ev.Status == model.OrderStatusInPreparation && *ev.PreviousStatus == model.OrderStatusReceived
	})).Return(nil)

	out, err := uc.UpdateStatus(context.Background(), adminID, 7, usecase.AdminUpdateOrderStatusInput{Status: "IN_PREPARATION"})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusInPreparation, out.Status)
	assert.Equal(t, testNow, out.UpdatedAt)

	r.orders.AssertExpectations(t)
	r.auditLogs.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestAdminOrderUsecase_UpdateStatus_TerminalCanBeOverwritten(t *testing.T) {
	uc, r, _, pub := newAdminOrderUC()

	r.orders.On("FindByIDForUpdate", mock.Anything, int64(7)).
		Return(model.Order{ID: 7, Status: model.OrderStatusCompleted, Version: 5}, nil)
	r.orders.On("UpdateStatus", mock.Anything, int64(7), int64(5), model.OrderStatusReceived, testNow).Return(nil)
	r.auditLogs.On("Create", mock.Anything, auditAction(model.AuditActionUpdateOrderStatus)).Return(nil)
	r.orderItems.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderItem{}, nil)
	pub.On("Publish", mock.Anything, mock.Anything).Return(nil)

	out, err := uc.UpdateStatus(context.Background(), adminID, 7, usecase.AdminUpdateOrderStatusInput{Status: "RECEIVED"})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusReceived, out.Status)
}

func TestAdminOrderUsecase_UpdateStatus_SameStatusIsNoop(t *testing.T) {
	uc, r, _, pub := newAdminOrderUC()

	r.orders.On("FindByIDForUpdate", mock.Anything, int64(7)).
		Return(model.Order{ID: 7, Status: model.OrderStatusOutForDelivery, Version: 4}, nil)
	r.orderItems.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderItem{}, nil)

	out, err := uc.UpdateStatus(context.Background(), adminID, 7, usecase.AdminUpdateOrderStatusInput{Status: "OUT_FOR_DELIVERY"})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusOutForDelivery, out.Status)

	r.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	r.auditLogs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestAdminOrderUsecase_UpdateStatus_NotFound(t *testing.T) {
	uc, r, _, _ := newAdminOrderUC()
	r.orders.On("FindByIDForUpdate", mock.Anything, int64(404)).Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.UpdateStatus(context.Background(), adminID, 404, usecase.AdminUpdateOrderStatusInput{Status: "COMPLETED"})
	assertStatus(t, err, http.StatusNotFound)
}

func TestAdminOrderUsecase_UpdateStatus_ConcurrentWriterWins(t *testing.T) {
	uc, r, _, pub := newAdminOrderUC()
	r.orders.On("FindByIDForUpdate", mock.Anything, int64(7)).
		Return(model.Order{ID: 7, Status: model.OrderStatusReceived, Version: 1}, nil)
	r.orders.On("UpdateStatus", mock.Anything, int64(7), int64(1), model.OrderStatusCompleted, testNow).Return(repo.ErrStaleVersion)

	_, err := uc.UpdateStatus(context.Background(), adminID, 7, usecase.AdminUpdateOrderStatusInput{Status: "COMPLETED"})
	assertStatus(t, err, http.StatusConflict)
	assertErrContains(t, err, "modified concurrently")
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestAdminOrderUsecase_ApproveCancellation(t *testing.T) {
	t.Run("requested becomes cancelled", func(t *testing.T) {
		uc, r, _, pub := newAdminOrderUC()
		r.orders.On("FindByIDForUpdate", mock.Anything, int64(7)).
			Return(model.Order{ID: 7, Status: model.OrderStatusCancellationRequested, Version: 2}, nil)
		r.orders.On("UpdateStatus", mock.Anything, int64(7), int64(2), model.OrderStatusCancelled, testNow).Return(nil)
		r.auditLogs.On("Create", mock.Anything, auditAction(model.AuditActionApproveCancel)).Return(nil)
		r.orderItems.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderItem{}, nil)
		pub.On("Publish", mock.Anything, mock.Anything).Return(nil)

		out, err := uc.ApproveCancellation(context.Background(), adminID, 7)
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusCancelled, out.Status)
	})

	t.Run("other states are rejected", func(t *testing.T) {
		uc, r, _, _ := newAdminOrderUC()
		r.orders.On("FindByIDForUpdate", mock.Anything, int64(7)).
			Return(model.Order{ID: 7, Status: model.OrderStatusInPreparation}, nil)

		_, err := uc.ApproveCancellation(context.Background(), adminID, 7)
		assertStatus(t, err, http.StatusBadRequest)
		assertErrContains(t, err, "not awaiting cancellation")
		r.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAdminOrderUsecase_RejectCancellation(t *testing.T) {
	t.Run("requested returns to preparation", func(t *testing.T) {
		uc, r, _, pub := newAdminOrderUC()
		r.orders.On("FindByIDForUpdate", mock.Anything, int64(7)).
			Return(model.Order{ID: 7, Status: model.OrderStatusCancellationRequested, Version: 2}, nil)
		r.orders.On("UpdateStatus", mock.Anything, int64(7), int64(2), model.OrderStatusInPreparation, testNow).Return(nil)
		r.auditLogs.On("Create", mock.Anything, auditAction(model.AuditActionRejectCancel)).Return(nil)
		r.orderItems.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderItem{}, nil)
		pub.On("Publish", mock.Anything, mock.Anything).Return(nil)

		out, err := uc.RejectCancellation(context.Background(), adminID, 7)
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusInPreparation, out.Status)
	})

	t.Run("cancelled order is rejected", func(t *testing.T) {
		uc, r, _, _ := newAdminOrderUC()
		r.orders.On("FindByIDForUpdate", mock.Anything, int64(7)).
			Return(model.Order{ID: 7, Status: model.OrderStatusCancelled}, nil)

		_, err := uc.RejectCancellation(context.Background(), adminID, 7)
		assertStatus(t, err, http.StatusBadRequest)
	})
}

// client asks to cancel while the kitchen is working, admin says no
func TestCancellationRequestThenRejection(t *testing.T) {
	r := newTxRepos()
	tx := newTx(r)
	pub := new(PublisherMock)
	pub.On("Publish", mock.Anything, mock.Anything).Return(nil)

	users := new(UserRepoMock)
	client := usecase.NewOrderUsecase(tx, users, nil, pub, fixedClock{testNow}, nil)
	admin := usecase.NewAdminOrderUsecase(tx, pub, fixedClock{testNow}, nil)

	r.orders.On("FindByIDForUpdate", mock.Anything, int64(7)).
		Return(model.Order{ID: 7, UserID: clientID, Status: model.OrderStatusInPreparation, Version: 1}, nil).Once()
	r.orders.On("UpdateStatus", mock.Anything, int64(7), int64(1), model.OrderStatusCancellationRequested, testNow).Return(nil).Once()

	r.orders.On("FindByIDForUpdate", mock.Anything, int64(7)).
		Return(model.Order{ID: 7, UserID: clientID, Status: model.OrderStatusCancellationRequested, Version: 2}, nil).Once()
	r.orders.On("UpdateStatus", mock.Anything, int64(7), int64(2), model.OrderStatusInPreparation, testNow).Return(nil).Once()

	r.auditLogs.On("Create", mock.Anything, mock.Anything).Return(nil)
	r.orderItems.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderItem{}, nil)

	out, err := client.CancelMyOrder(context.Background(), clientID, 7)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCancellationRequested, out.Status)

	out, err = admin.RejectCancellation(context.Background(), adminID, 7)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusInPreparation, out.Status)

	r.orders.AssertExpectations(t)
	r.auditLogs.AssertNumberOfCalls(t, "Create", 2)
	pub.AssertNumberOfCalls(t, "Publish", 2)
}

func TestAdminOrderUsecase_List(t *testing.T) {
	t.Run("filters by client", func(t *testing.T) {
		uc, r, _, _ := newAdminOrderUC()
		r.orders.On("List", mock.Anything, mock.MatchedBy(func(f repo.OrderListFilter) bool {
			return f.UserID != nil && *f.UserID == 42 && f.Status == nil
		})).Return([]model.Order{{ID: 3, UserID: 42}}, nil)
		r.orderItems.On("ListByOrderIDs", mock.Anything, []int64{3}).Return(map[int64][]model.OrderItem{}, nil)

		outs, err := uc.List(context.Background(), usecase.OrderListQuery{ClientID: "42"})
		require.NoError(t, err)
		require.Len(t, outs, 1)
		assert.NotNil(t, outs[0].Items)
	})

	t.Run("invalid client id", func(t *testing.T) {
		uc, _, tx, _ := newAdminOrderUC()
		_, err := uc.List(context.Background(), usecase.OrderListQuery{ClientID: "abc"})
		assertStatus(t, err, http.StatusBadRequest)
		assertErrContains(t, err, "cliente_id")
		tx.AssertNotCalled(t, "WithinTx", mock.Anything)
	})

	t.Run("db failure", func(t *testing.T) {
		uc, r, _, _ := newAdminOrderUC()
		r.orders.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

		outs, err := uc.List(context.Background(), usecase.OrderListQuery{})
		assertStatus(t, err, http.StatusInternalServerError)
		assert.Empty(t, outs)
	})
}

func TestAdminOrderUsecase_Detail_NotFound(t *testing.T) {
	uc, r, _, _ := newAdminOrderUC()
	r.orders.On("FindByID", mock.Anything, int64(8)).Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.Detail(context.Background(), 8)
	assertStatus(t, err, http.StatusNotFound)
}

func TestAdminOrderUsecase_History(t *testing.T) {
	uc, r, _, _ := newAdminOrderUC()
	r.orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{ID: 7}, nil)
	r.auditLogs.On("List", mock.Anything, mock.MatchedBy(func(f repo.AuditLogFilter) bool {
		return f.ResourceType != nil && *f.ResourceType == model.AuditResourceOrder &&
			f.ResourceID != nil && *f.ResourceID == 7
	})).Return([]model.AuditLog{
		{ID: 2, Action: model.AuditActionUpdateOrderStatus},
		{ID: 1, Action: model.AuditActionCreateOrder},
	}, nil)

	logs, err := uc.History(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, model.AuditActionCreateOrder, logs[1].Action)

	_, err = uc.History(context.Background(), 0)
	assertStatus(t, err, http.StatusBadRequest)
}
