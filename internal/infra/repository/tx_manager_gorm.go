package repository

import (
	"context"

	repo "cardapio/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders        repo.OrderRepository
	orderItems    repo.OrderItemRepository
	menuItems     repo.MenuItemRepository
	addresses     repo.AddressRepository
	stores        repo.StoreRepository
	deliveryAreas repo.DeliveryAreaRepository
	auditLogs     repo.AuditLogRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository               { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository       { return r.orderItems }
func (r *txReposGorm) MenuItems() repo.MenuItemRepository         { return r.menuItems }
func (r *txReposGorm) Addresses() repo.AddressRepository          { return r.addresses }
func (r *txReposGorm) Stores() repo.StoreRepository               { return r.stores }
func (r *txReposGorm) DeliveryAreas() repo.DeliveryAreaRepository { return r.deliveryAreas }
func (r *txReposGorm) AuditLogs() repo.AuditLogRepository         { return r.auditLogs }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//every repo shares tx
		r := &txReposGorm{
			orders:        NewOrderGormRepository(tx),
			orderItems:    NewOrderItemGormRepository(tx),
			menuItems:     NewMenuItemGormRepository(tx),
			addresses:     NewAddressGormRepository(tx),
			stores:        NewStoreGormRepository(tx),
			deliveryAreas: NewDeliveryAreaGormRepository(tx),
			auditLogs:     NewAuditLogGormRepository(tx),
		}
		return fn(r)
	})
}
