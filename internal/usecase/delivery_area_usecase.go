package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cardapio/internal/domain/model"
	"cardapio/internal/observability"
	repo "cardapio/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type DeliveryAreaInput struct {
	DistrictName string           `json:"district_name"`
	DeliveryFee  *decimal.Decimal `json:"delivery_fee"`
}

// DeliveryAreaPatch is a partial update; nil fields are left alone.
type DeliveryAreaPatch struct {
	DistrictName *string          `json:"district_name"`
	DeliveryFee  *decimal.Decimal `json:"delivery_fee"`
}

type DeliveryFeeOutput struct {
	DeliveryFee  decimal.Decimal `json:"delivery_fee"`
	DistrictName string          `json:"district_name,omitempty"`
	Message      string          `json:"message,omitempty"`
}

type DeliveryAreaUsecase struct {
	tx        repo.TransactionManager
	validator DeliveryAreaValidator
	clock     Clock
	log       *zap.Logger
}

func NewDeliveryAreaUsecase(tx repo.TransactionManager, validator DeliveryAreaValidator, clock Clock, log *zap.Logger) *DeliveryAreaUsecase {
	if clock == nil {
		clock = NewRealClock()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DeliveryAreaUsecase{tx: tx, validator: validator, clock: clock, log: log}
}

func (u *DeliveryAreaUsecase) Create(ctx context.Context, adminUserID int64, in DeliveryAreaInput) (model.DeliveryArea, error) {
	if adminUserID <= 0 {
		return model.DeliveryArea{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.validator.ValidateCreate(in); err != nil {
		return model.DeliveryArea{}, err
	}
	district := strings.TrimSpace(in.DistrictName)

	var created model.DeliveryArea
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		store, err := adminStore(ctx, r, adminUserID)
		if err != nil {
			return err
		}

		_, err = r.DeliveryAreas().FindByStoreAndDistrict(ctx, store.ID, district)
		if err == nil {
			return duplicateDistrict(district)
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		now := u.clock.Now()
		created, err = r.DeliveryAreas().Create(ctx, model.DeliveryArea{
			StoreID:      store.ID,
			DistrictName: district,
			DeliveryFee:  model.RoundMoney(*in.DeliveryFee),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if errors.Is(err, repo.ErrConflict) {
			return duplicateDistrict(district)
		}
		if err != nil {
			return err
		}
		return auditArea(ctx, r, adminUserID, model.AuditActionCreateDeliveryArea, nil, &created, now)
	})
	if err != nil {
		return model.DeliveryArea{}, passthrough(ctx, u.log, "create delivery area", err)
	}

	observability.FromContext(ctx, u.log).Info("delivery area created",
		zap.Int64("area_id", created.ID),
		zap.Int64("store_id", created.StoreID),
	)
	return created, nil
}

// List is empty, not an error, when the admin has no store.
func (u *DeliveryAreaUsecase) List(ctx context.Context, adminUserID int64) ([]model.DeliveryArea, error) {
	if adminUserID <= 0 {
		return []model.DeliveryArea{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var list []model.DeliveryArea
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		store, err := r.Stores().FindByAdminUserID(ctx, adminUserID)
		if errors.Is(err, repo.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		list, err = r.DeliveryAreas().ListByStoreID(ctx, store.ID)
		return err
	})
	if err != nil {
		return []model.DeliveryArea{}, passthrough(ctx, u.log, "list delivery areas", err)
	}
	if list == nil {
		list = []model.DeliveryArea{}
	}
	return list, nil
}

func (u *DeliveryAreaUsecase) Update(ctx context.Context, adminUserID int64, areaID int64, in DeliveryAreaPatch) (model.DeliveryArea, error) {
	if adminUserID <= 0 {
		return model.DeliveryArea{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if areaID <= 0 {
		return model.DeliveryArea{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.validator.ValidateUpdate(in); err != nil {
		return model.DeliveryArea{}, err
	}

	var updated model.DeliveryArea
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		store, err := adminStore(ctx, r, adminUserID)
		if err != nil {
			return err
		}
		area, err := ownedArea(ctx, r, store, areaID)
		if err != nil {
			return err
		}
		before := area

		if in.DistrictName != nil {
			district := strings.TrimSpace(*in.DistrictName)
			if district != area.DistrictName {
				other, err := r.DeliveryAreas().FindByStoreAndDistrict(ctx, store.ID, district)
				if err == nil && other.ID != area.ID {
					return duplicateDistrict(district)
				}
				if err != nil && !errors.Is(err, repo.ErrNotFound) {
					return err
				}
				area.DistrictName = district
			}
		}
		if in.DeliveryFee != nil {
			area.DeliveryFee = model.RoundMoney(*in.DeliveryFee)
		}

		now := u.clock.Now()
		area.UpdatedAt = now
		if err := r.DeliveryAreas().Update(ctx, area); err != nil {
			if errors.Is(err, repo.ErrConflict) {
				return duplicateDistrict(area.DistrictName)
			}
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "Delivery area not found.")
			}
			return err
		}
		updated = area
		return auditArea(ctx, r, adminUserID, model.AuditActionUpdateDeliveryArea, &before, &area, now)
	})
	if err != nil {
		return model.DeliveryArea{}, passthrough(ctx, u.log, "update delivery area", err)
	}
	return updated, nil
}

// Delete leaves existing orders untouched; they carry their own fee snapshot.
func (u *DeliveryAreaUsecase) Delete(ctx context.Context, adminUserID int64, areaID int64) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if areaID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		store, err := adminStore(ctx, r, adminUserID)
		if err != nil {
			return err
		}
		area, err := ownedArea(ctx, r, store, areaID)
		if err != nil {
			return err
		}
		if err := r.DeliveryAreas().Delete(ctx, area.ID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "Delivery area not found.")
			}
			return err
		}
		return auditArea(ctx, r, adminUserID, model.AuditActionDeleteDeliveryArea, &area, nil, u.clock.Now())
	})
	if err != nil {
		return passthrough(ctx, u.log, "delete delivery area", err)
	}
	return nil
}

// CalculateForAddress quotes the fee for one of the caller's addresses.
func (u *DeliveryAreaUsecase) CalculateForAddress(ctx context.Context, userID int64, addressID int64) (DeliveryFeeOutput, error) {
	if userID <= 0 {
		return DeliveryFeeOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if addressID <= 0 {
		return DeliveryFeeOutput{}, NewValidationError("invalid request", map[string]string{"address_id": "is required"})
	}

	var quote FeeQuote
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		addr, err := r.Addresses().FindByIDAndUserID(ctx, addressID, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "address not found")
		}
		if err != nil {
			return err
		}
		quote, err = quoteForAddress(ctx, r.Stores(), r.DeliveryAreas(), addr)
		return err
	})
	if err != nil {
		return DeliveryFeeOutput{}, passthrough(ctx, u.log, "calculate delivery fee", err)
	}

	out := DeliveryFeeOutput{DeliveryFee: quote.Fee, Message: quote.Message}
	if quote.Covered {
		out.DistrictName = quote.District
	}
	return out, nil
}

func adminStore(ctx context.Context, r repo.TxRepos, adminUserID int64) (model.Store, error) {
	store, err := r.Stores().FindByAdminUserID(ctx, adminUserID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Store{}, NewHTTPError(http.StatusNotFound, "Store not found for this administrator.")
	}
	return store, err
}

func ownedArea(ctx context.Context, r repo.TxRepos, store model.Store, areaID int64) (model.DeliveryArea, error) {
	area, err := r.DeliveryAreas().FindByID(ctx, areaID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.DeliveryArea{}, NewHTTPError(http.StatusNotFound, "Delivery area not found.")
	}
	if err != nil {
		return model.DeliveryArea{}, err
	}
	if area.StoreID != store.ID {
		return model.DeliveryArea{}, NewHTTPError(http.StatusForbidden, "Delivery area does not belong to your store.")
	}
	return area, nil
}

func duplicateDistrict(district string) error {
	return NewHTTPError(http.StatusConflict,
		fmt.Sprintf("Delivery area for district '%s' already exists for your store.", district))
}

func auditArea(ctx context.Context, r repo.TxRepos, actorID int64, action model.AuditAction, before, after *model.DeliveryArea, now time.Time) error {
	var resourceID int64
	switch {
	case after != nil:
		resourceID = after.ID
	case before != nil:
		resourceID = before.ID
	}
	return r.AuditLogs().Create(ctx, model.AuditLog{
		ActorUserID:  actorID,
		Action:       action,
		ResourceType: model.AuditResourceDeliveryArea,
		ResourceID:   resourceID,
		BeforeJSON:   areaJSON(before),
		AfterJSON:    areaJSON(after),
		CreatedAt:    now,
	})
}

func areaJSON(a *model.DeliveryArea) string {
	if a == nil {
		return "{}"
	}
	b, _ := json.Marshal(struct {
		DistrictName string          `json:"district_name"`
		DeliveryFee  decimal.Decimal `json:"delivery_fee"`
	}{a.DistrictName, a.DeliveryFee})
	return string(b)
}
