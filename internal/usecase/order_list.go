package usecase

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cardapio/internal/domain/model"
	repo "cardapio/internal/repository"
)

const dateLayout = "2006-01-02"

// OrderListQuery holds raw query-string filters. Dates are YYYY-MM-DD, inclusive.
type OrderListQuery struct {
	Status    string
	StartDate string
	EndDate   string
	ClientID  string // admin listing only
}

func buildOrderListFilter(q OrderListQuery) (repo.OrderListFilter, error) {
	var f repo.OrderListFilter

	if s := strings.TrimSpace(q.Status); s != "" {
		st, err := model.ParseOrderStatus(s)
		if err != nil {
			return f, NewHTTPError(http.StatusBadRequest, "invalid status")
		}
		f.Status = &st
	}

	from, err := parseDateParam(q.StartDate, "data_inicio")
	if err != nil {
		return f, err
	}
	to, err := parseDateParam(q.EndDate, "data_fim")
	if err != nil {
		return f, err
	}
	if from != nil && to != nil && from.After(*to) {
		return f, NewHTTPError(http.StatusBadRequest, "data_inicio must not be after data_fim")
	}
	f.From, f.To = from, to

	if s := strings.TrimSpace(q.ClientID); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id <= 0 {
			return f, NewHTTPError(http.StatusBadRequest, "invalid cliente_id")
		}
		f.UserID = &id
	}
	return f, nil
}

func parseDateParam(v, name string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid "+name+", use YYYY-MM-DD")
	}
	return &t, nil
}

// loadOrderOutputs fetches the items of every order in a single query.
func loadOrderOutputs(ctx context.Context, r repo.TxRepos, orders []model.Order) ([]OrderOutput, error) {
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	itemsByOrder, err := r.OrderItems().ListByOrderIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		outs = append(outs, toOrderOutput(o, itemsByOrder[o.ID]))
	}
	return outs, nil
}
