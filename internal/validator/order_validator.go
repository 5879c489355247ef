package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"cardapio/internal/domain/model"
	"cardapio/internal/usecase"

	"github.com/shopspring/decimal"
)

const (
	maxObservationsLen = 500
	maxAddonNameLen    = 100
	maxQuantity        = 999
)

type orderValidator struct{}

func NewOrderValidator() usecase.OrderValidator {
	return &orderValidator{}
}

// ValidateCreateOrder checks shape only. Existence of the address and menu items
// is the usecase's job.
func (v *orderValidator) ValidateCreateOrder(in usecase.CreateOrderInput) error {
	errs := map[string]string{}

	if in.AddressID <= 0 {
		errs["address_id"] = "is required"
	}
	if !model.PaymentMethod(in.PaymentMethod).Valid() {
		errs["payment_method"] = "must be one of CREDIT_CARD, DEBIT_CARD, PIX, CASH"
	}
	if in.CashProvided != nil {
		if msg := moneyRangeError(*in.CashProvided); msg != "" {
			errs["cash_provided"] = msg
		}
	}

	if len(in.Items) == 0 {
		errs["items"] = "must contain at least one item"
	}
	for i, it := range in.Items {
		p := fmt.Sprintf("items[%d]", i)

		if it.MenuItemID <= 0 {
			errs[p+".menu_item_id"] = "is required"
		}
		switch {
		case it.Quantity < 1:
			errs[p+".quantity"] = "must be an integer >= 1"
		case it.Quantity > maxQuantity:
			errs[p+".quantity"] = fmt.Sprintf("must be at most %d", maxQuantity)
		}
		if it.Observations != nil && utf8.RuneCountInString(*it.Observations) > maxObservationsLen {
			errs[p+".observations"] = fmt.Sprintf("must be at most %d characters", maxObservationsLen)
		}

		for j, a := range it.SelectedAddons {
			ap := fmt.Sprintf("%s.selected_addons[%d]", p, j)
			switch name := strings.TrimSpace(a.Name); {
			case name == "":
				errs[ap+".name"] = "is required"
			case utf8.RuneCountInString(name) > maxAddonNameLen:
				errs[ap+".name"] = fmt.Sprintf("must be at most %d characters", maxAddonNameLen)
			}
			if a.Price == nil {
				errs[ap+".price"] = "is required"
			} else if msg := moneyRangeError(*a.Price); msg != "" {
				errs[ap+".price"] = msg
			}
			if a.ID != nil && *a.ID <= 0 {
				errs[ap+".id"] = "must be positive"
			}
		}
	}

	if len(errs) > 0 {
		return usecase.NewValidationError("invalid order", errs)
	}
	return nil
}

func moneyRangeError(d decimal.Decimal) string {
	switch {
	case d.IsNegative():
		return "must be >= 0"
	case model.RoundMoney(d).GreaterThan(model.MaxMoney):
		return "must be at most " + model.MaxMoney.StringFixed(2)
	}
	return ""
}
