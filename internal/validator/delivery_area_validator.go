package validator

import (
	"strings"
	"unicode/utf8"

	"cardapio/internal/usecase"

	"github.com/shopspring/decimal"
)

const maxDistrictNameLen = 100

type deliveryAreaValidator struct{}

func NewDeliveryAreaValidator() usecase.DeliveryAreaValidator {
	return &deliveryAreaValidator{}
}

func (v *deliveryAreaValidator) ValidateCreate(in usecase.DeliveryAreaInput) error {
	errs := map[string]string{}

	checkDistrict(errs, in.DistrictName)
	if in.DeliveryFee == nil {
		errs["delivery_fee"] = "is required"
	} else {
		checkFee(errs, *in.DeliveryFee)
	}

	if len(errs) > 0 {
		return usecase.NewValidationError("invalid delivery area", errs)
	}
	return nil
}

func (v *deliveryAreaValidator) ValidateUpdate(in usecase.DeliveryAreaPatch) error {
	errs := map[string]string{}

	if in.DistrictName != nil {
		checkDistrict(errs, *in.DistrictName)
	}
	if in.DeliveryFee != nil {
		checkFee(errs, *in.DeliveryFee)
	}

	if len(errs) > 0 {
		return usecase.NewValidationError("invalid delivery area", errs)
	}
	return nil
}

func checkDistrict(errs map[string]string, name string) {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n == 0 || n > maxDistrictNameLen {
		errs["district_name"] = "must be 1-100 characters"
	}
}

func checkFee(errs map[string]string, fee decimal.Decimal) {
	if fee.IsNegative() {
		errs["delivery_fee"] = "Delivery fee cannot be negative."
	}
}
