package validator_test

import (
	"strings"
	"testing"

	"cardapio/internal/usecase"
	"cardapio/internal/validator"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryAreaValidator_Create(t *testing.T) {
	v := validator.NewDeliveryAreaValidator()

	assert.NoError(t, v.ValidateCreate(usecase.DeliveryAreaInput{DistrictName: "Centro", DeliveryFee: price("5.00")}))
	assert.NoError(t, v.ValidateCreate(usecase.DeliveryAreaInput{DistrictName: "Centro", DeliveryFee: price("0")}))

	errs := fieldErrors(t, v.ValidateCreate(usecase.DeliveryAreaInput{DistrictName: "  ", DeliveryFee: nil}))
	assert.Contains(t, errs, "district_name")
	assert.Contains(t, errs, "delivery_fee")

	errs = fieldErrors(t, v.ValidateCreate(usecase.DeliveryAreaInput{DistrictName: "Centro", DeliveryFee: price("-0.01")}))
	assert.Equal(t, "Delivery fee cannot be negative.", errs["delivery_fee"])

	errs = fieldErrors(t, v.ValidateCreate(usecase.DeliveryAreaInput{DistrictName: strings.Repeat("a", 101), DeliveryFee: price("1")}))
	assert.Contains(t, errs, "district_name")
}

func TestDeliveryAreaValidator_Update(t *testing.T) {
	v := validator.NewDeliveryAreaValidator()

	assert.NoError(t, v.ValidateUpdate(usecase.DeliveryAreaPatch{}))
	assert.NoError(t, v.ValidateUpdate(usecase.DeliveryAreaPatch{DeliveryFee: price("3.50")}))

	empty := ""
	errs := fieldErrors(t, v.ValidateUpdate(usecase.DeliveryAreaPatch{DistrictName: &empty}))
	assert.Contains(t, errs, "district_name")

	errs = fieldErrors(t, v.ValidateUpdate(usecase.DeliveryAreaPatch{DeliveryFee: price("-1")}))
	assert.Contains(t, errs, "delivery_fee")
}
