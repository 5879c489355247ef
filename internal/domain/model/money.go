package model

import "github.com/shopspring/decimal"

// MaxMoney is the largest amount a numeric(12,2) column holds.
var MaxMoney = decimal.RequireFromString("9999999999.99")

// RoundMoney rounds half away from zero to cents.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
