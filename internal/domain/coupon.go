package domain

import "github.com/shopspring/decimal"

// Coupon discount types.
const (
	DiscountFixedCart = "fixed_cart"
	DiscountPercent   = "percent"
)

// Coupon is a store coupon as the pricing collaborator returns it.
type Coupon struct {
	Code         string
	Description  string
	DiscountType string
	Amount       decimal.Decimal
}
