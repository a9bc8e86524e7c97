package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de descuento de un cupón.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Coupon cupón de descuento. IsActive se alterna sin abrir el formulario.
type Coupon struct {
	ID             string          `json:"_id"`
	Code           string          `json:"code"`
	DiscountType   string          `json:"discount_type"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	MinimumPrice   decimal.Decimal `json:"minimum_price"`
	ValidFrom      time.Time       `json:"valid_from"`
	ValidTo        time.Time       `json:"valid_to"`
	IsActive       bool            `json:"isActive"`
}
