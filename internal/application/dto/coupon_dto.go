package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del filtro de cupones.
const (
	CouponStatusAll      = "all"
	CouponStatusActive   = "active"
	CouponStatusInactive = "inactive"
)

// CouponPageSize filas por página de la tabla de cupones.
const CouponPageSize = 10

// CouponForm valores del modal de cupón.
type CouponForm struct {
	Code           string          `json:"code" validate:"required,max=50"`
	DiscountType   string          `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountAmount decimal.Decimal `json:"discount_amount" validate:"gt=0"`
	MinimumPrice   decimal.Decimal `json:"minimum_price" validate:"gte=0"`
	ValidFrom      time.Time       `json:"valid_from" validate:"required"`
	ValidTo        time.Time       `json:"valid_to" validate:"required,gtefield=ValidFrom"`
	IsActive       bool            `json:"isActive"`
}

// CouponListRequest filtros de la tabla (?q=&status=&page=).
type CouponListRequest struct {
	Query  string `query:"q"`
	Status string `query:"status" validate:"omitempty,oneof=all active inactive"`
	Page   int    `query:"page" validate:"min=0"`
}
