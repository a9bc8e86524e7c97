package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductDraft cuerpo de POST/PUT /api/products.
type ProductDraft struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	CategoryID    string          `json:"categoryId"`
	SubCategoryID string          `json:"subCategoryId,omitempty"`
	RoomID        string          `json:"roomId,omitempty"`
}

// RoomDraft campos multipart de POST/PUT /api/rooms. Image es opcional.
type RoomDraft struct {
	Name  string
	Image *RoomImage
}

// CouponDraft cuerpo de POST/PUT /api/coupon.
type CouponDraft struct {
	Code           string          `json:"code"`
	DiscountType   string          `json:"discount_type"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	MinimumPrice   decimal.Decimal `json:"minimum_price"`
	ValidFrom      time.Time       `json:"valid_from"`
	ValidTo        time.Time       `json:"valid_to"`
	IsActive       bool            `json:"isActive"`
}
