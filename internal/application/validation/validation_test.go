package validation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-admin/internal/application/validation"
	"github.com/jhoicas/backoffice-admin/pkg/locale"
)

type sample struct {
	Code   string          `json:"code" validate:"required"`
	Kind   string          `json:"discount_type" validate:"required,oneof=percentage fixed"`
	Amount decimal.Decimal `json:"discount_amount" validate:"gt=0"`
	From   time.Time       `json:"valid_from" validate:"required"`
	To     time.Time       `json:"valid_to" validate:"required,gtefield=From"`
}

func TestStruct_Valido(t *testing.T) {
	v := validation.New(locale.New("en"))
	now := time.Now()
	errs := v.Struct(sample{Code: "A", Kind: "fixed", Amount: decimal.NewFromInt(5), From: now, To: now.Add(time.Hour)})
	assert.Nil(t, errs)
}

func TestStruct_MensajesPorCampoJSON(t *testing.T) {
	v := validation.New(locale.New("en"))
	now := time.Now()
	errs := v.Struct(sample{Kind: "gift", Amount: decimal.Zero, From: now, To: now.Add(-time.Hour)})
	require.NotNil(t, errs)
	assert.Equal(t, "This field is required", errs["code"])
	assert.Equal(t, "Must be one of: percentage, fixed", errs["discount_type"])
	assert.Equal(t, "Must be greater than 0", errs["discount_amount"])
	assert.Equal(t, "End date must not be before start date", errs["valid_to"])
}

type bounds struct {
	Qty   int `json:"qty" validate:"gte=1"`
	Score int `json:"score" validate:"lt=5"`
	Cap   int `json:"cap" validate:"lte=10"`
}

func TestStruct_LimitesEstrictosYNoEstrictos(t *testing.T) {
	v := validation.New(locale.New("en"))

	errs := v.Struct(bounds{Qty: 0, Score: 5, Cap: 11})

	require.NotNil(t, errs)
	assert.Equal(t, "Must be at least 1", errs["qty"])
	assert.Equal(t, "Must be less than 5", errs["score"])
	assert.Equal(t, "Must be at most 10", errs["cap"])
}

func TestStruct_TailandesPorDefecto(t *testing.T) {
	v := validation.New(locale.New("th"))
	errs := v.Struct(sample{})
	assert.Equal(t, "กรุณากรอกข้อมูลช่องนี้", errs["code"])
}
