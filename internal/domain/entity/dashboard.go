package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardOverview payload crudo de GET /api/dashboard/overview?rd=...
type DashboardOverview struct {
	SalesToday           decimal.Decimal   `json:"salesToday"`
	SalesThisMonth       decimal.Decimal   `json:"salesThisMonth"`
	NewUsersToday        int               `json:"newUsersToday"`
	OrderStatusCount     []StatusCount     `json:"orderStatusCount"`
	LatestUsers          []LatestUser      `json:"latestUsers"`
	RevenueDaily         []DailyRevenue    `json:"revenueDaily"`
	TopProductsByRevenue []ProductRevenue  `json:"topProductsByRevenue"`
	TopProductsByQty     []ProductQuantity `json:"topProductsByQty"`
	SalesByCategory      []CategorySales   `json:"salesByCategory"`
}

// StatusCount cantidad de órdenes por estado (_id = etiqueta del estado).
type StatusCount struct {
	Status string `json:"_id"`
	Count  int    `json:"count"`
}

// LatestUser usuario registrado recientemente.
type LatestUser struct {
	ID        string `json:"_id"`
	Email     string `json:"email"`
	CreatedAt Moment `json:"created_at"`
}

// DailyRevenue total de ventas con marca de tiempo (_id).
type DailyRevenue struct {
	At    Moment          `json:"_id"`
	Total decimal.Decimal `json:"total"`
}

// ProductRevenue producto con su ingreso.
type ProductRevenue struct {
	ID          string          `json:"_id"`
	ProductName string          `json:"productName"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// ProductQuantity producto con la cantidad vendida.
type ProductQuantity struct {
	ID          string          `json:"_id"`
	ProductName string          `json:"productName"`
	Qty         decimal.Decimal `json:"qty"`
}

// CategorySales ventas por categoría.
type CategorySales struct {
	ID           string          `json:"_id"`
	CategoryName string          `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
}

// Moment instante que el backend envía como RFC 3339 o como fecha sola
// (agregaciones por día). Una fecha sola se interpreta en UTC.
type Moment struct {
	time.Time
}

var momentLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// UnmarshalJSON acepta los formatos de momentLayouts o null.
func (m *Moment) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		m.Time = time.Time{}
		return nil
	}
	var lastErr error
	for _, layout := range momentLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			m.Time = t
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("fecha con formato no soportado %q: %w", s, lastErr)
}

// MarshalJSON serializa en RFC 3339.
func (m Moment) MarshalJSON() ([]byte, error) {
	return m.Time.MarshalJSON()
}
