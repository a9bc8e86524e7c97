package dto

import "github.com/shopspring/decimal"

// DashboardView respuesta de GET /admin/dashboard: datos listos para graficar.
type DashboardView struct {
	Range       string          `json:"range"`
	View        string          `json:"view"`
	Stats       []StatCard      `json:"stats"`
	OrderStatus []StatusCard    `json:"orderStatus"`
	Series      []DailyPoint    `json:"series"`
	LatestUsers []LatestUserRow `json:"latestUsers"`

	TopProductsByRevenue []ProductRevenueRow  `json:"topProductsByRevenue"`
	TopProductsByQty     []ProductQuantityRow `json:"topProductsByQty"`
	SalesByCategory      []PieSlice           `json:"salesByCategory"`
	ProductRevenuePie    []PieSlice           `json:"productRevenuePie"`

	// Placeholders datasets sustituidos por datos ilustrativos porque el backend los envió vacíos.
	Placeholders []string `json:"placeholders,omitempty"`
}

// StatCard tarjeta de métrica superior.
type StatCard struct {
	Key   string          `json:"key"`
	Title string          `json:"title"`
	Value decimal.Decimal `json:"value"`
}

// StatusCard cantidad de órdenes de un estado.
type StatusCard struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DailyPoint punto del eje x: un día calendario con su valor (ingresos o altas).
type DailyPoint struct {
	Date      string          `json:"date"`
	Label     string          `json:"label"`
	FullLabel string          `json:"fullLabel"`
	Value     decimal.Decimal `json:"value"`
}

// LatestUserRow fila de usuarios recientes.
type LatestUserRow struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// ProductRevenueRow producto con ingreso.
type ProductRevenueRow struct {
	ID          string          `json:"id"`
	ProductName string          `json:"productName"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// ProductQuantityRow producto con cantidad vendida.
type ProductQuantityRow struct {
	ID          string          `json:"id"`
	ProductName string          `json:"productName"`
	Qty         decimal.Decimal `json:"qty"`
}

// PieSlice porción de un gráfico de torta; Percent redondeado a entero.
type PieSlice struct {
	Name    string          `json:"name"`
	Value   decimal.Decimal `json:"value"`
	Percent int64           `json:"percent"`
}
