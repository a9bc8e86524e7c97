package ports

import (
	"time"
)

// BatchSheet datos ya resueltos (nombres en lugar de ids) de la hoja imprimible de un lote.
type BatchSheet struct {
	BatchCode     string
	BatchName     string
	Description   string
	Tags          []string
	CreatedAt     time.Time
	Lines         []BatchSheetLine
	TotalProducts int
	TotalQuantity int
}

// BatchSheetLine una fila de la hoja.
type BatchSheetLine struct {
	SKU         string
	ProductName string
	ColorName   string
	Quantity    int
}

// BatchSheetGenerator genera el PDF de la hoja de un lote.
type BatchSheetGenerator interface {
	GenerateBatchSheet(sheet BatchSheet) ([]byte, error)
}
