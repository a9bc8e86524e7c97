package dto

import "github.com/shopspring/decimal"

// ProductForm valores del modal de producto. Las referencias viajan como ids.
type ProductForm struct {
	SKU           string          `json:"sku" validate:"required,max=100"`
	Name          string          `json:"name" validate:"required,max=200"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" validate:"gte=0"`
	CategoryID    string          `json:"categoryId" validate:"required"`
	SubCategoryID string          `json:"subCategoryId"`
	RoomID        string          `json:"roomId"`
}

// ProductLookups tablas de consulta del formulario de producto.
type ProductLookups struct {
	Categories []Option `json:"categories"`
	Rooms      []Option `json:"rooms"`
}

// SubCategoryOptions opciones dependientes de la categoría elegida.
type SubCategoryOptions struct {
	CategoryID string   `json:"categoryId"`
	Options    []Option `json:"options"`
	Enabled    bool     `json:"enabled"`
}
