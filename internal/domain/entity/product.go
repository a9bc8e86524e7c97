package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// Category, SubCategory y Room son referencias que el backend puede devolver pobladas.
// La baja es lógica: IsDeleted se marca con PATCH /api/products/:id.
type Product struct {
	ID          string          `json:"_id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Category    Ref             `json:"categoryId"`
	SubCategory Ref             `json:"subCategoryId"`
	Room        Ref             `json:"roomId"`
	IsDeleted   bool            `json:"isDeleted"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Category categoría de productos (tabla de consulta).
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// SubCategory subcategoría perteneciente a una categoría.
type SubCategory struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Category Ref    `json:"categoryId"`
}

// Color color disponible para un producto.
type Color struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}
