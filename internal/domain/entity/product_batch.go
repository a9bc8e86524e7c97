package entity

import "time"

// ProductBatch lote de productos: varias líneas producto+color+cantidad.
// TotalProducts y TotalQuantity se calculan en el cliente al enviar.
type ProductBatch struct {
	ID            string      `json:"_id"`
	BatchName     string      `json:"batchName"`
	BatchCode     string      `json:"batchCode"`
	Description   string      `json:"description,omitempty"`
	Tags          []string    `json:"tags"`
	Products      []BatchLine `json:"products"`
	TotalProducts int         `json:"totalProducts"`
	TotalQuantity int         `json:"totalQuantity"`
	IsDeleted     bool        `json:"isDeleted"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// BatchLine línea de un lote.
type BatchLine struct {
	Product  Ref `json:"productId"`
	Color    Ref `json:"colorId"`
	Quantity int `json:"quantity"`
}

// BatchPayload cuerpo de POST/PUT /api/product-batches.
// BatchCode se omite al editar para conservar el código original.
type BatchPayload struct {
	BatchName     string      `json:"batchName"`
	BatchCode     string      `json:"batchCode,omitempty"`
	Description   string      `json:"description,omitempty"`
	Tags          []string    `json:"tags"`
	Products      []BatchLine `json:"products"`
	TotalProducts int         `json:"totalProducts"`
	TotalQuantity int         `json:"totalQuantity"`
}
