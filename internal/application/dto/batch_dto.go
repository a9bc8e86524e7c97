package dto

// BatchFormView estado de una sesión de formulario de lote.
type BatchFormView struct {
	ID            string         `json:"id"`
	Mode          string         `json:"mode"`
	BatchID       string         `json:"batchId,omitempty"`
	BatchCode     string         `json:"batchCode,omitempty"`
	BatchName     string         `json:"batchName"`
	Description   string         `json:"description"`
	Tags          []string       `json:"tags"`
	Rows          []BatchRowView `json:"rows"`
	CanAddRows    bool           `json:"canAddRows"`
	TotalProducts int            `json:"totalProducts"`
	TotalQuantity int            `json:"totalQuantity"`
	Products      []Option       `json:"products"`
}

// BatchRowView una línea producto + color + cantidad.
type BatchRowView struct {
	Key          string   `json:"key"`
	ProductID    string   `json:"productId"`
	ColorID      string   `json:"colorId"`
	Quantity     int      `json:"quantity"`
	ColorOptions []Option `json:"colorOptions"`
	ColorEnabled bool     `json:"colorEnabled"`
}

// OpenBatchFormRequest crea una sesión; BatchID vacío es alta.
type OpenBatchFormRequest struct {
	BatchID string `json:"batchId"`
}

// SelectProductRequest elige el producto de una fila.
type SelectProductRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// SelectColorRequest elige el color de una fila.
type SelectColorRequest struct {
	ColorID string `json:"colorId" validate:"required"`
}

// QuantityRequest fija la cantidad de una fila.
type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

// BatchDetailsRequest campos libres del lote.
type BatchDetailsRequest struct {
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
}
