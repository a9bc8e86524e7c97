package dto

import "github.com/jhoicas/backoffice-admin/internal/application/notify"

// PageRequest paginación de los listados (?page=&size=).
type PageRequest struct {
	Page int `query:"page" validate:"min=0"`
	Size int `query:"size" validate:"min=0,max=100"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NoticeResponse resultado de una operación: el aviso y, si aplica, la vista actualizada.
type NoticeResponse struct {
	Notice *notify.Notice `json:"notice,omitempty"`
	Data   any            `json:"data,omitempty"`
}

// ConfirmationResponse token del primer paso de una baja.
type ConfirmationResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
}

// Option par valor/etiqueta de un selector.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
