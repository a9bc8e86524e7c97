package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Acciones registradas en el diario de auditoría.
const (
	ActionCreate     = "create"
	ActionUpdate     = "update"
	ActionDeactivate = "deactivate"
	ActionToggle     = "toggle"
)

// AuditEntry una mutación enviada al backend, exitosa o no.
type AuditEntry struct {
	ID       string    `json:"id"`
	Resource string    `json:"resource"`
	Action   string    `json:"action"`
	RecordID string    `json:"recordId,omitempty"`
	Success  bool      `json:"success"`
	Detail   string    `json:"detail,omitempty"`
	At       time.Time `json:"at"`

	// Amount monto enviado: precio, descuento o cantidad total del lote.
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

// AuditRecorder puerto de salida del diario de auditoría. Un fallo al registrar
// nunca debe impedir la operación del administrador.
type AuditRecorder interface {
	Record(ctx context.Context, entry AuditEntry) error
}

// NopAuditRecorder se usa cuando no hay base de datos configurada.
type NopAuditRecorder struct{}

// Record no hace nada.
func (NopAuditRecorder) Record(context.Context, AuditEntry) error { return nil }

// AuditReader consulta las entradas más recientes del diario.
type AuditReader interface {
	Recent(ctx context.Context, limit int) ([]AuditEntry, error)
}
