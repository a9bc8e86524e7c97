package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-admin/internal/application/ports"
)

var (
	_ ports.AuditRecorder = (*AuditRepo)(nil)
	_ ports.AuditReader   = (*AuditRepo)(nil)
)

// maxRecent tope de filas devueltas por Recent.
const maxRecent = 200

// DBTX subconjunto de *pgxpool.Pool / pgx.Tx que usa el repositorio.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// AuditRepo diario de auditoría sobre la tabla admin_audit_log.
type AuditRepo struct {
	db  DBTX
	now func() time.Time
}

// NewAuditRepository construye el adaptador.
func NewAuditRepository(db DBTX) *AuditRepo {
	return &AuditRepo{db: db, now: time.Now}
}

const auditSchema = `
	CREATE TABLE IF NOT EXISTS admin_audit_log (
		id          UUID PRIMARY KEY,
		resource    TEXT        NOT NULL,
		action      TEXT        NOT NULL,
		record_id   TEXT        NOT NULL DEFAULT '',
		success     BOOLEAN     NOT NULL,
		detail      TEXT        NOT NULL DEFAULT '',
		amount      NUMERIC,
		created_at  TIMESTAMPTZ NOT NULL
	);
	ALTER TABLE admin_audit_log ADD COLUMN IF NOT EXISTS amount NUMERIC;
	CREATE INDEX IF NOT EXISTS admin_audit_log_created_at_idx ON admin_audit_log (created_at DESC)`

// EnsureSchema crea la tabla si no existe. Se llama una vez al arrancar.
func (r *AuditRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, auditSchema); err != nil {
		return fmt.Errorf("crear admin_audit_log: %w", err)
	}
	return nil
}

// Record inserta una entrada. ID y At vacíos se completan.
func (r *AuditRepo) Record(ctx context.Context, e ports.AuditEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.At.IsZero() {
		e.At = r.now()
	}
	var amount decimal.NullDecimal
	if e.Amount != nil {
		amount = decimal.NullDecimal{Decimal: *e.Amount, Valid: true}
	}
	query := `
		INSERT INTO admin_audit_log (id, resource, action, record_id, success, detail, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query, e.ID, e.Resource, e.Action, e.RecordID, e.Success, e.Detail, amount, e.At.UTC())
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// Recent devuelve las últimas entradas, de la más nueva a la más vieja.
// limit fuera de 1..200 se ajusta al rango.
func (r *AuditRepo) Recent(ctx context.Context, limit int) ([]ports.AuditEntry, error) {
	if limit <= 0 || limit > maxRecent {
		limit = maxRecent
	}
	query := `
		SELECT id::text, resource, action, record_id, success, detail, amount, created_at
		FROM admin_audit_log
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	defer rows.Close()

	out := []ports.AuditEntry{}
	for rows.Next() {
		var (
			e      ports.AuditEntry
			amount decimal.NullDecimal
		)
		if err := rows.Scan(&e.ID, &e.Resource, &e.Action, &e.RecordID, &e.Success, &e.Detail, &amount, &e.At); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		if amount.Valid {
			e.Amount = &amount.Decimal
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}
	return out, nil
}
