package usecase

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/backoffice-admin/internal/application/ports"
	"github.com/jhoicas/backoffice-admin/internal/application/validation"
	"github.com/jhoicas/backoffice-admin/pkg/locale"
)

// Env dependencias transversales compartidas por los casos de uso.
type Env struct {
	Printer   *locale.Printer
	Validator *validation.Validator
	Audit     ports.AuditRecorder
	Logger    zerolog.Logger
	Now       func() time.Time
}

// withDefaults completa los campos vacíos.
func (e Env) withDefaults() Env {
	if e.Printer == nil {
		e.Printer = locale.New("th")
	}
	if e.Validator == nil {
		e.Validator = validation.New(e.Printer)
	}
	if e.Audit == nil {
		e.Audit = ports.NopAuditRecorder{}
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	return e
}

func (e Env) component(name string) zerolog.Logger {
	return e.Logger.With().Str("component", name).Logger()
}
