// Package resource implementa el Resource Manager genérico del back-office:
// colección en memoria, búsqueda local, formulario modal de alta/edición y baja
// con confirmación en dos pasos. Cada pantalla de entidad es una instancia.
package resource

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-admin/internal/application/notify"
	"github.com/jhoicas/backoffice-admin/internal/application/ports"
	"github.com/jhoicas/backoffice-admin/internal/application/validation"
	"github.com/jhoicas/backoffice-admin/internal/domain"
	"github.com/jhoicas/backoffice-admin/pkg/locale"
)

// confirmationTTL tiempo tras el cual una baja pedida y nunca confirmada se descarta.
const confirmationTTL = 12 * time.Hour

// Store operaciones de red de un recurso. Save con id vacío crea; con id, actualiza.
type Store[T, F any] interface {
	List(ctx context.Context) ([]T, error)
	Save(ctx context.Context, id string, values F) error
	Deactivate(ctx context.Context, id string) error
}

// Options configuración de un Manager.
type Options[T, F any] struct {
	// Resource nombre del recurso en logs y auditoría ("products").
	Resource string
	// Noun clave del catálogo con el sustantivo del recurso (locale.NounProduct).
	Noun  string
	Store Store[T, F]
	ID    func(T) string
	// SearchFields campos sobre los que se busca.
	SearchFields func(T) []string
	// Matcher nil usa SubstringMatcher.
	Matcher Matcher
	// ToForm pre-carga el formulario de edición.
	ToForm func(T) F
	// Validate nil omite la validación local.
	Validate func(F) validation.FieldErrors
	// CanRemove rechaza la baja de un registro (ej. ya eliminado).
	CanRemove func(T) error
	// Amount monto del formulario que se anota en la auditoría (nil si no aplica).
	Amount func(F) *decimal.Decimal
	// LocalRemove tras una baja exitosa filtra la lista en memoria en vez de volver a pedirla.
	LocalRemove bool
	Audit       ports.AuditRecorder
	Printer     *locale.Printer
	Logger      zerolog.Logger
	// Now reloj inyectable para auditoría.
	Now func() time.Time
}

// Mode modo del formulario modal.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// FormState estado del modal.
type FormState[F any] struct {
	Open       bool                   `json:"open"`
	Mode       Mode                   `json:"mode,omitempty"`
	ID         string                 `json:"id,omitempty"`
	Values     F                      `json:"values"`
	Errors     validation.FieldErrors `json:"errors,omitempty"`
	Submitting bool                   `json:"submitting"`
}

// Page paginación de la vista; Size 0 devuelve todo.
type Page struct {
	Number int
	Size   int
}

// Snapshot vista actual de la pantalla.
type Snapshot[T, F any] struct {
	Items    []T          `json:"items"`
	Total    int          `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
	Query    string       `json:"query"`
	Loading  bool         `json:"loading"`
	Form     FormState[F] `json:"form"`
}

// Manager estado de una pantalla de recurso. Seguro para uso concurrente: el
// estado se protege con un mutex y las llamadas de red se hacen fuera del lock.
type Manager[T, F any] struct {
	opts Options[T, F]

	mu      sync.Mutex
	records []T
	visible []T
	query   string
	filter  func(T) bool
	loading int
	form    FormState[F]
	formSeq uint64
	pending map[string]pendingRemoval
	listSeq uint64
}

// pendingRemoval baja pedida a la espera del segundo paso.
type pendingRemoval struct {
	id string
	at time.Time
}

// New construye el Manager. Store e ID son obligatorios.
func New[T, F any](opts Options[T, F]) *Manager[T, F] {
	if opts.Matcher == nil {
		opts.Matcher = SubstringMatcher()
	}
	if opts.Audit == nil {
		opts.Audit = ports.NopAuditRecorder{}
	}
	if opts.Printer == nil {
		opts.Printer = locale.New("th")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Noun == "" {
		opts.Noun = locale.NounData
	}
	return &Manager[T, F]{
		opts:    opts,
		records: []T{},
		visible: []T{},
		pending: make(map[string]pendingRemoval),
	}
}

// List pide la colección completa. Si falla, conserva los registros previos y
// devuelve el aviso de error.
func (m *Manager[T, F]) List(ctx context.Context) notify.Notice {
	m.mu.Lock()
	m.loading++
	m.listSeq++
	seq := m.listSeq
	m.mu.Unlock()

	items, err := m.opts.Store.List(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading--
	if err != nil {
		m.opts.Logger.Error().Err(err).Str("resource", m.opts.Resource).Msg("error al cargar la colección")
		return notify.Error(m.opts.Printer.T(locale.MsgLoadFailed, m.noun()))
	}
	if seq != m.listSeq {
		// Respuesta de una consulta anterior; la más reciente manda.
		return notify.Notice{}
	}
	if items == nil {
		items = []T{}
	}
	m.records = items
	m.recompute()
	return notify.Notice{}
}

// Search filtra localmente por query. No usa la red y es idempotente.
func (m *Manager[T, F]) Search(query string) []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.query = strings.TrimSpace(query)
	m.recompute()
	return clone(m.visible)
}

// Filter fija un predicado adicional sobre la vista (nil lo quita).
func (m *Manager[T, F]) Filter(pred func(T) bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filter = pred
	m.recompute()
}

// recompute rehace visible a partir de records, query y filter. Requiere el lock.
func (m *Manager[T, F]) recompute() {
	type ranked struct {
		item T
		rank int
	}
	out := make([]ranked, 0, len(m.records))
	for _, r := range m.records {
		if m.filter != nil && !m.filter(r) {
			continue
		}
		if m.query == "" || m.opts.SearchFields == nil {
			out = append(out, ranked{item: r})
			continue
		}
		if rank, ok := m.opts.Matcher(m.query, m.opts.SearchFields(r)); ok {
			out = append(out, ranked{item: r, rank: rank})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].rank < out[j].rank })
	m.visible = make([]T, len(out))
	for i, r := range out {
		m.visible[i] = r.item
	}
}

// Records copia de la colección completa.
func (m *Manager[T, F]) Records() []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return clone(m.records)
}

// Find busca un registro cargado por id.
func (m *Manager[T, F]) Find(id string) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.find(id)
}

func (m *Manager[T, F]) find(id string) (T, bool) {
	for _, r := range m.records {
		if m.opts.ID(r) == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// OpenCreate abre el modal vacío.
func (m *Manager[T, F]) OpenCreate() FormState[F] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.formSeq++
	m.form = FormState[F]{Open: true, Mode: ModeCreate}
	return m.form
}

// OpenEdit abre el modal con los valores del registro id.
func (m *Manager[T, F]) OpenEdit(id string) (FormState[F], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.find(id)
	if !ok {
		return FormState[F]{}, fmt.Errorf("%s %s: %w", m.opts.Resource, id, domain.ErrNotFound)
	}
	if m.opts.ToForm == nil {
		return FormState[F]{}, fmt.Errorf("%s no admite edición: %w", m.opts.Resource, domain.ErrInvalidInput)
	}
	m.formSeq++
	m.form = FormState[F]{Open: true, Mode: ModeEdit, ID: id, Values: m.opts.ToForm(rec)}
	return m.form, nil
}

// UpdateForm modifica los valores del modal abierto (campos dependientes).
func (m *Manager[T, F]) UpdateForm(fn func(*F)) (FormState[F], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.form.Open {
		return FormState[F]{}, domain.ErrFormClosed
	}
	fn(&m.form.Values)
	return m.form, nil
}

// CloseForm cierra el modal descartando los valores.
func (m *Manager[T, F]) CloseForm() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.formSeq++
	m.form = FormState[F]{}
}

// Form estado actual del modal.
func (m *Manager[T, F]) Form() FormState[F] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.form
}

// Submit valida y envía el modal abierto. Con éxito cierra el modal y vuelve a
// pedir la lista; con fallo el modal queda abierto con los valores ingresados.
func (m *Manager[T, F]) Submit(ctx context.Context, values F) (notify.Notice, error) {
	m.mu.Lock()
	if !m.form.Open {
		m.mu.Unlock()
		return notify.Notice{}, domain.ErrFormClosed
	}
	if m.form.Submitting {
		m.mu.Unlock()
		return notify.Notice{}, fmt.Errorf("%s: envío en curso: %w", m.opts.Resource, domain.ErrConflict)
	}
	mode, id, seq := m.form.Mode, m.form.ID, m.formSeq
	m.form.Values = values
	m.form.Errors = nil
	if m.opts.Validate != nil {
		if errs := m.opts.Validate(values); len(errs) > 0 {
			m.form.Errors = errs
			m.mu.Unlock()
			return notify.Warning(m.opts.Printer.T(locale.MsgValidationFailed), errs), nil
		}
	}
	m.form.Submitting = true
	m.mu.Unlock()

	err := m.opts.Store.Save(ctx, id, values)
	action := ports.ActionCreate
	if mode == ModeEdit {
		action = ports.ActionUpdate
	}
	var amount *decimal.Decimal
	if m.opts.Amount != nil {
		amount = m.opts.Amount(values)
	}
	m.AuditAmount(ctx, action, id, amount, err)

	m.mu.Lock()
	sameForm := seq == m.formSeq
	if sameForm {
		m.form.Submitting = false
	}
	if err != nil {
		m.mu.Unlock()
		m.opts.Logger.Error().Err(err).Str("resource", m.opts.Resource).Str("action", action).Msg("error al guardar")
		return notify.Error(m.failure(mode, err)), nil
	}
	if sameForm {
		m.formSeq++
		m.form = FormState[F]{}
	}
	m.mu.Unlock()

	m.List(ctx)
	if mode == ModeEdit {
		return notify.Success(m.opts.Printer.T(locale.MsgUpdateSuccess, m.noun())), nil
	}
	return notify.Success(m.opts.Printer.T(locale.MsgCreateSuccess, m.noun())), nil
}

// Remove primer paso de la baja: devuelve el token de confirmación, válido
// por 12 horas. No hace ninguna llamada de red.
func (m *Manager[T, F]) Remove(id string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purgeExpired()
	rec, ok := m.find(id)
	if !ok {
		return "", fmt.Errorf("%s %s: %w", m.opts.Resource, id, domain.ErrNotFound)
	}
	if m.opts.CanRemove != nil {
		if err := m.opts.CanRemove(rec); err != nil {
			return "", err
		}
	}
	token := uuid.NewString()
	m.pending[token] = pendingRemoval{id: id, at: m.opts.Now()}
	return token, nil
}

// Cancel descarta una confirmación pendiente sin tocar la red ni la lista.
func (m *Manager[T, F]) Cancel(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purgeExpired()
	if _, ok := m.pending[token]; !ok {
		return domain.ErrUnknownConfirmation
	}
	delete(m.pending, token)
	return nil
}

// Confirm segundo paso de la baja. Con fallo el estado local no cambia.
func (m *Manager[T, F]) Confirm(ctx context.Context, token string) (notify.Notice, error) {
	m.mu.Lock()
	m.purgeExpired()
	p, ok := m.pending[token]
	delete(m.pending, token)
	m.mu.Unlock()
	if !ok {
		return notify.Notice{}, domain.ErrUnknownConfirmation
	}
	id := p.id

	err := m.opts.Store.Deactivate(ctx, id)
	m.Audit(ctx, ports.ActionDeactivate, id, err)
	if err != nil {
		m.opts.Logger.Error().Err(err).Str("resource", m.opts.Resource).Str("id", id).Msg("error al eliminar")
		return notify.Error(m.opts.Printer.T(locale.MsgDeleteFailed, m.noun())), nil
	}

	if m.opts.LocalRemove {
		m.mu.Lock()
		kept := make([]T, 0, len(m.records))
		for _, r := range m.records {
			if m.opts.ID(r) != id {
				kept = append(kept, r)
			}
		}
		m.records = kept
		m.recompute()
		m.mu.Unlock()
	} else {
		m.List(ctx)
	}
	return notify.Success(m.opts.Printer.T(locale.MsgDeleteSuccess, m.noun())), nil
}

// Pending cantidad de confirmaciones abiertas.
func (m *Manager[T, F]) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purgeExpired()
	return len(m.pending)
}

// purgeExpired descarta las bajas sin confirmar más viejas que confirmationTTL.
// Requiere el lock.
func (m *Manager[T, F]) purgeExpired() {
	cutoff := m.opts.Now().Add(-confirmationTTL)
	for token, p := range m.pending {
		if p.at.Before(cutoff) {
			delete(m.pending, token)
		}
	}
}

// Snapshot vista actual, paginada si page.Size > 0.
func (m *Manager[T, F]) Snapshot(page Page) Snapshot[T, F] {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := m.visible
	number := 1
	if page.Size > 0 {
		if page.Number > 1 {
			number = page.Number
		}
		start := (number - 1) * page.Size
		if start > len(items) {
			start = len(items)
		}
		end := start + page.Size
		if end > len(items) {
			end = len(items)
		}
		items = items[start:end]
	}
	return Snapshot[T, F]{
		Items:    clone(items),
		Total:    len(m.visible),
		Page:     number,
		PageSize: page.Size,
		Query:    m.query,
		Loading:  m.loading > 0,
		Form:     m.form,
	}
}

// Audit registra una mutación. Un fallo del diario solo se loguea.
func (m *Manager[T, F]) Audit(ctx context.Context, action, id string, opErr error) {
	m.AuditAmount(ctx, action, id, nil, opErr)
}

// AuditAmount como Audit, con el monto enviado.
func (m *Manager[T, F]) AuditAmount(ctx context.Context, action, id string, amount *decimal.Decimal, opErr error) {
	entry := ports.AuditEntry{
		ID:       uuid.NewString(),
		Resource: m.opts.Resource,
		Action:   action,
		RecordID: id,
		Success:  opErr == nil,
		Amount:   amount,
		At:       m.opts.Now(),
	}
	if opErr != nil {
		entry.Detail = opErr.Error()
	}
	if err := m.opts.Audit.Record(ctx, entry); err != nil {
		m.opts.Logger.Warn().Err(err).Str("resource", m.opts.Resource).Msg("no se pudo registrar auditoría")
	}
}

// Printer traductor del Manager.
func (m *Manager[T, F]) Printer() *locale.Printer { return m.opts.Printer }

// noun sustantivo localizado del recurso.
func (m *Manager[T, F]) noun() string { return m.opts.Printer.T(m.opts.Noun) }

// failure aviso de fallo de guardado, con el mensaje del servidor si lo hay.
func (m *Manager[T, F]) failure(mode Mode, err error) string {
	key := locale.MsgCreateFailed
	if mode == ModeEdit {
		key = locale.MsgUpdateFailed
	}
	return FailureMessage(m.opts.Printer, key, m.noun(), err)
}

// serverMessager lo implementan los errores que traen el texto del backend.
type serverMessager interface {
	ServerMessage() string
}

// FailureMessage texto localizado del fallo con el mensaje del servidor anexado.
func FailureMessage(p *locale.Printer, key, noun string, err error) string {
	msg := p.T(key, noun)
	if sm := ServerMessage(err); sm != "" {
		msg += ": " + sm
	}
	return msg
}

// ServerMessage texto del backend contenido en err, o "".
func ServerMessage(err error) string {
	var sm serverMessager
	if errors.As(err, &sm) {
		return sm.ServerMessage()
	}
	return ""
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
