package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/backoffice-admin/internal/application/dto"
	"github.com/jhoicas/backoffice-admin/internal/application/lookup"
	"github.com/jhoicas/backoffice-admin/internal/application/notify"
	"github.com/jhoicas/backoffice-admin/internal/application/resource"
	"github.com/jhoicas/backoffice-admin/internal/application/validation"
	"github.com/jhoicas/backoffice-admin/internal/domain"
	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
	"github.com/jhoicas/backoffice-admin/pkg/locale"
)

// batchNameSeparator separador de los nombres de producto en batchName.
const batchNameSeparator = ", "

// BatchForm sesión de formulario de lote. Cada fila es producto + color +
// cantidad; elegir producto limpia el color y carga sus opciones (memorizadas
// por producto). En edición la cantidad de filas es fija.
type BatchForm struct {
	id        string
	mode      resource.Mode
	batchID   string
	batchCode string
	openedAt  time.Time
	colors    *lookup.Cache[entity.Color]
	products  func(ctx context.Context) ([]entity.Product, error)
	printer   *locale.Printer
	log       zerolog.Logger

	mu          sync.Mutex
	catalog     []entity.Product
	description string
	tags        []string
	rows        []batchRow
	batchName   string
}

type batchRow struct {
	key       string
	productID string
	colorID   string
	quantity  int
	options   []entity.Color
	gen       uint64
}

func newBatchRow() batchRow {
	return batchRow{key: uuid.NewString(), quantity: 1}
}

// ID identificador de la sesión.
func (f *BatchForm) ID() string { return f.id }

// Mode alta o edición.
func (f *BatchForm) Mode() resource.Mode { return f.mode }

// AddRow agrega una fila vacía (cantidad 1). No permitido en edición.
func (f *BatchForm) AddRow() error {
	if f.mode == resource.ModeEdit {
		return domain.ErrEditLocked
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, newBatchRow())
	return nil
}

// RemoveRow quita la fila i. No permitido en edición.
func (f *BatchForm) RemoveRow(i int) error {
	if f.mode == resource.ModeEdit {
		return domain.ErrEditLocked
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkRow(i); err != nil {
		return err
	}
	f.rows = append(f.rows[:i], f.rows[i+1:]...)
	f.deriveName()
	return nil
}

// SelectProduct fija el producto de la fila i: limpia el color, descarta las
// opciones anteriores y carga las del nuevo producto. Si la fila cambió
// mientras se esperaba la respuesta, la respuesta se descarta. Con el catálogo
// vacío (falló al abrir) se vuelve a pedir antes de validar el producto.
func (f *BatchForm) SelectProduct(ctx context.Context, i int, productID string) (notify.Notice, error) {
	productID = strings.TrimSpace(productID)
	f.mu.Lock()
	empty := len(f.catalog) == 0
	f.mu.Unlock()
	var catalogNotice notify.Notice
	if empty {
		catalogNotice = f.RefreshCatalog(ctx)
	}

	f.mu.Lock()
	if err := f.checkRow(i); err != nil {
		f.mu.Unlock()
		return notify.Notice{}, err
	}
	if productID == "" || (len(f.catalog) > 0 && !f.inCatalog(productID)) {
		f.mu.Unlock()
		return notify.Notice{}, fmt.Errorf("producto %q: %w", productID, domain.ErrInvalidInput)
	}
	row := &f.rows[i]
	row.productID = productID
	row.colorID = ""
	row.options = nil
	row.gen++
	key, gen := row.key, row.gen
	f.deriveName()
	f.mu.Unlock()

	colors, err := f.colors.Get(ctx, productID)

	f.mu.Lock()
	defer f.mu.Unlock()
	current := f.rowByKey(key)
	if current == nil || current.gen != gen {
		return notify.Notice{}, nil
	}
	if err != nil {
		f.log.Error().Err(err).Str("product_id", productID).Msg("error al cargar colores")
		return notify.Error(f.printer.T(locale.MsgLoadFailed, f.printer.T(locale.NounData))), nil
	}
	current.options = colors
	return catalogNotice, nil
}

// SelectColor fija el color de la fila i; debe ser una de sus opciones.
func (f *BatchForm) SelectColor(i int, colorID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkRow(i); err != nil {
		return err
	}
	row := &f.rows[i]
	for _, c := range row.options {
		if c.ID == colorID {
			row.colorID = colorID
			return nil
		}
	}
	return fmt.Errorf("color %q no disponible para la fila %d: %w", colorID, i+1, domain.ErrInvalidInput)
}

// SetQuantity fija la cantidad de la fila i (se valida al enviar).
func (f *BatchForm) SetQuantity(i, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkRow(i); err != nil {
		return err
	}
	f.rows[i].quantity = quantity
	return nil
}

// SetDetails actualiza descripción (si no es nil) y etiquetas (si no es nil).
func (f *BatchForm) SetDetails(description *string, tags []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if description != nil {
		f.description = *description
	}
	if tags != nil {
		f.tags = normalizeTags(tags)
	}
}

// RefreshCatalog vuelve a pedir el catálogo de productos, descarta los colores
// memorizados y recalcula batchName. Si falla, el catálogo anterior se conserva.
func (f *BatchForm) RefreshCatalog(ctx context.Context) notify.Notice {
	if f.products == nil {
		return notify.Notice{}
	}
	catalog, err := f.products(ctx)
	if err != nil {
		f.log.Error().Err(err).Msg("error al recargar productos")
		return notify.Error(f.printer.T(locale.MsgLoadFailed, f.printer.T(locale.NounProduct)))
	}
	if catalog == nil {
		catalog = []entity.Product{}
	}
	f.colors.Forget("")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.catalog = catalog
	f.deriveName()
	return notify.Notice{}
}

// View estado actual para la interfaz.
func (f *BatchForm) View() dto.BatchFormView {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := dto.BatchFormView{
		ID:          f.id,
		Mode:        string(f.mode),
		BatchID:     f.batchID,
		BatchCode:   f.batchCode,
		BatchName:   f.batchName,
		Description: f.description,
		Tags:        append([]string{}, f.tags...),
		Rows:        make([]dto.BatchRowView, 0, len(f.rows)),
		CanAddRows:  f.mode != resource.ModeEdit,
		Products:    make([]dto.Option, 0, len(f.catalog)),
	}
	for _, r := range f.rows {
		opts := make([]dto.Option, 0, len(r.options))
		for _, c := range r.options {
			opts = append(opts, dto.Option{Value: c.ID, Label: c.Name})
		}
		v.Rows = append(v.Rows, dto.BatchRowView{
			Key:          r.key,
			ProductID:    r.productID,
			ColorID:      r.colorID,
			Quantity:     r.quantity,
			ColorOptions: opts,
			ColorEnabled: len(opts) > 0,
		})
		v.TotalQuantity += r.quantity
	}
	v.TotalProducts = len(f.rows)
	for _, p := range f.catalog {
		v.Products = append(v.Products, dto.Option{Value: p.ID, Label: productLabel(p)})
	}
	return v
}

// Payload arma el cuerpo a enviar. Sin filas, o con una fila incompleta,
// devuelve los errores por campo y ningún payload. batchCode solo se genera en alta.
func (f *BatchForm) Payload(now time.Time) (entity.BatchPayload, validation.FieldErrors) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.rows) == 0 {
		return entity.BatchPayload{}, validation.FieldErrors{"products": f.printer.T(locale.MsgBatchEmpty)}
	}
	errs := validation.FieldErrors{}
	lines := make([]entity.BatchLine, 0, len(f.rows))
	total := 0
	for i, r := range f.rows {
		n := i + 1
		switch {
		case r.productID == "":
			errs[fmt.Sprintf("products[%d].productId", i)] = f.printer.T(locale.MsgRowProduct, n)
		case r.colorID == "":
			errs[fmt.Sprintf("products[%d].colorId", i)] = f.printer.T(locale.MsgRowColor, n)
		case r.quantity < 1:
			errs[fmt.Sprintf("products[%d].quantity", i)] = f.printer.T(locale.MsgRowQty, n)
		}
		lines = append(lines, entity.BatchLine{
			Product:  entity.RefTo(r.productID),
			Color:    entity.RefTo(r.colorID),
			Quantity: r.quantity,
		})
		total += r.quantity
	}
	if len(errs) > 0 {
		return entity.BatchPayload{}, errs
	}
	p := entity.BatchPayload{
		BatchName:     f.batchName,
		Description:   f.description,
		Tags:          append([]string{}, f.tags...),
		Products:      lines,
		TotalProducts: len(lines),
		TotalQuantity: total,
	}
	if f.mode == resource.ModeCreate {
		p.BatchCode = fmt.Sprintf("BATCH-%d", now.UnixMilli())
	}
	return p, nil
}

// DeriveBatchName nombre del lote a partir de los productos elegidos: los
// nombres encontrados en catalog, en orden de fila, unidos por ", ". Los ids
// vacíos o ausentes del catálogo se omiten.
func DeriveBatchName(productIDs []string, catalog []entity.Product) string {
	names := make(map[string]string, len(catalog))
	for _, p := range catalog {
		names[p.ID] = p.Name
	}
	out := make([]string, 0, len(productIDs))
	for _, id := range productIDs {
		if name := names[id]; id != "" && name != "" {
			out = append(out, name)
		}
	}
	return strings.Join(out, batchNameSeparator)
}

// deriveName recalcula batchName. Requiere el lock.
func (f *BatchForm) deriveName() {
	ids := make([]string, len(f.rows))
	for i, r := range f.rows {
		ids[i] = r.productID
	}
	f.batchName = DeriveBatchName(ids, f.catalog)
}

func (f *BatchForm) checkRow(i int) error {
	if i < 0 || i >= len(f.rows) {
		return fmt.Errorf("fila %d de %d: %w", i, len(f.rows), domain.ErrRowOutOfRange)
	}
	return nil
}

func (f *BatchForm) rowByKey(key string) *batchRow {
	for i := range f.rows {
		if f.rows[i].key == key {
			return &f.rows[i]
		}
	}
	return nil
}

func (f *BatchForm) inCatalog(productID string) bool {
	for _, p := range f.catalog {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// productLabel etiqueta del selector de producto: "sku / nombre".
func productLabel(p entity.Product) string {
	return strings.TrimSpace(p.SKU + " / " + p.Name)
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
