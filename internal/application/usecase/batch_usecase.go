package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-admin/internal/application/lookup"
	"github.com/jhoicas/backoffice-admin/internal/application/notify"
	"github.com/jhoicas/backoffice-admin/internal/application/ports"
	"github.com/jhoicas/backoffice-admin/internal/application/resource"
	"github.com/jhoicas/backoffice-admin/internal/domain"
	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
	"github.com/jhoicas/backoffice-admin/internal/domain/repository"
	"github.com/jhoicas/backoffice-admin/pkg/locale"
)

// batchFormTTL tiempo tras el cual una sesión de formulario abandonada se descarta.
const batchFormTTL = 12 * time.Hour

// BatchUseCase pantalla de lotes: lista con baja lógica, sesiones de
// formulario (BatchForm) y hoja imprimible.
type BatchUseCase struct {
	*resource.Manager[entity.ProductBatch, NoForm]

	repo     repository.ProductBatchRepository
	products repository.ProductRepository
	colors   repository.ColorRepository
	sheets   ports.BatchSheetGenerator
	env      Env
	log      zerolog.Logger

	mu    sync.Mutex
	forms map[string]*BatchForm
}

// NewBatchUseCase construye el caso de uso. sheets puede ser nil (sin impresión).
func NewBatchUseCase(
	repo repository.ProductBatchRepository,
	products repository.ProductRepository,
	colors repository.ColorRepository,
	sheets ports.BatchSheetGenerator,
	env Env,
) *BatchUseCase {
	env = env.withDefaults()
	uc := &BatchUseCase{
		repo:     repo,
		products: products,
		colors:   colors,
		sheets:   sheets,
		env:      env,
		log:      env.component("batches"),
		forms:    make(map[string]*BatchForm),
	}
	uc.Manager = resource.New(resource.Options[entity.ProductBatch, NoForm]{
		Resource: "product-batches",
		Noun:     locale.NounBatch,
		Store:    batchStore{repo: repo},
		ID:       func(b entity.ProductBatch) string { return b.ID },
		SearchFields: func(b entity.ProductBatch) []string {
			return append([]string{b.BatchName, b.BatchCode}, b.Tags...)
		},
		CanRemove: func(b entity.ProductBatch) error {
			if b.IsDeleted {
				return fmt.Errorf("lote %s: %w", b.ID, domain.ErrConflict)
			}
			return nil
		},
		Audit:   env.Audit,
		Printer: env.Printer,
		Logger:  uc.log,
		Now:     env.Now,
	})
	return uc
}

// OpenForm abre una sesión de formulario. batchID vacío es alta (una fila
// vacía); con batchID se cargan las filas del lote y los colores de cada producto.
// Un fallo al cargar el catálogo o los colores no impide abrir el formulario.
func (uc *BatchUseCase) OpenForm(ctx context.Context, batchID string) (*BatchForm, notify.Notice, error) {
	uc.purgeExpired()
	p := uc.env.Printer
	var notice notify.Notice

	catalog, err := uc.products.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("error al cargar productos")
		notice = notify.Error(p.T(locale.MsgLoadFailed, p.T(locale.NounProduct)))
		catalog = []entity.Product{}
	}

	f := &BatchForm{
		id:       uuid.NewString(),
		mode:     resource.ModeCreate,
		openedAt: uc.env.Now(),
		colors:   lookup.New[entity.Color](uc.colors.ListByProduct),
		products: uc.products.List,
		printer:  p,
		log:      uc.log,
		catalog:  catalog,
		tags:     []string{},
	}

	if batchID == "" {
		f.rows = []batchRow{newBatchRow()}
	} else {
		batch, err := uc.repo.GetByID(ctx, batchID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, notify.Notice{}, err
			}
			uc.log.Error().Err(err).Str("id", batchID).Msg("error al cargar el lote")
			return nil, notify.Error(p.T(locale.MsgLoadFailed, p.T(locale.NounBatch))), nil
		}
		f.mode = resource.ModeEdit
		f.batchID = batch.ID
		f.batchCode = batch.BatchCode
		f.description = batch.Description
		f.tags = normalizeTags(batch.Tags)
		for _, line := range batch.Products {
			row := newBatchRow()
			row.productID = line.Product.ID
			row.colorID = line.Color.ID
			row.quantity = line.Quantity
			if row.productID != "" {
				colors, err := f.colors.Get(ctx, row.productID)
				if err != nil {
					uc.log.Warn().Err(err).Str("product_id", row.productID).Msg("colores no disponibles")
				}
				row.options = colors
			}
			f.rows = append(f.rows, row)
		}
	}
	f.deriveName()

	uc.mu.Lock()
	uc.forms[f.id] = f
	uc.mu.Unlock()
	return f, notice, nil
}

// Form devuelve una sesión abierta.
func (uc *BatchUseCase) Form(id string) (*BatchForm, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	f, ok := uc.forms[id]
	if !ok {
		return nil, fmt.Errorf("formulario %s: %w", id, domain.ErrFormClosed)
	}
	return f, nil
}

// take saca la sesión del registro.
func (uc *BatchUseCase) take(id string) (*BatchForm, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	f, ok := uc.forms[id]
	if !ok {
		return nil, fmt.Errorf("formulario %s: %w", id, domain.ErrFormClosed)
	}
	delete(uc.forms, id)
	return f, nil
}

func (uc *BatchUseCase) put(f *BatchForm) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.forms[f.id] = f
}

// CloseForm descarta una sesión sin enviar.
func (uc *BatchUseCase) CloseForm(id string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.forms, id)
}

// SubmitForm valida y envía la sesión. Con éxito cierra la sesión y vuelve a
// pedir la lista; con fallo la sesión queda abierta tal cual. Mientras el envío
// está en curso la sesión no está registrada, así que un segundo envío falla
// con ErrFormClosed.
func (uc *BatchUseCase) SubmitForm(ctx context.Context, id string) (notify.Notice, error) {
	f, err := uc.take(id)
	if err != nil {
		return notify.Notice{}, err
	}
	p := uc.env.Printer
	payload, errs := f.Payload(uc.env.Now())
	if len(errs) > 0 {
		uc.put(f)
		return notify.Warning(firstMessage(errs), errs), nil
	}

	action := ports.ActionCreate
	if f.mode == resource.ModeEdit {
		action = ports.ActionUpdate
		err = uc.repo.Update(ctx, f.batchID, payload)
	} else {
		err = uc.repo.Create(ctx, payload)
	}
	total := decimal.NewFromInt(int64(payload.TotalQuantity))
	uc.AuditAmount(ctx, action, f.batchID, &total, err)
	if err != nil {
		uc.log.Error().Err(err).Str("action", action).Msg("error al guardar el lote")
		uc.put(f)
		if sm := resource.ServerMessage(err); sm != "" {
			return notify.Error(p.T(locale.MsgGenericErrorDetail, sm)), nil
		}
		return notify.Error(p.T(locale.MsgGenericError)), nil
	}

	uc.List(ctx)
	if f.mode == resource.ModeEdit {
		return notify.Success(p.T(locale.MsgUpdateSuccess, p.T(locale.NounBatch))), nil
	}
	return notify.Success(p.T(locale.MsgCreateSuccess, p.T(locale.NounBatch))), nil
}

// PrintSheet genera el PDF del lote id con nombres de producto y color resueltos.
func (uc *BatchUseCase) PrintSheet(ctx context.Context, id string) ([]byte, error) {
	if uc.sheets == nil {
		return nil, fmt.Errorf("impresión de lotes no configurada: %w", domain.ErrInvalidInput)
	}
	batch, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	catalog, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar productos: %w", err)
	}
	byID := make(map[string]entity.Product, len(catalog))
	for _, prod := range catalog {
		byID[prod.ID] = prod
	}
	colors := lookup.New[entity.Color](uc.colors.ListByProduct)

	sheet := ports.BatchSheet{
		BatchCode:   batch.BatchCode,
		BatchName:   batch.BatchName,
		Description: batch.Description,
		Tags:        batch.Tags,
		CreatedAt:   batch.CreatedAt,
	}
	for _, line := range batch.Products {
		sl := ports.BatchSheetLine{
			ProductName: line.Product.Name,
			ColorName:   line.Color.Name,
			Quantity:    line.Quantity,
		}
		if prod, ok := byID[line.Product.ID]; ok {
			sl.SKU = prod.SKU
			sl.ProductName = prod.Name
		}
		if sl.ColorName == "" && line.Product.ID != "" {
			opts, err := colors.Get(ctx, line.Product.ID)
			if err != nil {
				uc.log.Warn().Err(err).Str("product_id", line.Product.ID).Msg("colores no disponibles para la hoja")
			}
			for _, c := range opts {
				if c.ID == line.Color.ID {
					sl.ColorName = c.Name
				}
			}
		}
		if sl.ProductName == "" {
			sl.ProductName = line.Product.ID
		}
		if sl.ColorName == "" {
			sl.ColorName = line.Color.ID
		}
		sheet.Lines = append(sheet.Lines, sl)
		sheet.TotalQuantity += line.Quantity
	}
	sheet.TotalProducts = len(sheet.Lines)
	return uc.sheets.GenerateBatchSheet(sheet)
}

func (uc *BatchUseCase) purgeExpired() {
	cutoff := uc.env.Now().Add(-batchFormTTL)
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for id, f := range uc.forms {
		if f.openedAt.Before(cutoff) {
			delete(uc.forms, id)
		}
	}
}

// firstMessage mensaje a mostrar de un conjunto de errores: el de la fila más baja.
func firstMessage(errs map[string]string) string {
	if msg, ok := errs["products"]; ok {
		return msg
	}
	best := ""
	bestKey := ""
	for k, msg := range errs {
		if bestKey == "" || lessFieldKey(k, bestKey) {
			bestKey, best = k, msg
		}
	}
	return best
}

// lessFieldKey ordena "products[2].x" antes que "products[10].x".
func lessFieldKey(a, b string) bool {
	var ia, ib int
	_, errA := fmt.Sscanf(a, "products[%d]", &ia)
	_, errB := fmt.Sscanf(b, "products[%d]", &ib)
	if errA == nil && errB == nil && ia != ib {
		return ia < ib
	}
	return a < b
}

type batchStore struct {
	repo repository.ProductBatchRepository
}

func (s batchStore) List(ctx context.Context) ([]entity.ProductBatch, error) {
	return s.repo.List(ctx)
}

func (s batchStore) Save(context.Context, string, NoForm) error {
	return fmt.Errorf("los lotes se guardan desde BatchForm: %w", domain.ErrInvalidInput)
}

func (s batchStore) Deactivate(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}
