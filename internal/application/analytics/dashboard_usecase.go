// Package analytics arma el dashboard del administrador a partir del resumen
// agregado del backend: filtro por rango, series diarias, tarjetas de estado
// y datos ilustrativos cuando un gráfico llega vacío.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/jhoicas/backoffice-admin/internal/application/dto"
	"github.com/jhoicas/backoffice-admin/internal/application/notify"
	"github.com/jhoicas/backoffice-admin/internal/domain"
	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
	"github.com/jhoicas/backoffice-admin/internal/domain/repository"
	"github.com/jhoicas/backoffice-admin/pkg/locale"
)

// Vistas del gráfico principal (mutuamente excluyentes).
const (
	ViewRevenue = "revenue"
	ViewUsers   = "users"
)

// Nombres de los datasets que pueden sustituirse por datos ilustrativos.
const (
	DatasetTopRevenue = "topProductsByRevenue"
	DatasetTopQty     = "topProductsByQty"
	DatasetCategories = "salesByCategory"
)

// DashboardOptions configuración del caso de uso.
type DashboardOptions struct {
	// Location zona horaria fija para cortes y agrupación por día (por defecto Asia/Bangkok).
	Location     *time.Location
	DefaultRange string
	Printer      *locale.Printer
	Logger       zerolog.Logger
	Now          func() time.Time
}

// DashboardUseCase construye la vista del dashboard.
type DashboardUseCase struct {
	repo repository.DashboardRepository
	opts DashboardOptions
	log  zerolog.Logger
}

// NewDashboardUseCase construye el caso de uso completando las opciones vacías.
func NewDashboardUseCase(repo repository.DashboardRepository, opts DashboardOptions) *DashboardUseCase {
	if opts.Location == nil {
		loc, err := time.LoadLocation("Asia/Bangkok")
		if err != nil {
			loc = time.FixedZone("ICT", 7*60*60)
		}
		opts.Location = loc
	}
	if !ValidRange(opts.DefaultRange) {
		opts.DefaultRange = Range3Months
	}
	if opts.Printer == nil {
		opts.Printer = locale.New("th")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &DashboardUseCase{
		repo: repo,
		opts: opts,
		log:  opts.Logger.With().Str("component", "dashboard").Logger(),
	}
}

// Overview obtiene el resumen del rango rangeTag ("" = rango por defecto) y
// lo convierte en datos listos para graficar. view elige la serie diaria
// ("" = ingresos). Un rango o vista desconocidos devuelven ErrInvalidInput;
// un fallo del backend se reporta como aviso de error con vista nil.
func (uc *DashboardUseCase) Overview(ctx context.Context, rangeTag, view string) (*dto.DashboardView, notify.Notice, error) {
	if rangeTag == "" {
		rangeTag = uc.opts.DefaultRange
	}
	if view == "" {
		view = ViewRevenue
	}
	if !ValidRange(rangeTag) {
		return nil, notify.Notice{}, fmt.Errorf("rango %q: %w", rangeTag, domain.ErrInvalidInput)
	}
	if view != ViewRevenue && view != ViewUsers {
		return nil, notify.Notice{}, fmt.Errorf("vista %q: %w", view, domain.ErrInvalidInput)
	}

	raw, err := uc.repo.Overview(ctx, rangeTag)
	if err != nil {
		uc.log.Error().Err(err).Str("range", rangeTag).Msg("obtener resumen del dashboard")
		p := uc.opts.Printer
		return nil, notify.Error(p.T(locale.MsgLoadFailed, p.T(locale.NounData))), nil
	}

	cutoff, err := Cutoff(uc.opts.Now(), rangeTag, uc.opts.Location)
	if err != nil {
		return nil, notify.Notice{}, err
	}
	return uc.build(raw, rangeTag, view, cutoff), notify.Notice{}, nil
}

func (uc *DashboardUseCase) build(raw *entity.DashboardOverview, rangeTag, view string, cutoff time.Time) *dto.DashboardView {
	p := uc.opts.Printer
	lang := p.Tag()

	out := &dto.DashboardView{
		Range: rangeTag,
		View:  view,
		Stats: []dto.StatCard{
			{Key: "salesToday", Title: p.T(locale.MsgStatSalesToday), Value: raw.SalesToday},
			{Key: "salesThisMonth", Title: p.T(locale.MsgStatSalesMonth), Value: raw.SalesThisMonth},
			{Key: "newUsersToday", Title: p.T(locale.MsgStatNewUsers), Value: decimal.NewFromInt(int64(raw.NewUsersToday))},
		},
	}

	for _, s := range OrderStatusCards(raw.OrderStatusCount) {
		out.OrderStatus = append(out.OrderStatus, dto.StatusCard{Status: s.Status, Count: s.Count})
	}

	out.Series = []dto.DailyPoint{}
	if view == ViewUsers {
		for _, d := range BucketUsers(raw.LatestUsers, cutoff, uc.opts.Location) {
			out.Series = append(out.Series, dailyPoint(d.Date, decimal.NewFromInt(int64(d.Count)), lang))
		}
	} else {
		for _, d := range BucketRevenue(raw.RevenueDaily, cutoff, uc.opts.Location) {
			out.Series = append(out.Series, dailyPoint(d.Date, d.Revenue, lang))
		}
	}

	out.LatestUsers = make([]dto.LatestUserRow, 0, len(raw.LatestUsers))
	for _, u := range raw.LatestUsers {
		row := dto.LatestUserRow{ID: u.ID, Email: u.Email}
		if !u.CreatedAt.IsZero() {
			row.CreatedAt = DayLabel(u.CreatedAt.In(uc.opts.Location).Format(dayLayout), false, lang)
		}
		out.LatestUsers = append(out.LatestUsers, row)
	}

	byRevenue := raw.TopProductsByRevenue
	if len(byRevenue) == 0 {
		byRevenue = placeholderRevenue
		out.Placeholders = append(out.Placeholders, DatasetTopRevenue)
	}
	byQty := raw.TopProductsByQty
	if len(byQty) == 0 {
		byQty = placeholderQty
		out.Placeholders = append(out.Placeholders, DatasetTopQty)
	}
	categories := raw.SalesByCategory
	if len(categories) == 0 {
		categories = placeholderCategories
		out.Placeholders = append(out.Placeholders, DatasetCategories)
	}

	revenueValues := make([]decimal.Decimal, len(byRevenue))
	for i, r := range byRevenue {
		out.TopProductsByRevenue = append(out.TopProductsByRevenue, dto.ProductRevenueRow{ID: r.ID, ProductName: r.ProductName, Revenue: r.Revenue})
		revenueValues[i] = r.Revenue
	}
	for i, pct := range percentages(revenueValues) {
		out.ProductRevenuePie = append(out.ProductRevenuePie, dto.PieSlice{Name: byRevenue[i].ProductName, Value: byRevenue[i].Revenue, Percent: pct})
	}

	for _, q := range byQty {
		out.TopProductsByQty = append(out.TopProductsByQty, dto.ProductQuantityRow{ID: q.ID, ProductName: q.ProductName, Qty: q.Qty})
	}

	categoryValues := make([]decimal.Decimal, len(categories))
	for i, c := range categories {
		categoryValues[i] = c.Total
	}
	for i, pct := range percentages(categoryValues) {
		out.SalesByCategory = append(out.SalesByCategory, dto.PieSlice{Name: categories[i].CategoryName, Value: categories[i].Total, Percent: pct})
	}

	return out
}

func dailyPoint(day string, v decimal.Decimal, lang language.Tag) dto.DailyPoint {
	return dto.DailyPoint{
		Date:      day,
		Label:     DayLabel(day, false, lang),
		FullLabel: DayLabel(day, true, lang),
		Value:     v,
	}
}
