package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/backoffice-admin/internal/application/analytics"
	"github.com/jhoicas/backoffice-admin/internal/application/notify"
	"github.com/jhoicas/backoffice-admin/internal/domain"
	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
	"github.com/jhoicas/backoffice-admin/internal/domain/repository/mocks"
	"github.com/jhoicas/backoffice-admin/pkg/locale"
)

var bangkok = time.FixedZone("ICT", 7*60*60)

func at(s string) entity.Moment {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return entity.Moment{Time: t}
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// ──────────────────────────────────────────────────────────────────────────────
// Agrupación diaria
// ──────────────────────────────────────────────────────────────────────────────

func TestBucketRevenue_SumaRegistrosDelMismoDia(t *testing.T) {
	items := []entity.DailyRevenue{
		{At: at("2024-01-01T10:00:00Z"), Total: dec(100)},
		{At: at("2024-01-01T15:00:00Z"), Total: dec(50)},
	}

	got := analytics.BucketRevenue(items, time.Time{}, bangkok)

	require.Len(t, got, 1)
	assert.Equal(t, "2024-01-01", got[0].Date)
	assert.True(t, got[0].Revenue.Equal(dec(150)))
}

func TestBucketRevenue_UsaElDiaDeLaZonaFijaYOrdenaAscendente(t *testing.T) {
	items := []entity.DailyRevenue{
		{At: at("2024-01-03T01:00:00Z"), Total: dec(7)},
		// 20:00Z es 03:00 del día siguiente en Bangkok.
		{At: at("2024-01-01T20:00:00Z"), Total: dec(5)},
		{At: at("2024-01-01T09:00:00Z"), Total: dec(1)},
	}

	got := analytics.BucketRevenue(items, time.Time{}, bangkok)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03"}, []string{got[0].Date, got[1].Date, got[2].Date})
	assert.True(t, got[1].Revenue.Equal(dec(5)))
}

func TestBucketRevenue_DescartaAnterioresAlCorteYSinFecha(t *testing.T) {
	cutoff := time.Date(2024, 1, 2, 0, 0, 0, 0, bangkok)
	items := []entity.DailyRevenue{
		{At: at("2024-01-01T10:00:00Z"), Total: dec(100)},
		{At: at("2024-01-01T17:00:00Z"), Total: dec(40)}, // exactamente el corte
		{Total: dec(999)},
	}

	got := analytics.BucketRevenue(items, cutoff, bangkok)

	require.Len(t, got, 1)
	assert.Equal(t, "2024-01-02", got[0].Date)
	assert.True(t, got[0].Revenue.Equal(dec(40)))
}

func TestBucketRevenue_SinDatosDevuelveSerieVacia(t *testing.T) {
	got := analytics.BucketRevenue(nil, time.Time{}, bangkok)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBucketUsers_CuentaAltasPorDia(t *testing.T) {
	users := []entity.LatestUser{
		{ID: "u1", CreatedAt: at("2024-02-01T02:00:00Z")},
		{ID: "u2", CreatedAt: at("2024-02-01T12:00:00Z")},
		{ID: "u3", CreatedAt: at("2024-02-03T02:00:00Z")},
	}

	got := analytics.BucketUsers(users, time.Time{}, bangkok)

	assert.Equal(t, []analytics.CountDay{
		{Date: "2024-02-01", Count: 2},
		{Date: "2024-02-03", Count: 1},
	}, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Corte por rango
// ──────────────────────────────────────────────────────────────────────────────

func TestCutoff_Rangos(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		tag  string
		want time.Time
	}{
		{"7 días incluye hoy", time.Date(2024, 5, 10, 15, 0, 0, 0, bangkok), "7d", time.Date(2024, 5, 4, 0, 0, 0, 0, bangkok)},
		{"7 días con now en UTC del día anterior", time.Date(2024, 5, 9, 20, 0, 0, 0, time.UTC), "7d", time.Date(2024, 5, 4, 0, 0, 0, 0, bangkok)},
		{"1 mes", time.Date(2024, 5, 10, 8, 0, 0, 0, bangkok), "1m", time.Date(2024, 4, 10, 0, 0, 0, 0, bangkok)},
		{"1 mes ajusta al fin de febrero", time.Date(2024, 3, 31, 8, 0, 0, 0, bangkok), "1m", time.Date(2024, 2, 29, 0, 0, 0, 0, bangkok)},
		{"3 meses cruza el año", time.Date(2024, 1, 15, 8, 0, 0, 0, bangkok), "3m", time.Date(2023, 10, 15, 0, 0, 0, 0, bangkok)},
		{"3 meses ajusta a 30 días", time.Date(2024, 7, 31, 8, 0, 0, 0, bangkok), "3m", time.Date(2024, 4, 30, 0, 0, 0, 0, bangkok)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := analytics.Cutoff(tt.now, tt.tag, bangkok)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestCutoff_RangoDesconocido(t *testing.T) {
	_, err := analytics.Cutoff(time.Now(), "1y", bangkok)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estados y etiquetas
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderStatusCards_CompletaLosCuatroEnOrdenFijo(t *testing.T) {
	got := analytics.OrderStatusCards([]entity.StatusCount{{Status: "จัดส่งแล้ว", Count: 5}})

	assert.Equal(t, []entity.StatusCount{
		{Status: "รอจัดส่ง", Count: 0},
		{Status: "อยู่ระหว่างจัดส่ง", Count: 0},
		{Status: "จัดส่งแล้ว", Count: 5},
		{Status: "ยกเลิก", Count: 0},
	}, got)
}

func TestOrderStatusCards_IgnoraEstadosDesconocidos(t *testing.T) {
	got := analytics.OrderStatusCards([]entity.StatusCount{
		{Status: "ยกเลิก", Count: 2},
		{Status: "คืนสินค้า", Count: 9},
		{Status: "รอจัดส่ง", Count: 3},
	})

	require.Len(t, got, 4)
	assert.Equal(t, "รอจัดส่ง", got[0].Status)
	assert.Equal(t, 3, got[0].Count)
	assert.Equal(t, 2, got[3].Count)
}

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "1 ม.ค. 2567", analytics.DayLabel("2024-01-01", false, language.Thai))
	assert.Equal(t, "29 กุมภาพันธ์ 2567", analytics.DayLabel("2024-02-29", true, language.Thai))
	assert.Equal(t, "1 Jan 2024", analytics.DayLabel("2024-01-01", false, language.English))
	assert.Equal(t, "31 December 2023", analytics.DayLabel("2023-12-31", true, language.English))
	assert.Equal(t, "no-es-fecha", analytics.DayLabel("no-es-fecha", false, language.Thai))
}

// ──────────────────────────────────────────────────────────────────────────────
// Overview
// ──────────────────────────────────────────────────────────────────────────────

func newDashboard(repo *mocks.DashboardRepository, lang string) *analytics.DashboardUseCase {
	return analytics.NewDashboardUseCase(repo, analytics.DashboardOptions{
		Location:     bangkok,
		DefaultRange: "3m",
		Printer:      locale.New(lang),
		Now:          func() time.Time { return time.Date(2024, 1, 5, 12, 0, 0, 0, bangkok) },
	})
}

func sampleOverview() *entity.DashboardOverview {
	return &entity.DashboardOverview{
		SalesToday:       dec(1200),
		SalesThisMonth:   dec(54000),
		NewUsersToday:    3,
		OrderStatusCount: []entity.StatusCount{{Status: "จัดส่งแล้ว", Count: 5}},
		LatestUsers: []entity.LatestUser{
			{ID: "u1", Email: "a@x.th", CreatedAt: at("2024-01-04T03:00:00Z")},
			{ID: "u2", Email: "b@x.th", CreatedAt: at("2023-12-01T03:00:00Z")},
		},
		RevenueDaily: []entity.DailyRevenue{
			{At: at("2023-12-20T10:00:00Z"), Total: dec(999)},
			{At: at("2024-01-01T10:00:00Z"), Total: dec(100)},
			{At: at("2024-01-01T15:00:00Z"), Total: dec(50)},
		},
		TopProductsByRevenue: []entity.ProductRevenue{
			{ID: "p1", ProductName: "Sofa", Revenue: dec(300)},
			{ID: "p2", ProductName: "Lamp", Revenue: dec(100)},
		},
	}
}

func TestOverview_ArmaVistaDeIngresos(t *testing.T) {
	repo := new(mocks.DashboardRepository)
	repo.On("Overview", mock.Anything, "7d").Return(sampleOverview(), nil)
	uc := newDashboard(repo, "th")

	view, n, err := uc.Overview(context.Background(), "7d", "")

	require.NoError(t, err)
	assert.True(t, n.IsZero())
	require.NotNil(t, view)
	assert.Equal(t, "7d", view.Range)
	assert.Equal(t, "revenue", view.View)

	require.Len(t, view.Series, 1)
	assert.Equal(t, "2024-01-01", view.Series[0].Date)
	assert.Equal(t, "1 ม.ค. 2567", view.Series[0].Label)
	assert.Equal(t, "1 มกราคม 2567", view.Series[0].FullLabel)
	assert.True(t, view.Series[0].Value.Equal(dec(150)))

	require.Len(t, view.Stats, 3)
	assert.Equal(t, "ยอดขายวันนี้", view.Stats[0].Title)
	assert.True(t, view.Stats[2].Value.Equal(dec(3)))

	require.Len(t, view.OrderStatus, 4)
	assert.Equal(t, 5, view.OrderStatus[2].Count)

	require.Len(t, view.ProductRevenuePie, 2)
	assert.Equal(t, int64(75), view.ProductRevenuePie[0].Percent)
	assert.Equal(t, int64(25), view.ProductRevenuePie[1].Percent)

	assert.Equal(t, []string{analytics.DatasetTopQty, analytics.DatasetCategories}, view.Placeholders)
	require.Len(t, view.LatestUsers, 2)
	assert.Equal(t, "4 ม.ค. 2567", view.LatestUsers[0].CreatedAt)
	repo.AssertExpectations(t)
}

func TestOverview_VistaDeUsuariosFiltraPorRango(t *testing.T) {
	repo := new(mocks.DashboardRepository)
	repo.On("Overview", mock.Anything, "7d").Return(sampleOverview(), nil)
	uc := newDashboard(repo, "en")

	view, _, err := uc.Overview(context.Background(), "7d", "users")

	require.NoError(t, err)
	require.Len(t, view.Series, 1)
	assert.Equal(t, "2024-01-04", view.Series[0].Date)
	assert.Equal(t, "4 Jan 2024", view.Series[0].Label)
	assert.True(t, view.Series[0].Value.Equal(dec(1)))
}

func TestOverview_DatosIlustrativosCuandoLlegaVacio(t *testing.T) {
	repo := new(mocks.DashboardRepository)
	repo.On("Overview", mock.Anything, "3m").Return(&entity.DashboardOverview{}, nil)
	uc := newDashboard(repo, "th")

	view, _, err := uc.Overview(context.Background(), "", "")

	require.NoError(t, err)
	assert.Equal(t, "3m", view.Range)
	assert.Empty(t, view.Series)
	assert.Len(t, view.Placeholders, 3)

	require.Len(t, view.TopProductsByRevenue, 3)
	assert.Equal(t, "สินค้ากลุ่ม A", view.TopProductsByRevenue[0].ProductName)
	assert.True(t, view.TopProductsByRevenue[0].Revenue.Equal(dec(15000)))
	require.Len(t, view.TopProductsByQty, 3)
	assert.True(t, view.TopProductsByQty[2].Qty.Equal(dec(90)))

	require.Len(t, view.SalesByCategory, 3)
	assert.Equal(t, "หมวดหมู่ A", view.SalesByCategory[0].Name)
	assert.Equal(t, []int64{44, 33, 22}, []int64{
		view.SalesByCategory[0].Percent, view.SalesByCategory[1].Percent, view.SalesByCategory[2].Percent,
	})

	// los cuatro estados aparecen aunque el backend no envíe ninguno
	require.Len(t, view.OrderStatus, 4)
	for _, s := range view.OrderStatus {
		assert.Zero(t, s.Count)
	}
}

func TestOverview_PorcentajeCeroConTotalCero(t *testing.T) {
	repo := new(mocks.DashboardRepository)
	repo.On("Overview", mock.Anything, "1m").Return(&entity.DashboardOverview{
		SalesByCategory: []entity.CategorySales{{ID: "c1", CategoryName: "Sofa", Total: decimal.Zero}},
	}, nil)
	uc := newDashboard(repo, "en")

	view, _, err := uc.Overview(context.Background(), "1m", "")

	require.NoError(t, err)
	require.Len(t, view.SalesByCategory, 1)
	assert.Zero(t, view.SalesByCategory[0].Percent)
}

func TestOverview_FalloDelBackendDevuelveAviso(t *testing.T) {
	repo := new(mocks.DashboardRepository)
	repo.On("Overview", mock.Anything, "7d").Return(nil, errors.New("connection refused"))
	uc := newDashboard(repo, "en")

	view, n, err := uc.Overview(context.Background(), "7d", "")

	require.NoError(t, err)
	assert.Nil(t, view)
	assert.Equal(t, notify.LevelError, n.Level)
	assert.Equal(t, "Failed to load data", n.Message)
}

func TestOverview_ParametrosInvalidos(t *testing.T) {
	repo := new(mocks.DashboardRepository)
	uc := newDashboard(repo, "en")

	_, _, err := uc.Overview(context.Background(), "2w", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = uc.Overview(context.Background(), "7d", "orders")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	repo.AssertNotCalled(t, "Overview", mock.Anything, mock.Anything)
}
