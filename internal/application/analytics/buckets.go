package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-admin/internal/domain"
	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
)

// Etiquetas de rango aceptadas por el backend.
const (
	Range7Days   = "7d"
	Range1Month  = "1m"
	Range3Months = "3m"
)

// dayLayout clave de un día calendario.
const dayLayout = "2006-01-02"

// ValidRange indica si tag es un rango conocido.
func ValidRange(tag string) bool {
	switch tag {
	case Range7Days, Range1Month, Range3Months:
		return true
	}
	return false
}

// Cutoff inicio (inclusive) del rango tag respecto de now en loc: 7d es hoy
// menos 6 días; 1m y 3m restan meses calendario (el día se ajusta al último
// del mes si no existe, ej. 31 mar − 1 mes = 29 feb).
func Cutoff(now time.Time, tag string, loc *time.Location) (time.Time, error) {
	n := now.In(loc)
	today := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
	switch tag {
	case Range7Days:
		return today.AddDate(0, 0, -6), nil
	case Range1Month:
		return subMonths(today, 1), nil
	case Range3Months:
		return subMonths(today, 3), nil
	}
	return time.Time{}, fmt.Errorf("rango %q: %w", tag, domain.ErrInvalidInput)
}

func subMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, -months, 0)
	lastDay := first.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

// RevenueDay ingresos de un día.
type RevenueDay struct {
	Date    string
	Revenue decimal.Decimal
}

// CountDay altas de un día.
type CountDay struct {
	Date  string
	Count int
}

// BucketRevenue agrupa por día calendario en loc los registros en o después
// de cutoff, suma los totales y ordena ascendente por fecha. Los registros
// sin fecha se descartan.
func BucketRevenue(items []entity.DailyRevenue, cutoff time.Time, loc *time.Location) []RevenueDay {
	sums := map[string]decimal.Decimal{}
	for _, it := range items {
		if it.At.IsZero() || it.At.Before(cutoff) {
			continue
		}
		key := it.At.In(loc).Format(dayLayout)
		sums[key] = sums[key].Add(it.Total)
	}
	out := make([]RevenueDay, 0, len(sums))
	for day, total := range sums {
		out = append(out, RevenueDay{Date: day, Revenue: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// BucketUsers cuenta altas de usuario por día calendario con las mismas reglas que BucketRevenue.
func BucketUsers(users []entity.LatestUser, cutoff time.Time, loc *time.Location) []CountDay {
	counts := map[string]int{}
	for _, u := range users {
		if u.CreatedAt.IsZero() || u.CreatedAt.Before(cutoff) {
			continue
		}
		counts[u.CreatedAt.In(loc).Format(dayLayout)]++
	}
	out := make([]CountDay, 0, len(counts))
	for day, n := range counts {
		out = append(out, CountDay{Date: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Estados de orden en su orden de prioridad fijo.
var OrderStatuses = []string{"รอจัดส่ง", "อยู่ระหว่างจัดส่ง", "จัดส่งแล้ว", "ยกเลิก"}

// OrderStatusCards devuelve siempre los cuatro estados en orden fijo; los
// ausentes valen 0 y los desconocidos se ignoran.
func OrderStatusCards(counts []entity.StatusCount) []entity.StatusCount {
	byStatus := make(map[string]int, len(counts))
	for _, c := range counts {
		byStatus[c.Status] += c.Count
	}
	out := make([]entity.StatusCount, len(OrderStatuses))
	for i, s := range OrderStatuses {
		out[i] = entity.StatusCount{Status: s, Count: byStatus[s]}
	}
	return out
}

// Datos ilustrativos para gráficos cuyo dataset llegó vacío.
var (
	placeholderRevenue = []entity.ProductRevenue{
		{ID: "1", ProductName: "สินค้ากลุ่ม A", Revenue: decimal.NewFromInt(15000)},
		{ID: "2", ProductName: "สินค้ากลุ่ม B", Revenue: decimal.NewFromInt(12000)},
		{ID: "3", ProductName: "สินค้ากลุ่ม C", Revenue: decimal.NewFromInt(9000)},
	}
	placeholderQty = []entity.ProductQuantity{
		{ID: "1", ProductName: "สินค้ากลุ่ม A", Qty: decimal.NewFromInt(150)},
		{ID: "2", ProductName: "สินค้ากลุ่ม B", Qty: decimal.NewFromInt(120)},
		{ID: "3", ProductName: "สินค้ากลุ่ม C", Qty: decimal.NewFromInt(90)},
	}
	placeholderCategories = []entity.CategorySales{
		{ID: "1", CategoryName: "หมวดหมู่ A", Total: decimal.NewFromInt(20000)},
		{ID: "2", CategoryName: "หมวดหมู่ B", Total: decimal.NewFromInt(15000)},
		{ID: "3", CategoryName: "หมวดหมู่ C", Total: decimal.NewFromInt(10000)},
	}
)

var hundred = decimal.NewFromInt(100)

// percentages porcentaje entero de cada valor sobre el total (0 si el total es 0).
func percentages(values []decimal.Decimal) []int64 {
	total := decimal.Sum(decimal.Zero, values...)
	out := make([]int64, len(values))
	if total.IsZero() {
		return out
	}
	for i, v := range values {
		out[i] = v.Div(total).Mul(hundred).Round(0).IntPart()
	}
	return out
}
