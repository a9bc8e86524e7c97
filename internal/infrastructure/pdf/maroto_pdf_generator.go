// Package pdf genera la hoja imprimible de un lote de productos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del lote + código  │  QR del código + fecha │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Descripción / Etiquetas                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | SKU | Producto | Color | Cantidad                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: productos / cantidad                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	"github.com/jhoicas/backoffice-admin/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

const (
	defaultFamily = "helvetica"
	customFamily  = "sheet"
)

// Labels textos fijos de la hoja.
type Labels struct {
	Title       string
	Date        string
	Description string
	Tags        string
	SKU         string
	Product     string
	Color       string
	Quantity    string
	Totals      string
}

// ThaiLabels etiquetas por defecto (requieren una fuente TTF con glifos tailandeses).
var ThaiLabels = Labels{
	Title:       "ใบรายการล็อตสินค้า",
	Date:        "วันที่",
	Description: "รายละเอียด",
	Tags:        "แท็ก",
	SKU:         "SKU",
	Product:     "สินค้า",
	Color:       "สี",
	Quantity:    "จำนวน",
	Totals:      "รวม %d รายการ / %d ชิ้น",
}

// EnglishLabels se usan cuando no hay fuente TTF: helvetica no tiene glifos tailandeses.
var EnglishLabels = Labels{
	Title:       "Product batch sheet",
	Date:        "Date",
	Description: "Description",
	Tags:        "Tags",
	SKU:         "SKU",
	Product:     "Product",
	Color:       "Color",
	Quantity:    "Qty",
	Totals:      "Total %d lines / %d units",
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.BatchSheetGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa ports.BatchSheetGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	fontPath string
	labels   Labels
}

// NewMarotoPDFGenerator construye el generador. fontPath (TTF) es opcional;
// sin fuente se usa helvetica con etiquetas en inglés.
func NewMarotoPDFGenerator(fontPath string) *MarotoPDFGenerator {
	g := &MarotoPDFGenerator{fontPath: fontPath, labels: EnglishLabels}
	if fontPath != "" {
		g.labels = ThaiLabels
	}
	return g
}

// GenerateBatchSheet genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateBatchSheet(sheet ports.BatchSheet) ([]byte, error) {
	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithTitle(g.labels.Title+" "+sheet.BatchCode, true)

	family := defaultFamily
	if g.fontPath != "" {
		fonts, err := repository.New().
			AddUTF8Font(customFamily, fontstyle.Normal, g.fontPath).
			AddUTF8Font(customFamily, fontstyle.Bold, g.fontPath).
			Load()
		if err != nil {
			return nil, fmt.Errorf("pdf: cargar fuente %s: %w", g.fontPath, err)
		}
		builder = builder.WithCustomFonts(fonts)
		family = customFamily
	}
	builder = builder.WithDefaultFont(&props.Font{Family: family, Size: 9})

	m := maroto.New(builder.Build())

	m.AddRows(g.headerRow(sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.detailRows(sheet)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(g.tableHeaderRow())
	m.AddRows(g.tableRows(sheet.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(sheet))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre + código (izq), QR del código + fecha (der).
func (g *MarotoPDFGenerator) headerRow(sheet ports.BatchSheet) core.Row {
	date := "—"
	if !sheet.CreatedAt.IsZero() {
		date = sheet.CreatedAt.Format("02/01/2006")
	}
	right := col.New(2)
	if sheet.BatchCode != "" {
		right = col.New(2).Add(code.NewQr(sheet.BatchCode, props.Rect{Percent: 90, Center: true}))
	}
	return row.New(24).Add(
		col.New(7).Add(
			text.New(g.labels.Title, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(sheet.BatchName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 7,
			}),
			text.New(sheet.BatchCode, props.Text{
				Size: 9, Top: 15, Color: colorGray,
			}),
		),
		col.New(3).Add(
			text.New(g.labels.Date+": "+date, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
		right,
	)
}

// detailRows: descripción y etiquetas, omitidas si están vacías.
func (g *MarotoPDFGenerator) detailRows(sheet ports.BatchSheet) []core.Row {
	var rows []core.Row
	if sheet.Description != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New(g.labels.Description+": "+sheet.Description, props.Text{Size: 8, Top: 2}),
		)))
	}
	if len(sheet.Tags) > 0 {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New(g.labels.Tags+": "+strings.Join(sheet.Tags, ", "), props.Text{Size: 8, Top: 1, Color: colorGray}),
		)))
	}
	if len(rows) == 0 {
		rows = append(rows, row.New(2))
	}
	return rows
}

func (g *MarotoPDFGenerator) tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h(g.labels.SKU, 2, align.Left),
		h(g.labels.Product, 5, align.Left),
		h(g.labels.Color, 2, align.Left),
		h(g.labels.Quantity, 2, align.Right),
	)
}

// tableRows: una fila por línea, con fondo alterno.
func (g *MarotoPDFGenerator) tableRows(lines []ports.BatchSheetLine) []core.Row {
	out := make([]core.Row, 0, len(lines))
	for i, l := range lines {
		r := row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(nonEmpty(l.SKU, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(nonEmpty(l.ProductName, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(l.ColorName, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.Itoa(l.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		out = append(out, r)
	}
	return out
}

func (g *MarotoPDFGenerator) totalsRow(sheet ports.BatchSheet) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(6).Add(text.New(
			fmt.Sprintf(g.labels.Totals, sheet.TotalProducts, sheet.TotalQuantity),
			props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1},
		)),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
