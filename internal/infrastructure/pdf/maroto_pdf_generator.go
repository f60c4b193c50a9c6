// Package pdf genera la representación gráfica de los documentos confirmados.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tipo de documento      │  N° + Fecha               │
//	│  CLIENTE: Nombre + CUIT/DNI                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Desc. | IVA% | Importe │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESGLOSE por alícuota  │  TOTALES / Anticipo / Saldo       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de verificación + leyenda                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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
	"github.com/shopspring/decimal"

	appbilling "github.com/jhoicas/Documentos-api/internal/application/billing"
	"github.com/jhoicas/Documentos-api/internal/domain/entity"
	"github.com/jhoicas/Documentos-api/internal/domain/pricing"
	"github.com/jhoicas/Documentos-api/pkg/numfmt"
)

var _ appbilling.DocumentPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var kindTitles = map[string]string{
	entity.DocumentKindInvoice:    "FACTURA",
	entity.DocumentKindQuote:      "PRESUPUESTO",
	entity.DocumentKindOrder:      "PEDIDO",
	entity.DocumentKindCreditNote: "NOTA DE CRÉDITO",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.DocumentPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	issuer string // nombre que figura como autor del PDF
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(issuer string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{issuer: issuer}
}

// GenerateDocumentPDF genera el PDF con los importes guardados y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDocumentPDF(
	_ context.Context,
	doc *entity.Document,
	lines []*entity.DocumentLine,
	buckets []*entity.DocumentTaxBucket,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title(doc)+" "+doc.Number, true).
		WithAuthor(g.issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableLineRows(lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRows(doc, buckets)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(doc))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func title(doc *entity.Document) string {
	if t, ok := kindTitles[doc.Kind]; ok {
		return t
	}
	return "DOCUMENTO"
}

// headerRow: tipo de documento (izq) y número + fecha (der).
func headerRow(doc *entity.Document) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(title(doc), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(pricingModeLegend(doc.PricingMode), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(doc.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+doc.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func pricingModeLegend(mode string) string {
	if pricing.ParsePricingMode(mode) == pricing.TaxIncluded {
		return "Precios con IVA incluido"
	}
	return "Precios sin IVA"
}

// customerRow: datos del cliente.
func customerRow(doc *entity.Document) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("CUIT/DNI: "+nonEmpty(doc.CustomerTaxID, numfmt.Placeholder), props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 4, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Desc.", 2, align.Right),
		h("IVA%", 1, align.Center),
		h("Importe", 2, align.Right),
	)
}

// tableLineRows: una fila por línea. El importe es el neto antes del descuento
// global, como se cargó la línea.
func tableLineRows(lines []*entity.DocumentLine) []core.Row {
	cell := func(s string, a align.Type) core.Component {
		return text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1})
	}
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		desc := l.Description
		if desc == "" {
			desc = l.ArticleID
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(cell(formatQuantity(l.Quantity), align.Center)),
			col.New(4).Add(cell(desc, align.Left)),
			col.New(2).Add(cell(numfmt.FormatCurrency(l.UnitPrice), align.Right)),
			col.New(2).Add(cell(discountLabel(l), align.Right)),
			col.New(1).Add(cell(numfmt.FormatDecimal(l.TaxRate, 1), align.Center)),
			col.New(2).Add(cell(numfmt.FormatCurrency(l.NetBeforeGlobal), align.Right)),
		))
	}
	return result
}

func discountLabel(l *entity.DocumentLine) string {
	if l.DiscountAmount.IsZero() {
		return numfmt.Placeholder
	}
	if l.DiscountMode == string(pricing.DiscountAmount) {
		return numfmt.FormatCurrency(l.DiscountAmount)
	}
	return numfmt.FormatPercent(l.DiscountPercent, 2)
}

// formatQuantity muestra enteros sin decimales y fracciones con hasta 4.
func formatQuantity(q decimal.Decimal) string {
	if q.Equal(q.Truncate(0)) {
		return numfmt.FormatDecimal(q, 0)
	}
	return numfmt.FormatDecimal(q, pricing.InternalPlaces)
}

// summaryRows: desglose por alícuota a la izquierda y totales a la derecha.
func summaryRows(doc *entity.Document, buckets []*entity.DocumentTaxBucket) []core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grand := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1})
	}

	type entry struct {
		label string
		value string
	}
	entries := []entry{
		{"Subtotal:", numfmt.FormatCurrency(doc.NetLinesSubtotal)},
	}
	if !doc.GlobalDiscountAmount.IsZero() {
		entries = append(entries, entry{
			fmt.Sprintf("Descuento (%s):", numfmt.FormatPercent(doc.GlobalDiscountPercent, 2)),
			"-" + numfmt.FormatCurrency(doc.GlobalDiscountAmount),
		})
	}
	entries = append(entries,
		entry{"Neto gravado:", numfmt.FormatCurrency(doc.NetTotal)},
		entry{"IVA:", numfmt.FormatCurrency(doc.TaxTotal)},
	)

	rows := []core.Row{row.New(6).Add(
		col.New(6).Add(text.New("DESGLOSE DE IVA", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		})),
		col.New(6),
	)}

	n := len(entries)
	if len(buckets) > n {
		n = len(buckets)
	}
	for i := 0; i < n; i++ {
		left := col.New(6)
		if i < len(buckets) {
			b := buckets[i]
			left = col.New(6).Add(text.New(
				fmt.Sprintf("%s   base %s   IVA %s",
					numfmt.FormatPercent(b.Rate, 2), numfmt.FormatCurrency(b.Base), numfmt.FormatCurrency(b.Tax)),
				props.Text{Size: 8, Color: colorGray, Top: 1},
			))
		}
		right := []core.Col{col.New(3), col.New(3)}
		if i < len(entries) {
			right = []core.Col{col.New(3).Add(label(entries[i].label)), col.New(3).Add(value(entries[i].value))}
		}
		rows = append(rows, row.New(5).Add(append([]core.Col{left}, right...)...))
	}

	rows = append(rows, row.New(7).Add(
		col.New(6),
		col.New(3).Add(label("TOTAL:")),
		col.New(3).Add(grand(numfmt.FormatCurrency(doc.GrandTotal))),
	))
	if doc.Advance.IsPositive() {
		rows = append(rows,
			row.New(5).Add(col.New(6), col.New(3).Add(label("Anticipo:")), col.New(3).Add(value("-"+numfmt.FormatCurrency(doc.Advance)))),
			row.New(6).Add(col.New(6), col.New(3).Add(label("SALDO:")), col.New(3).Add(grand(numfmt.FormatCurrency(doc.BalanceDue)))),
		)
	}
	return rows
}

// footerRow: QR con número, total e ID para verificar el documento contra el sistema.
func footerRow(doc *entity.Document) core.Row {
	qr := fmt.Sprintf("%s|%s|%s|%s", doc.Kind, doc.Number, doc.GrandTotal.StringFixed(2), doc.ID)
	return row.New(35).Add(
		col.New(3).Add(code.NewQr(qr, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Documento "+doc.Number, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 4, Left: 3, Color: colorPrimary,
			}),
			text.New("ID: "+doc.ID, props.Text{Size: 7, Top: 10, Left: 3, Color: colorGray}),
			text.New("Importes expresados en pesos. Conserve este documento como comprobante.", props.Text{
				Size: 7, Top: 16, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
