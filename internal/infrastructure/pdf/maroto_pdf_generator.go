// Package pdf implementa la versión imprimible de una factura de venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  N° Factura + Fecha + Estado │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Tienda + Propietario + Teléfono + Dirección        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Producto | Cant | Precio | Total                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total / Pagado / Saldo                             │
//	│  PAGOS: Fecha | Monto | Nota                                 │
//	│  FOOTER: QR con número y saldo                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/stationery-api/internal/application/billing"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
)

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDue     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	shopName string
	printer  *message.Printer
}

// NewMarotoPDFGenerator construye el generador. shopName aparece en el encabezado.
func NewMarotoPDFGenerator(shopName string) *MarotoPDFGenerator {
	if shopName == "" {
		shopName = "Stationery Shop"
	}
	return &MarotoPDFGenerator{
		shopName: shopName,
		printer:  message.NewPrinter(language.English),
	}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	retailer *entity.Retailer,
	payments []*entity.Payment,
) ([]byte, error) {
	if invoice == nil {
		return nil, fmt.Errorf("pdf: factura nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.Number, true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(retailerRow(invoice, retailer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.lineRows(invoice.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(invoice))

	if len(payments) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(g.paymentRows(payments)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.footerRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) headerRow(invoice *entity.Invoice) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(g.shopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Wholesale stationery", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("Date: "+invoice.InvoiceDate.UTC().Format("2006-01-02"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New("Status: "+string(invoice.Status), props.Text{
				Size: 8, Align: align.Right, Top: 17, Color: colorGray,
			}),
		),
	)
}

// retailerRow usa el nombre guardado en la factura si el retailer ya no existe.
func retailerRow(invoice *entity.Invoice, retailer *entity.Retailer) core.Row {
	name := invoice.RetailerName
	contact := "-"
	if retailer != nil {
		name = retailer.ShopName
		contact = fmt.Sprintf("Owner: %s   |   Phone: %s   |   Address: %s",
			nonEmpty(retailer.OwnerName, "-"),
			nonEmpty(retailer.PhoneNumber, "-"),
			nonEmpty(retailer.Address, "-"),
		)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(contact, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Product", 5, align.Left),
		h("Qty", 1, align.Center),
		h("Price", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

func (g *MarotoPDFGenerator) lineRows(lines []entity.InvoiceLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for i, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(l.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.Itoa(l.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(g.money(l.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(g.money(l.Total), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func (g *MarotoPDFGenerator) totalsRow(invoice *entity.Invoice) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64, c *props.Color) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top, Color: c})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Total:", 1),
			label("Paid:", 7),
			label("Balance due:", 13),
		),
		col.New(3).Add(
			value(g.money(invoice.TotalAmount), 1, nil),
			value(g.money(invoice.PaidAmount), 7, nil),
			value(g.money(invoice.DueAmount), 13, colorDue),
		),
	)
}

func (g *MarotoPDFGenerator) paymentRows(payments []*entity.Payment) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(text.New("PAYMENTS", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))),
	}
	for _, p := range payments {
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(p.PaymentDate.UTC().Format("2006-01-02 15:04"), props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(g.money(p.Amount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 2})),
			col.New(6).Add(text.New(nonEmpty(p.Notes, "-"), props.Text{Size: 8, Top: 1, Color: colorGray})),
		))
	}
	return rows
}

func (g *MarotoPDFGenerator) footerRow(invoice *entity.Invoice) core.Row {
	qr := fmt.Sprintf("%s|%s|due=%s", invoice.Number, invoice.InvoiceDate.UTC().Format("2006-01-02"), invoice.DueAmount.StringFixed(2))
	return row.New(35).Add(
		col.New(3).Add(code.NewQr(qr, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New(nonEmpty(invoice.Notes, ""), props.Text{Size: 8, Top: 4, Left: 3, Color: colorGray}),
			text.New("Thank you for your business.", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 20, Left: 3, Color: colorPrimary,
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

// money formatea con separador de miles y dos decimales. Ej: 12500 → "12,500.00".
func (g *MarotoPDFGenerator) money(d decimal.Decimal) string {
	return g.printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}
