// Package pdf implementa el renderizado de la vista previa de una factura
// como documento PDF de página A4 vertical usando Maroto v2.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Logo + Empresa          │  N° Factura + Fechas     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: Cliente + contacto                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Cant | Precio Unit. | Subtotal        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL (con símbolo de moneda en su posición)               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAYMENT METHODS: label + detalles                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/invoice-maker/internal/application/usecase"
	"github.com/jhoicas/invoice-maker/internal/domain/entity"
)

var _ usecase.InvoicePDFRenderer = (*MarotoInvoiceRenderer)(nil)

// MarotoInvoiceRenderer implementa usecase.InvoicePDFRenderer usando Maroto v2.
type MarotoInvoiceRenderer struct{}

// NewMarotoInvoiceRenderer construye el renderizador.
func NewMarotoInvoiceRenderer() *MarotoInvoiceRenderer {
	return &MarotoInvoiceRenderer{}
}

// RenderInvoicePDF genera el PDF y devuelve sus bytes. El tema pasa por el
// shim de normalización de colores antes de dibujar.
func (r *MarotoInvoiceRenderer) RenderInvoicePDF(
	_ context.Context,
	inv *entity.Invoice,
	theme usecase.DocumentTheme,
) ([]byte, error) {
	pal := normalizeTheme(theme)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+inv.Number, true).
		WithAuthor(inv.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(inv, pal))
	m.AddRows(line.NewRow(1, props.Line{Color: pal.Accent, Thickness: 0.5}))
	m.AddRows(senderRow(inv, pal))
	m.AddRows(billToRow(inv, pal))
	m.AddRows(line.NewRow(1, props.Line{Color: pal.Border, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(pal))
	for _, itemRow := range tableItemRows(inv, pal) {
		m.AddRows(itemRow)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: pal.Border, Thickness: 0.3}))
	m.AddRows(totalRow(inv, pal))

	for _, pmRow := range paymentMethodRows(inv, pal) {
		m.AddRows(pmRow)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: logo + nombre de empresa (izq) y número + fechas + estado (der).
func headerRow(inv *entity.Invoice, pal palette) core.Row {
	left := col.New(7)
	textTop := 1.0

	if logoBytes, ext, ok := decodeLogo(inv.CompanyLogo); ok {
		left.Add(image.NewFromBytes(logoBytes, ext, props.Rect{Percent: 40}))
		textTop = 16
	}
	left.Add(
		text.New(nonEmpty(inv.CompanyName, "—"), props.Text{
			Style: fontstyle.Bold, Size: 13, Color: pal.Accent, Top: textTop,
		}),
		text.New(inv.CompanyAddress, props.Text{
			Size: 8, Top: textTop + 7, Color: pal.Text,
		}),
		text.New(inv.CompanyWebsite, props.Text{
			Size: 8, Top: textTop + 11, Color: pal.Text,
		}),
	)

	right := col.New(5).Add(
		text.New("INVOICE", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: pal.Accent, Top: 1,
		}),
		text.New(nonEmpty(inv.Number, "Draft"), props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			Color: pal.Text,
		}),
		text.New("Date: "+nonEmpty(inv.Date, "—"), props.Text{
			Size: 8, Align: align.Right, Top: 13, Color: pal.Text,
		}),
		text.New("Due: "+nonEmpty(inv.DueDate, "—"), props.Text{
			Size: 8, Align: align.Right, Top: 17, Color: pal.Text,
		}),
		text.New("Status: "+inv.Status, props.Text{
			Size: 8, Align: align.Right, Top: 21, Color: pal.Text,
		}),
	)

	return row.New(30).Add(left, right).WithStyle(&props.Cell{BackgroundColor: pal.Background})
}

// senderRow: contacto del emisor.
func senderRow(inv *entity.Invoice, pal palette) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("FROM", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: pal.Accent, Top: 1,
			}),
			text.New(contactLine(inv.CompanyContact), props.Text{
				Size: 8, Top: 6, Color: pal.Text,
			}),
		),
	)
}

// billToRow: datos del receptor.
func billToRow(inv *entity.Invoice, pal palette) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: pal.Accent, Top: 1,
			}),
			text.New(nonEmpty(inv.ClientName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6, Color: pal.Text,
			}),
			text.New(inv.ClientAddress, props.Text{
				Size: 8, Top: 11, Color: pal.Text,
			}),
			text.New(contactLine(inv.ClientContact), props.Text{
				Size: 8, Top: 15, Color: pal.Text,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow(pal palette) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: pal.Accent, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Description", 6, align.Left),
		h("Qty", 2, align.Center),
		h("Unit Price", 2, align.Right),
		h("Amount", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: pal.Background, BorderColor: pal.Border, BorderType: border.Bottom})
}

// tableItemRows: una fila por línea, con su subtotal derivado.
func tableItemRows(inv *entity.Invoice, pal palette) []core.Row {
	result := make([]core.Row, 0, len(inv.Items))
	for _, it := range inv.Items {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: pal.Text},
			)),
			col.New(2).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: pal.Text},
			)),
			col.New(2).Add(text.New(
				inv.FormatAmount(it.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: pal.Text},
			)),
			col.New(2).Add(text.New(
				inv.FormatAmount(it.Subtotal()),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: pal.Text},
			)),
		))
	}
	return result
}

// totalRow: total general alineado a la derecha.
func totalRow(inv *entity.Invoice, pal palette) core.Row {
	return row.New(12).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: pal.Accent, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New(inv.FormatAmount(inv.Total()), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: pal.Accent, Top: 2, Right: 1,
		})),
	)
}

// paymentMethodRows: bloque de instrucciones de pago al pie, si existen.
func paymentMethodRows(inv *entity.Invoice, pal palette) []core.Row {
	if len(inv.PaymentMethods) == 0 {
		return nil
	}
	rows := []core.Row{
		row.New(4),
		row.New(6).Add(col.New(12).Add(
			text.New("PAYMENT METHODS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: pal.Accent, Top: 1,
			}),
		)),
	}
	for _, pm := range inv.PaymentMethods {
		rows = append(rows, row.New(9).Add(col.New(12).Add(
			text.New(nonEmpty(pm.Label, "—"), props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Color: pal.Text,
			}),
			text.New(pm.Details, props.Text{
				Size: 8, Top: 5, Color: pal.Text,
			}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// decodeLogo decodifica un data URL de imagen. Solo PNG y JPEG llegan al
// documento; cualquier otro contenido se omite en silencio.
func decodeLogo(dataURL string) ([]byte, extension.Type, bool) {
	if dataURL == "" {
		return nil, "", false
	}
	idx := strings.Index(dataURL, ";base64,")
	if !strings.HasPrefix(dataURL, "data:") || idx < 0 {
		return nil, "", false
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[idx+len(";base64,"):])
	if err != nil {
		return nil, "", false
	}
	switch dataURL[len("data:"):idx] {
	case "image/png":
		return raw, extension.Png, true
	case "image/jpeg", "image/jpg":
		return raw, extension.Jpg, true
	default:
		return nil, "", false
	}
}

func contactLine(c *entity.ContactInfo) string {
	if c == nil {
		return ""
	}
	parts := make([]string, 0, 3)
	for _, s := range []string{c.Name, c.Phone, c.Email} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "   |   ")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
