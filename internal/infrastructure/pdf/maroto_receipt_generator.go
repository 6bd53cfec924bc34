// Package pdf genera la nota de pedido en PDF con Maroto v2.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────┐
//	│  NOTA PEMESANAN ONLINE SHOP  │  Tanggal    │
//	│  ───────────────────────────────────────  │
//	│  CUSTOMER: Nama / Alamat / Nomor          │
//	│  ───────────────────────────────────────  │
//	│  TABLA: Barang | Jumlah | Harga | Subtotal │
//	│  ───────────────────────────────────────  │
//	│  TOTALES: Subtotal / Diskon / Pajak / Total│
//	│  Terima kasih ...                          │
//	└───────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/jhoicas/online-shop-nota/internal/application/dto"
	"github.com/jhoicas/online-shop-nota/internal/application/receipt"
	"github.com/jhoicas/online-shop-nota/internal/domain/pricing"
	"github.com/jhoicas/online-shop-nota/pkg/money"
)

var (
	colorPrimary = &props.Color{Red: 122, Green: 62, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator implementa receipt.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, r dto.Receipt) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Nota Pemesanan "+r.CustomerName, true).
		WithAuthor("Online Shop", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow(), itemRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(r))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(r dto.Receipt) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("NOTA PEMESANAN ONLINE SHOP", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Tanggal", props.Text{
				Size: 7, Align: align.Right, Color: colorGray, Top: 1,
			}),
			text.New(r.Date.Format(receipt.DateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 6,
			}),
		),
	)
}

func customerRow(r dto.Receipt) core.Row {
	return row.New(18).Add(
		col.New(12).Add(
			text.New("CUSTOMER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(r.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Alamat: %s   |   Nomor: %s", r.CustomerAddress, r.CustomerPhone),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Barang", 5, align.Left),
		h("Jumlah", 2, align.Center),
		h("Harga Satuan", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func itemRow(r dto.Receipt) core.Row {
	return row.New(7).Add(
		col.New(5).Add(text.New(r.ItemName, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(fmt.Sprint(r.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(money.Rupiah(r.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(3).Add(text.New(money.Rupiah(r.Subtotal), props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

// totalsRow: las mismas cifras que la nota de texto, alineadas a la derecha.
func totalsRow(r dto.Receipt) core.Row {
	labels := []string{
		"Subtotal:",
		fmt.Sprintf("Diskon (%d%%):", pricing.DiscountPercent),
		fmt.Sprintf("Pajak (%d%%):", pricing.TaxPercent),
		"Total Bayar:",
	}
	values := []string{
		money.Rupiah(r.Subtotal),
		money.Rupiah(r.Discount),
		money.Rupiah(r.Tax),
		money.Rupiah(r.Total),
	}

	labelCol := col.New(4)
	valueCol := col.New(4)
	for i := range labels {
		top := float64(i * 6)
		style, color := fontstyle.Normal, (*props.Color)(nil)
		if i == len(labels)-1 {
			style, color = fontstyle.Bold, colorPrimary
		}
		labelCol.Add(text.New(labels[i], props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: top, Right: 2, Color: color,
		}))
		valueCol.Add(text.New(values[i], props.Text{
			Style: style, Size: 9, Align: align.Right, Top: top, Color: color,
		}))
	}
	return row.New(26).Add(col.New(4), labelCol, valueCol)
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(receipt.ThankYouLine, props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 2,
		}),
	))
}
