// Package render turns assembled invoices into PDF documents with
// maroto. Output is streamed to the caller and never written to disk.
package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/smallbiznis/rentora/internal/billing"
)

// Renderer produces a downloadable invoice document.
type Renderer interface {
	RenderInvoice(ctx context.Context, data billing.InvoiceData) (io.Reader, error)
}

type PDFRenderer struct{}

func New() Renderer {
	return &PDFRenderer{}
}

const dateLayout = "Jan 2, 2006"

func (r *PDFRenderer) RenderInvoice(ctx context.Context, data billing.InvoiceData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Invoice", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	metaLines := []string{
		"Invoice number: " + data.InvoiceNumber,
		"Date: " + data.InvoiceDate.Format(dateLayout),
		"Due: " + data.DueDate.Format(dateLayout),
	}
	if data.InvoicePeriod != "" {
		metaLines = append(metaLines, "Period: "+data.InvoicePeriod)
	}
	meta := col.New(6)
	for i, line := range metaLines {
		meta.Add(text.New(line, props.Text{Top: float64(i * 4)}))
	}
	m.AddRow(20, meta, col.New(6))

	m.AddRow(35,
		col.New(6).Add(
			text.New(data.Agency.Name, props.Text{Style: fontstyle.Bold}),
			text.New(data.Agency.Address, props.Text{Top: 5}),
			text.New(data.Agency.Email, props.Text{Top: 14}),
			text.New(data.Agency.Phone, props.Text{Top: 18}),
		),
		col.New(6).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold}),
			text.New(data.Customer.Name, props.Text{Top: 5}),
			text.New(data.Customer.Email, props.Text{Top: 9}),
			text.New(data.Customer.Phone, props.Text{Top: 13}),
		),
	)

	m.AddRow(10,
		text.NewCol(5, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "Period", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(1, "Days", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(1, "Rate", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range data.Items {
		m.AddRow(12,
			text.NewCol(5, itemDescription(item), props.Text{Size: 9}),
			text.NewCol(3, formatPeriod(item.FromDate, item.ToDate), props.Text{Size: 9}),
			text.NewCol(1, fmt.Sprintf("%d", item.Days), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(1, formatMoney(data.CurrencySymbol, item.DailyRate), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, formatMoney(data.CurrencySymbol, item.Amount), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: 9}),
		text.NewCol(2, formatMoney(data.CurrencySymbol, data.Subtotal), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, fmt.Sprintf("Tax (%.1f%%)", data.TaxRate), props.Text{Size: 9}),
		text.NewCol(2, formatMoney(data.CurrencySymbol, data.Tax), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total due", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, formatMoney(data.CurrencySymbol, data.Total), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(doc.GetBytes()), nil
}

func itemDescription(item billing.LineItem) string {
	desc := item.AssetDescription
	if item.Manufacturer != "" {
		desc = item.Manufacturer + " " + desc
	}
	if item.AssetModel != "" {
		desc += " (" + item.AssetModel + ")"
	}
	return desc + " - " + item.Status
}

func formatPeriod(from, to time.Time) string {
	return from.Format(dateLayout) + " - " + to.Format(dateLayout)
}

func formatMoney(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}
