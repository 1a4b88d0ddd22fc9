package pdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/etcglobal/invoicestudio/internal/document/domain"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateInvoice(ctx context.Context, doc domain.InvoiceData) ([]byte, error) {
	// Nothing to lay out: abort silently, no file produced.
	if len(doc.LineItems) == 0 {
		return nil, nil
	}

	opts := Options(doc)

	cfg := config.NewBuilder().
		WithPageSize(pageFormat(opts.Format)).
		WithOrientation(orientation.Vertical).
		WithLeftMargin(opts.MarginMM).
		WithTopMargin(opts.MarginMM).
		WithRightMargin(opts.MarginMM).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	if !doc.HideHeader {
		if !doc.HideLogo {
			m.AddRow(12,
				text.NewCol(3, "ETC", props.Text{
					Size:  18,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
				col.New(9),
			)
		}
	}

	if payload, ext, ok := decodeDataURI(doc.HeaderImage); ok {
		m.AddRow(30,
			image.NewFromBytesCol(4, payload, ext, props.Rect{
				Center:  false,
				Percent: 90,
			}),
			col.New(8),
		)
	}

	if !doc.HideWarehouseHeader {
		m.AddRow(18,
			text.NewCol(12, doc.WarehouseAddressHeader, props.Text{Size: 8}),
		)
	}

	m.AddRow(16,
		col.New(4).Add(
			text.New("Invoice No: "+doc.InvoiceNumber, props.Text{Top: 0, Size: 9}),
			text.New("Date: "+doc.InvoiceDate, props.Text{Top: 5, Size: 9}),
			text.New("Shipment No: "+doc.ShipmentNumber, props.Text{Top: 10, Size: 9}),
		),
		col.New(8),
	)

	m.AddRow(16,
		col.New(6).Add(
			text.New(doc.ClientName, props.Text{Style: fontstyle.Bold, Size: 10}),
			text.New(doc.ClientPhone, props.Text{Top: 5, Size: 9}),
			text.New(doc.ClientAddress, props.Text{Top: 10, Size: 9}),
		),
		col.New(6),
	)

	m.AddRow(8,
		text.NewCol(1, "SL", props.Text{Style: fontstyle.Bold, Size: 8}),
		text.NewCol(4, "Description", props.Text{Style: fontstyle.Bold, Size: 8}),
		text.NewCol(2, "Code", props.Text{Style: fontstyle.Bold, Size: 8}),
		text.NewCol(1, "Qty", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
		text.NewCol(1, "Unit", props.Text{Style: fontstyle.Bold, Size: 8}),
		text.NewCol(1, "Rate", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
	)

	for _, item := range doc.LineItems {
		m.AddRow(10,
			text.NewCol(1, item.SL, props.Text{Size: 8}),
			text.NewCol(4, item.Description, props.Text{Size: 8}),
			text.NewCol(2, item.Code, props.Text{Size: 8}),
			text.NewCol(1, formatNumber(item.Qty), props.Text{Size: 8, Align: align.Right}),
			text.NewCol(1, item.Unit, props.Text{Size: 8}),
			text.NewCol(1, formatNumber(item.Rate), props.Text{Size: 8, Align: align.Right}),
			text.NewCol(2, formatNumber(item.Amount), props.Text{Size: 8, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(9),
		text.NewCol(1, "Total", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, formatNumber(doc.Total()), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	if len(doc.PaymentOptions) > 0 {
		m.AddRow(8,
			text.NewCol(12, "Payment Options", props.Text{Style: fontstyle.Bold, Size: 8}),
		)
		for _, option := range doc.PaymentOptions {
			m.AddRow(6,
				text.NewCol(12, option, props.Text{Size: 8}),
			)
		}
	}

	m.AddRow(26,
		col.New(6).Add(
			text.New("Bank Details", props.Text{Style: fontstyle.Bold, Size: 8}),
			text.New(doc.BankDetails.BankName, props.Text{Top: 4, Size: 8}),
			text.New("A/C Name: "+doc.BankDetails.AccountName, props.Text{Top: 8, Size: 8}),
			text.New("A/C No: "+doc.BankDetails.AccountNumber, props.Text{Top: 12, Size: 8}),
			text.New("Branch: "+doc.BankDetails.Branch, props.Text{Top: 16, Size: 8}),
			text.New("Routing No: "+doc.BankDetails.RoutingNumber, props.Text{Top: 20, Size: 8}),
		),
		col.New(6).Add(
			text.New("Corporate Office", props.Text{Style: fontstyle.Bold, Size: 8}),
			text.New(doc.CorporateOffice, props.Text{Top: 4, Size: 8}),
			text.New(doc.WarehouseAddressFooter, props.Text{Top: 12, Size: 8}),
		),
	)

	m.AddRow(8,
		text.NewCol(3, doc.Phone1, props.Text{Size: 7}),
		text.NewCol(3, doc.Phone2, props.Text{Size: 7}),
		text.NewCol(3, doc.Website, props.Text{Size: 7}),
		text.NewCol(3, doc.Email, props.Text{Size: 7}),
	)

	generated, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return generated.GetBytes(), nil
}

func pageFormat(format string) pagesize.Type {
	if format == "letter" {
		return pagesize.Letter
	}
	return pagesize.A4
}

func formatNumber(value float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", value), "0"), ".")
}

// decodeDataURI extracts the raw payload and image extension from a
// header image data URI. Payloads that are not base64 image data URIs
// are skipped rather than failing the export.
func decodeDataURI(uri *string) ([]byte, extension.Type, bool) {
	if uri == nil {
		return nil, "", false
	}
	raw := strings.TrimSpace(*uri)
	if !strings.HasPrefix(raw, "data:") {
		return nil, "", false
	}
	meta, encoded, found := strings.Cut(raw[len("data:"):], ";base64,")
	if !found {
		return nil, "", false
	}
	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", false
	}

	switch meta {
	case "image/png":
		return payload, extension.Png, true
	case "image/jpeg", "image/jpg":
		return payload, extension.Jpg, true
	default:
		return nil, "", false
	}
}
