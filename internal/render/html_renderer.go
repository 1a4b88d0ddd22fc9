package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

const invoiceHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.Invoice.Number}}</title>
  <style>
    @page {
      size: {{.Page.WidthMM}}mm {{.Page.HeightMM}}mm;
      margin: 0;
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      font-family: Helvetica, Arial, sans-serif;
      color: #111111;
      background: #ffffff;
      -webkit-font-smoothing: antialiased;
    }
    .page {
      width: {{.Page.WidthMM}}mm;
      min-height: {{.Page.HeightMM}}mm;
      margin: 0 auto;
      position: relative;
      padding: 10mm 12mm;
    }
    .bar-black {
      height: 8mm;
      background: #000000;
    }
    .bar-red {
      height: 3mm;
      background: #dc2626;
    }
    .logo {
      position: absolute;
      top: 6mm;
      right: 12mm;
      background: #dc2626;
      color: #ffffff;
      font-weight: 900;
      font-size: 14px;
      padding: 4px 10px;
      letter-spacing: 1px;
    }
    .overlay-image {
      position: absolute;
      z-index: 10;
    }
    .warehouse-header {
      white-space: pre-line;
      font-size: 11px;
      margin: 4mm 0;
    }
    .meta {
      display: flex;
      justify-content: space-between;
      margin: 6mm 0 4mm;
      font-size: 12px;
    }
    .meta .label {
      text-transform: uppercase;
      font-size: 9px;
      color: #6b7280;
      letter-spacing: 0.5px;
    }
    .client {
      font-size: 12px;
      margin-bottom: 6mm;
    }
    .client .address { white-space: pre-line; }
    table.items {
      width: 100%;
      border-collapse: collapse;
      font-size: 11px;
    }
    table.items th {
      border: 1px solid #111111;
      background: #f3f4f6;
      text-transform: uppercase;
      font-size: 9px;
      padding: 4px 6px;
      text-align: left;
    }
    table.items td {
      border: 1px solid #111111;
      padding: 4px 6px;
      vertical-align: top;
    }
    table.items tr { page-break-inside: avoid; }
    .num { text-align: right; }
    .total-row td {
      font-weight: 700;
      background: #f9fafb;
    }
    .footer {
      margin-top: 8mm;
      font-size: 10px;
      page-break-inside: avoid;
    }
    .footer h4 {
      margin: 0 0 2mm;
      text-transform: uppercase;
      font-size: 9px;
      letter-spacing: 0.5px;
    }
    .footer .block { margin-bottom: 4mm; }
    .contact-strip {
      display: flex;
      justify-content: space-between;
      border-top: 2px solid #000000;
      padding-top: 2mm;
      font-size: 9px;
    }
  </style>
</head>
<body>
  <div class="page">
    {{if not .Header.HideHeader}}
      {{if not .Header.HideBlackBar}}<div class="bar-black"></div>{{end}}
      {{if not .Header.HideRedBar}}<div class="bar-red"></div>{{end}}
      {{if not .Header.HideLogo}}<div class="logo">ETC</div>{{end}}
    {{end}}
    {{if .Header.OverlayImage}}
      <img class="overlay-image" src="{{safeURL .Header.OverlayImage}}" alt=""
           style="width: {{.Header.OverlayImageWidth}}px; left: {{.Header.OverlayImageX}}px; top: {{.Header.OverlayImageY}}px;" />
    {{end}}
    {{if not .Header.HideWarehouseText}}
      <div class="warehouse-header">{{.Header.WarehouseText}}</div>
    {{end}}

    <div class="meta">
      <div>
        <div class="label">Invoice No</div>
        <div>{{.Invoice.Number}}</div>
      </div>
      <div>
        <div class="label">Date</div>
        <div>{{.Invoice.Date}}</div>
      </div>
      <div>
        <div class="label">Shipment No</div>
        <div>{{.Invoice.ShipmentNumber}}</div>
      </div>
    </div>

    <div class="client">
      <div><strong>{{.Invoice.ClientName}}</strong></div>
      <div>{{.Invoice.ClientPhone}}</div>
      <div class="address">{{.Invoice.ClientAddress}}</div>
    </div>

    <table class="items">
      <thead>
        <tr>
          <th style="width: 8%;">SL</th>
          <th style="width: 38%;">Description</th>
          <th style="width: 18%;">Code</th>
          <th class="num" style="width: 9%;">Qty</th>
          <th style="width: 7%;">Unit</th>
          <th class="num" style="width: 10%;">Rate</th>
          <th class="num" style="width: 10%;">Amount</th>
        </tr>
      </thead>
      <tbody>
        {{range .Items}}
        <tr>
          <td>{{.SL}}</td>
          <td>{{.Description}}</td>
          <td>{{.Code}}</td>
          <td class="num">{{formatQuantity .Qty}}</td>
          <td>{{.Unit}}</td>
          <td class="num">{{formatAmount .Rate}}</td>
          <td class="num">{{formatAmount .Amount}}</td>
        </tr>
        {{end}}
        <tr class="total-row">
          <td colspan="6">Total</td>
          <td class="num">{{formatAmount .Total}}</td>
        </tr>
      </tbody>
    </table>

    <div class="footer">
      {{if .Footer.PaymentOptions}}
      <div class="block">
        <h4>Payment Options</h4>
        {{range .Footer.PaymentOptions}}<div>{{.}}</div>{{end}}
      </div>
      {{end}}
      <div class="block">
        <h4>Bank Details</h4>
        <div>{{.Footer.BankName}}</div>
        <div>A/C Name: {{.Footer.AccountName}}</div>
        <div>A/C No: {{.Footer.AccountNumber}}</div>
        <div>Branch: {{.Footer.Branch}}</div>
        <div>Routing No: {{.Footer.RoutingNumber}}</div>
      </div>
      <div class="block">
        <h4>Corporate Office</h4>
        <div>{{.Footer.CorporateOffice}}</div>
        <div>{{.Footer.WarehouseFooter}}</div>
      </div>
      <div class="contact-strip">
        <span>{{.Footer.Phone1}}</span>
        <span>{{.Footer.Phone2}}</span>
        <span>{{.Footer.Website}}</span>
        <span>{{.Footer.Email}}</span>
      </div>
    </div>
  </div>
</body>
</html>
`

type HTMLRenderer struct {
	tpl *template.Template
}

func NewRenderer() Renderer {
	funcs := template.FuncMap{
		"formatAmount":   formatAmount,
		"formatQuantity": formatQuantity,
		"safeURL":        safeURL,
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceHTMLTemplate)),
	}
}

func (r *HTMLRenderer) RenderHTML(input Input) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatAmount(value float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", value), "0"), ".")
}

func formatQuantity(value float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", value), "0"), ".")
}

// safeURL marks the header image data URI as a trusted source. The URI
// is produced by the attachment encoder, never by remote input.
func safeURL(value string) template.URL {
	return template.URL(value)
}
