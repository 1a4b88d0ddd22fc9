// Package domain contains the in-memory invoice document model.
package domain

// PageSize selects the paper format for preview and export.
type PageSize string

const (
	PageSizeA4     PageSize = "A4"
	PageSizeLetter PageSize = "Letter"
)

// LineItem is one billable row on the invoice. Amount is derived from
// Qty and Rate and is never set directly.
type LineItem struct {
	ID          string  `json:"id"`
	SL          string  `json:"sl"`
	Description string  `json:"description"`
	Code        string  `json:"code"`
	Qty         float64 `json:"qty"`
	Unit        string  `json:"unit"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// BankDetails holds the payee bank record printed on the invoice.
type BankDetails struct {
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	Branch        string `json:"branch"`
	RoutingNumber string `json:"routingNumber"`
}

// InvoiceData is the single document aggregate the editor operates on.
type InvoiceData struct {
	InvoiceNumber  string `json:"invoiceNumber"`
	InvoiceDate    string `json:"invoiceDate"`
	ShipmentNumber string `json:"shipmentNumber"`

	ClientName    string `json:"clientName"`
	ClientPhone   string `json:"clientPhone"`
	ClientAddress string `json:"clientAddress"`

	WarehouseAddressHeader string `json:"warehouseAddressHeader"`
	CorporateOffice        string `json:"corporateOffice"`
	WarehouseAddressFooter string `json:"warehouseAddressFooter"`

	LineItems      []LineItem  `json:"lineItems"`
	PaymentOptions []string    `json:"paymentOptions"`
	BankDetails    BankDetails `json:"bankDetails"`

	Phone1  string `json:"phone1"`
	Phone2  string `json:"phone2"`
	Website string `json:"website"`
	Email   string `json:"email"`

	PageSize PageSize `json:"pageSize"`

	// HeaderImage is a self-contained data URI; nil means no image attached.
	HeaderImage      *string `json:"headerImage,omitempty"`
	HeaderImageWidth int     `json:"headerImageWidth"`
	HeaderImageX     int     `json:"headerImageX"`
	HeaderImageY     int     `json:"headerImageY"`

	HideBlackBar        bool `json:"hideBlackBar"`
	HideRedBar          bool `json:"hideRedBar"`
	HideLogo            bool `json:"hideLogo"`
	HideWarehouseHeader bool `json:"hideWarehouseHeader"`
	HideHeader          bool `json:"hideHeader"`
}

// LineItemPatch carries only the fields a caller intends to change.
// Amount is absent on purpose: it is always recomputed from the
// post-merge Qty and Rate.
type LineItemPatch struct {
	SL          *string  `json:"sl,omitempty"`
	Description *string  `json:"description,omitempty"`
	Code        *string  `json:"code,omitempty"`
	Qty         *float64 `json:"qty,omitempty"`
	Unit        *string  `json:"unit,omitempty"`
	Rate        *float64 `json:"rate,omitempty"`
}

// Clone returns a deep copy of the document. Mutating the copy never
// affects the receiver.
func (d InvoiceData) Clone() InvoiceData {
	out := d

	out.LineItems = make([]LineItem, len(d.LineItems))
	copy(out.LineItems, d.LineItems)

	out.PaymentOptions = make([]string, len(d.PaymentOptions))
	copy(out.PaymentOptions, d.PaymentOptions)

	if d.HeaderImage != nil {
		img := *d.HeaderImage
		out.HeaderImage = &img
	}

	return out
}

// Total sums the derived amounts of every line item.
func (d InvoiceData) Total() float64 {
	var total float64
	for _, item := range d.LineItems {
		total += item.Amount
	}
	return total
}

// FindLineItem returns the item with the given id, or nil.
func (d InvoiceData) FindLineItem(id string) *LineItem {
	for i := range d.LineItems {
		if d.LineItems[i].ID == id {
			return &d.LineItems[i]
		}
	}
	return nil
}
