// Package render produces the fixed invoice template as print-ready HTML.
package render

// Renderer turns a render input into a complete HTML document.
type Renderer interface {
	RenderHTML(input Input) (string, error)
}

// PageView carries the page configuration for the template.
type PageView struct {
	// Size is "A4" or "Letter".
	Size string
	// WidthMM and HeightMM are the physical page dimensions, portrait.
	WidthMM  int
	HeightMM int
}

// HeaderView controls the branding region at the top of the page.
type HeaderView struct {
	HideHeader        bool
	HideBlackBar      bool
	HideRedBar        bool
	HideLogo          bool
	HideWarehouseText bool
	WarehouseText     string
	OverlayImage      string // data URI; empty means none
	OverlayImageWidth int
	OverlayImageX     int
	OverlayImageY     int
}

// InvoiceView carries the identity and party fields.
type InvoiceView struct {
	Number         string
	Date           string
	ShipmentNumber string
	ClientName     string
	ClientPhone    string
	ClientAddress  string
}

// LineItemView is one printed row.
type LineItemView struct {
	SL          string
	Description string
	Code        string
	Qty         float64
	Unit        string
	Rate        float64
	Amount      float64
}

// FooterView carries everything below the items table.
type FooterView struct {
	PaymentOptions  []string
	BankName        string
	AccountName     string
	AccountNumber   string
	Branch          string
	RoutingNumber   string
	CorporateOffice string
	WarehouseFooter string
	Phone1          string
	Phone2          string
	Website         string
	Email           string
}

// Input is everything the template needs for one render.
type Input struct {
	Page    PageView
	Header  HeaderView
	Invoice InvoiceView
	Items   []LineItemView
	Total   float64
	Footer  FooterView
}
