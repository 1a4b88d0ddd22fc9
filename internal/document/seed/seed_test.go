package seed

import (
	"testing"

	"github.com/etcglobal/invoicestudio/internal/config"
	"github.com/etcglobal/invoicestudio/internal/document/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	doc := Default()

	assert.Equal(t, "SK25DEC606", doc.InvoiceNumber)
	assert.Equal(t, "20 Dec 2025", doc.InvoiceDate)
	assert.Equal(t, "14-11 GZ305", doc.ShipmentNumber)
	assert.Equal(t, domain.PageSizeA4, doc.PageSize)
	assert.Equal(t, 300, doc.HeaderImageWidth)
	assert.Nil(t, doc.HeaderImage)
	assert.False(t, doc.HideHeader)
	assert.False(t, doc.HideLogo)

	require.Len(t, doc.LineItems, 2)
	assert.Equal(t, 96.80, doc.LineItems[0].Qty)
	assert.Equal(t, 740.0, doc.LineItems[0].Rate)
	assert.Equal(t, 71632.0, doc.LineItems[0].Amount)
	assert.Equal(t, 2997.0, doc.LineItems[1].Amount)
	assert.Equal(t, 74629.0, doc.Total())
}

func TestDefaultReturnsFreshCopies(t *testing.T) {
	first := Default()
	first.LineItems[0].Description = "mutated"
	first.PaymentOptions[0] = "mutated"

	second := Default()
	assert.NotEqual(t, "mutated", second.LineItems[0].Description)
	assert.NotEqual(t, "mutated", second.PaymentOptions[0])
}

func TestWithBrandingOverlaysNonEmptyFields(t *testing.T) {
	doc := WithBranding(config.Branding{
		Website:        "invoices.example.com",
		PaymentOptions: []string{"Bank transfer only"},
	})

	assert.Equal(t, "invoices.example.com", doc.Website)
	assert.Equal(t, []string{"Bank transfer only"}, doc.PaymentOptions)

	// Untouched fields keep built-in values.
	assert.Equal(t, "etcglobal.store@gmail.com", doc.Email)
	assert.Equal(t, "+88 01783 335 343", doc.Phone1)
}

func TestWithBrandingEmptyKeepsDefaults(t *testing.T) {
	assert.Equal(t, Default(), WithBranding(config.Branding{}))
}
