package pdf

import (
	"testing"

	"github.com/etcglobal/invoicestudio/internal/document/domain"
	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	doc := domain.InvoiceData{
		InvoiceNumber: "SK25DEC606",
		PageSize:      domain.PageSizeA4,
	}

	opts := Options(doc)

	assert.Equal(t, "ETC_Invoice_SK25DEC606.pdf", opts.Filename)
	assert.Equal(t, "a4", opts.Format)
	assert.Equal(t, "portrait", opts.Orientation)
	assert.Equal(t, 0.0, opts.MarginMM)
	assert.Equal(t, 2, opts.Scale)
	assert.Equal(t, 1.0, opts.ImageQuality)
	assert.True(t, opts.Compress)
}

func TestOptionsLowerCasesPageSize(t *testing.T) {
	doc := domain.InvoiceData{
		InvoiceNumber: "X1",
		PageSize:      domain.PageSizeLetter,
	}

	assert.Equal(t, "letter", Options(doc).Format)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "ETC_Invoice_INV-42.pdf", Filename("INV-42"))
	assert.Equal(t, "ETC_Invoice_.pdf", Filename(""))
}
