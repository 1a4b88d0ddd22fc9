package render

import (
	"strings"
	"testing"

	"github.com/etcglobal/invoicestudio/internal/document/domain"
	"github.com/etcglobal/invoicestudio/internal/document/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderSeed(t *testing.T, mutate func(*domain.InvoiceData)) string {
	t.Helper()
	doc := seed.Default()
	if mutate != nil {
		mutate(&doc)
	}
	html, err := NewRenderer().RenderHTML(InputFromDocument(doc))
	require.NoError(t, err)
	return html
}

func TestRenderHTMLContainsDocumentFields(t *testing.T) {
	html := renderSeed(t, nil)

	assert.Contains(t, html, "SK25DEC606")
	assert.Contains(t, html, "20 Dec 2025")
	assert.Contains(t, html, "14-11 GZ305")
	assert.Contains(t, html, "SHUVO")
	assert.Contains(t, html, "Door Handle")
	assert.Contains(t, html, "The City Bank PLC")
	assert.Contains(t, html, "Cash on Delivery (pick-up) from Dhaka Warehouse")
	assert.Contains(t, html, "www.etcglobal.store")
}

func TestRenderHTMLPageDimensions(t *testing.T) {
	html := renderSeed(t, nil)
	assert.Contains(t, html, "size: 210mm 297mm")

	html = renderSeed(t, func(doc *domain.InvoiceData) {
		doc.PageSize = domain.PageSizeLetter
	})
	assert.Contains(t, html, "size: 216mm 279mm")
}

func TestRenderHTMLTotalAndNumberFormatting(t *testing.T) {
	html := renderSeed(t, nil)

	// 71632 + 2997, trailing zeros trimmed.
	assert.Contains(t, html, ">74629<")
	assert.Contains(t, html, ">96.8<")
	assert.Contains(t, html, ">740<")
}

func TestRenderHTMLHeaderToggles(t *testing.T) {
	html := renderSeed(t, nil)
	assert.Contains(t, html, `class="bar-black"`)
	assert.Contains(t, html, `class="bar-red"`)
	assert.Contains(t, html, `class="logo"`)
	assert.Contains(t, html, `class="warehouse-header"`)

	html = renderSeed(t, func(doc *domain.InvoiceData) {
		doc.HideBlackBar = true
		doc.HideRedBar = true
		doc.HideLogo = true
		doc.HideWarehouseHeader = true
	})
	assert.NotContains(t, html, `class="bar-black"`)
	assert.NotContains(t, html, `class="bar-red"`)
	assert.NotContains(t, html, `class="logo"`)
	assert.NotContains(t, html, `class="warehouse-header"`)
}

func TestRenderHTMLHideHeaderSuppressesAllBranding(t *testing.T) {
	html := renderSeed(t, func(doc *domain.InvoiceData) {
		doc.HideHeader = true
	})

	assert.NotContains(t, html, `class="bar-black"`)
	assert.NotContains(t, html, `class="bar-red"`)
	assert.NotContains(t, html, `class="logo"`)
}

func TestRenderHTMLOverlayImage(t *testing.T) {
	html := renderSeed(t, nil)
	assert.NotContains(t, html, "overlay-image")

	uri := "data:image/png;base64,iVBORw0KGgo="
	html = renderSeed(t, func(doc *domain.InvoiceData) {
		doc.HeaderImage = &uri
		doc.HeaderImageWidth = 300
		doc.HeaderImageX = 12
		doc.HeaderImageY = 34
	})

	// The data URI must survive template escaping intact.
	assert.Contains(t, html, `src="data:image/png;base64,iVBORw0KGgo="`)
	assert.NotContains(t, html, "ZgotmplZ")
	assert.Contains(t, html, "width: 300px")
	assert.Contains(t, html, "left: 12px")
	assert.Contains(t, html, "top: 34px")
}

func TestRenderHTMLEscapesUserText(t *testing.T) {
	html := renderSeed(t, func(doc *domain.InvoiceData) {
		doc.ClientName = `<script>alert("x")</script>`
	})

	assert.NotContains(t, html, "<script>alert")
	assert.True(t, strings.Contains(html, "&lt;script&gt;"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "740", formatAmount(740))
	assert.Equal(t, "96.8", formatAmount(96.80))
	assert.Equal(t, "2997.25", formatAmount(2997.25))
	assert.Equal(t, "0", formatAmount(0))
}
