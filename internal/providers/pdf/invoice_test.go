package pdf

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/etcglobal/invoicestudio/internal/document/domain"
	"github.com/etcglobal/invoicestudio/internal/document/seed"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvoiceEmptyDocumentAbortsSilently(t *testing.T) {
	provider := New()

	payload, err := provider.GenerateInvoice(context.Background(), domain.InvoiceData{})

	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestGenerateInvoiceProducesPDF(t *testing.T) {
	provider := New()

	payload, err := provider.GenerateInvoice(context.Background(), seed.Default())

	require.NoError(t, err)
	require.NotEmpty(t, payload)
	assert.Equal(t, "%PDF", string(payload[:4]))
}

func TestPageFormat(t *testing.T) {
	assert.Equal(t, pagesize.Letter, pageFormat("letter"))
	assert.Equal(t, pagesize.A4, pageFormat("a4"))
	assert.Equal(t, pagesize.A4, pageFormat("unknown"))
}

func TestDecodeDataURI(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G'}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	payload, ext, ok := decodeDataURI(&uri)
	require.True(t, ok)
	assert.Equal(t, raw, payload)
	assert.Equal(t, extension.Png, ext)
}

func TestDecodeDataURIRejectsBadInput(t *testing.T) {
	for _, uri := range []string{
		"",
		"https://example.com/logo.png",
		"data:image/png,not-base64-marked",
		"data:image/png;base64,%%%",
		"data:text/plain;base64,aGVsbG8=",
	} {
		uri := uri
		_, _, ok := decodeDataURI(&uri)
		assert.False(t, ok, "uri %q should be rejected", uri)
	}

	_, _, ok := decodeDataURI(nil)
	assert.False(t, ok)
}

func TestFormatNumberTrimsTrailingZeros(t *testing.T) {
	assert.Equal(t, "740", formatNumber(740))
	assert.Equal(t, "96.8", formatNumber(96.80))
	assert.Equal(t, "2997.25", formatNumber(2997.25))
}
