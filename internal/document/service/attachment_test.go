package service

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/etcglobal/invoicestudio/internal/document/domain"
	"github.com/etcglobal/invoicestudio/internal/document/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smallest valid PNG header, enough for content-type sniffing.
var pngPayload = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestEncodeDataURI(t *testing.T) {
	uri := EncodeDataURI(pngPayload)

	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	encoded := strings.TrimPrefix(uri, "data:image/png;base64,")
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, pngPayload, decoded)
}

func TestAttachHeaderImage(t *testing.T) {
	svc := NewService(ServiceParam{Seed: seed.Default()})

	doc := svc.AttachHeaderImage(pngPayload)
	require.NotNil(t, doc.HeaderImage)
	assert.True(t, strings.HasPrefix(*doc.HeaderImage, "data:image/png;base64,"))
}

func TestAttachHeaderImageReplacesPrevious(t *testing.T) {
	svc := NewService(ServiceParam{Seed: seed.Default()})

	svc.AttachHeaderImage(pngPayload)
	doc := svc.AttachHeaderImage([]byte("plain text payload"))

	require.NotNil(t, doc.HeaderImage)
	assert.False(t, strings.HasPrefix(*doc.HeaderImage, "data:image/png"))
}

func TestAttachHeaderImageEmptyPayloadIsNoOp(t *testing.T) {
	svc := NewService(ServiceParam{Seed: seed.Default()})
	before := svc.Snapshot()

	after := svc.AttachHeaderImage(nil)

	assert.Equal(t, before, after)
	assert.Nil(t, after.HeaderImage)
}

func TestClearHeaderImage(t *testing.T) {
	svc := NewService(ServiceParam{Seed: seed.Default()})

	svc.AttachHeaderImage(pngPayload)
	doc := svc.ClearHeaderImage()
	assert.Nil(t, doc.HeaderImage)

	// Clearing an already-empty slot does not notify subscribers.
	var calls int
	svc.Subscribe(func(domain.InvoiceData) { calls++ })
	svc.ClearHeaderImage()
	assert.Zero(t, calls)
}
