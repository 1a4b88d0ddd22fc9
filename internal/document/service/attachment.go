package service

import (
	"encoding/base64"
	"net/http"

	"github.com/etcglobal/invoicestudio/internal/document/domain"
)

// EncodeDataURI wraps an image payload in a self-contained data URI so
// the rendered output (including PDF export) needs no external file
// reference. The payload is embedded as-is; no format validation.
func EncodeDataURI(payload []byte) string {
	contentType := http.DetectContentType(payload)
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(payload)
}

func (s *Service) AttachHeaderImage(payload []byte) domain.InvoiceData {
	if len(payload) == 0 {
		return s.Snapshot()
	}
	uri := EncodeDataURI(payload)
	return s.mutate("attach_header_image", func(doc *domain.InvoiceData) bool {
		doc.HeaderImage = &uri
		return true
	})
}

func (s *Service) ClearHeaderImage() domain.InvoiceData {
	return s.mutate("clear_header_image", func(doc *domain.InvoiceData) bool {
		if doc.HeaderImage == nil {
			return false
		}
		doc.HeaderImage = nil
		return true
	})
}
