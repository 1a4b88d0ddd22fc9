// Package pdf exports the invoice document as a print-ready PDF.
package pdf

import (
	"context"

	"github.com/etcglobal/invoicestudio/internal/document/domain"
)

// Provider generates the PDF representation of a document snapshot.
type Provider interface {
	GenerateInvoice(ctx context.Context, doc domain.InvoiceData) ([]byte, error)
}
