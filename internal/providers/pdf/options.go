package pdf

import (
	"fmt"
	"strings"

	"github.com/etcglobal/invoicestudio/internal/document/domain"
)

// ExportOptions is the fixed export configuration derived from the
// document. None of these are user-exposed settings.
type ExportOptions struct {
	Filename     string
	Format       string // lower-cased page size token: "a4" or "letter"
	Orientation  string
	MarginMM     float64
	Scale        int
	ImageQuality float64
	Compress     bool
}

const (
	exportScale        = 2
	exportImageQuality = 1.0
	exportOrientation  = "portrait"
	exportMarginMM     = 0
)

// Options derives the export configuration for the current document.
func Options(doc domain.InvoiceData) ExportOptions {
	return ExportOptions{
		Filename:     Filename(doc.InvoiceNumber),
		Format:       strings.ToLower(string(doc.PageSize)),
		Orientation:  exportOrientation,
		MarginMM:     exportMarginMM,
		Scale:        exportScale,
		ImageQuality: exportImageQuality,
		Compress:     true,
	}
}

// Filename builds the exported file name from the invoice number.
func Filename(invoiceNumber string) string {
	return fmt.Sprintf("ETC_Invoice_%s.pdf", invoiceNumber)
}
