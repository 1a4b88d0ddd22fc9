package server

import (
	"net/http"

	"github.com/etcglobal/invoicestudio/internal/providers/pdf"
	"github.com/gin-gonic/gin"
)

// Export produces the PDF download for the current document.
func (s *Server) Export(c *gin.Context) {
	doc := s.documentSvc.Snapshot()

	payload, err := s.pdfProvider.GenerateInvoice(c.Request.Context(), doc)
	if err != nil {
		AbortWithError(c, ErrInternal)
		return
	}
	if len(payload) == 0 {
		// Nothing to export: the generator aborted silently.
		c.Status(http.StatusNoContent)
		return
	}

	opts := pdf.Options(doc)
	s.metrics.RecordInvoiceExported(c.Request.Context(), opts.Format)

	c.Header("Content-Disposition", `attachment; filename="`+opts.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", payload)
}
