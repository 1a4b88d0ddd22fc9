package server

import (
	"net/http"

	"github.com/etcglobal/invoicestudio/internal/render"
	"github.com/gin-gonic/gin"
)

// Preview renders the current document as print-ready HTML. The host's
// print dialog prints this surface directly.
func (s *Server) Preview(c *gin.Context) {
	doc := s.documentSvc.Snapshot()

	html, err := s.renderer.RenderHTML(render.InputFromDocument(doc))
	if err != nil {
		AbortWithError(c, ErrInternal)
		return
	}

	s.metrics.RecordInvoiceRendered(c.Request.Context(), string(doc.PageSize))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
