package server

import (
	"io"
	"net/http"
	"strings"

	documentservice "github.com/etcglobal/invoicestudio/internal/document/service"
	"github.com/gin-gonic/gin"
)

type setFieldRequest struct {
	Value any `json:"value"`
}

type setBankFieldRequest struct {
	Value string `json:"value"`
}

func (s *Server) GetDocument(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.documentSvc.Snapshot()})
}

func (s *Server) SetField(c *gin.Context) {
	field := strings.TrimSpace(c.Param("field"))
	if field == "" {
		AbortWithError(c, newValidationError("field", "required", "field name is required"))
		return
	}

	var req setFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("value", "invalid_body", "request body must be JSON with a value"))
		return
	}

	doc := s.documentSvc.SetField(field, req.Value)
	s.metrics.RecordDocumentMutation(c.Request.Context(), "set_field")
	c.JSON(http.StatusOK, gin.H{"data": doc})
}

func (s *Server) SetBankField(c *gin.Context) {
	field := strings.TrimSpace(c.Param("field"))
	if field == "" {
		AbortWithError(c, newValidationError("field", "required", "field name is required"))
		return
	}

	var req setBankFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("value", "invalid_body", "request body must be JSON with a string value"))
		return
	}

	doc := s.documentSvc.SetBankField(field, req.Value)
	s.metrics.RecordDocumentMutation(c.Request.Context(), "set_bank_field")
	c.JSON(http.StatusOK, gin.H{"data": doc})
}

func (s *Server) AddLineItem(c *gin.Context) {
	doc := s.documentSvc.AddLineItem()
	s.metrics.RecordDocumentMutation(c.Request.Context(), "add_line_item")
	c.JSON(http.StatusOK, gin.H{"data": doc})
}

func (s *Server) UpdateLineItem(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		AbortWithError(c, newValidationError("id", "required", "line item id is required"))
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		AbortWithError(c, newValidationError("patch", "invalid_body", "request body must be a JSON object"))
		return
	}

	doc := s.documentSvc.UpdateLineItem(id, documentservice.ParsePatch(raw))
	s.metrics.RecordDocumentMutation(c.Request.Context(), "update_line_item")
	c.JSON(http.StatusOK, gin.H{"data": doc})
}

func (s *Server) RemoveLineItem(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		AbortWithError(c, newValidationError("id", "required", "line item id is required"))
		return
	}

	doc := s.documentSvc.RemoveLineItem(id)
	s.metrics.RecordDocumentMutation(c.Request.Context(), "remove_line_item")
	c.JSON(http.StatusOK, gin.H{"data": doc})
}

func (s *Server) AttachHeaderImage(c *gin.Context) {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		AbortWithError(c, newValidationError("image", "required", "multipart image file is required"))
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil || len(payload) == 0 {
		AbortWithError(c, newValidationError("image", "unreadable", "image payload could not be read"))
		return
	}

	doc := s.documentSvc.AttachHeaderImage(payload)
	s.metrics.RecordDocumentMutation(c.Request.Context(), "attach_header_image")
	c.JSON(http.StatusOK, gin.H{"data": doc})
}

func (s *Server) ClearHeaderImage(c *gin.Context) {
	doc := s.documentSvc.ClearHeaderImage()
	s.metrics.RecordDocumentMutation(c.Request.Context(), "clear_header_image")
	c.JSON(http.StatusOK, gin.H{"data": doc})
}
