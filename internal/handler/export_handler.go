package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"docbiz/internal/service"
)

// ExportHandler handles collection export endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Text handles GET /api/v1/export/txt
// Streams the plain-text report as a dated file download.
func (h *ExportHandler) Text(c *gin.Context) {
	filename, content, err := h.exportSvc.Text(time.Now())
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", content)
}

// XLSX handles GET /api/v1/export/xlsx
func (h *ExportHandler) XLSX(c *gin.Context) {
	filename, content, err := h.exportSvc.XLSX(time.Now())
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

// JSON handles GET /api/v1/export/json
// Returns the pretty-printed collection for the copy-to-clipboard action.
func (h *ExportHandler) JSON(c *gin.Context) {
	content, err := h.exportSvc.JSON()
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", content)
}
