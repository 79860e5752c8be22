package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docbiz/internal/service"
)

// ExtractHandler handles document extraction endpoints.
type ExtractHandler struct {
	processSvc service.ProcessService
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(processSvc service.ProcessService) *ExtractHandler {
	return &ExtractHandler{processSvc: processSvc}
}

// Extract handles POST /api/v1/extract
// Accepts a multipart form with one or more "files" parts and runs the
// extraction pipeline over them. Per-file failures are reported in the
// outcome list, not as a request failure.
func (h *ExtractHandler) Extract(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "expected a multipart form upload")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		RespondError(c, http.StatusBadRequest, "NO_FILES", "no files were submitted")
		return
	}

	outcomes, err := h.processSvc.ProcessBatch(c.Request.Context(), files)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"results": outcomes})
}
