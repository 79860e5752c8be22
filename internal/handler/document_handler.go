package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docbiz/internal/domain"
	"docbiz/internal/service"
)

// DocumentHandler handles document and entity management endpoints.
type DocumentHandler struct {
	storeSvc service.StoreService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(storeSvc service.StoreService) *DocumentHandler {
	return &DocumentHandler{storeSvc: storeSvc}
}

// List handles GET /api/v1/documents
// An optional ?q= filters documents to those with any field matching the
// query, case-insensitively. Documents come back newest first.
func (h *DocumentHandler) List(c *gin.Context) {
	docs := h.storeSvc.List(c.Query("q"))
	RespondList(c, docs, ListMeta{Total: len(docs)})
}

// Delete handles DELETE /api/v1/documents/:id
// Removing a document removes every entity it owns. Unknown IDs succeed.
func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.storeSvc.RemoveDocument(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

// ClearAll handles DELETE /api/v1/documents
// Requires ?confirm=true; without it nothing is touched.
func (h *DocumentHandler) ClearAll(c *gin.Context) {
	if c.Query("confirm") != "true" {
		HandleError(c, domain.ErrConfirmationRequired)
		return
	}
	if err := h.storeSvc.ClearAll(c.Request.Context()); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"cleared": true})
}

// AddClient handles POST /api/v1/documents/:id/clients
func (h *DocumentHandler) AddClient(c *gin.Context) {
	h.addEntity(c, domain.EntityKindClient)
}

// AddCompany handles POST /api/v1/documents/:id/companies
func (h *DocumentHandler) AddCompany(c *gin.Context) {
	h.addEntity(c, domain.EntityKindCompany)
}

// AddProperty handles POST /api/v1/documents/:id/properties
func (h *DocumentHandler) AddProperty(c *gin.Context) {
	h.addEntity(c, domain.EntityKindProperty)
}

func (h *DocumentHandler) addEntity(c *gin.Context, kind domain.EntityKind) {
	entity, err := h.storeSvc.AddEntity(c.Request.Context(), c.Param("id"), kind)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, entity)
}

// UpdateClient handles PUT /api/v1/documents/:id/clients/:entityId
// The entity ID in the path is authoritative; an ID in the body is ignored.
func (h *DocumentHandler) UpdateClient(c *gin.Context) {
	var body domain.ClientData
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}
	body.ID = c.Param("entityId")
	h.updateEntity(c, body)
}

// UpdateCompany handles PUT /api/v1/documents/:id/companies/:entityId
func (h *DocumentHandler) UpdateCompany(c *gin.Context) {
	var body domain.CompanyData
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}
	body.ID = c.Param("entityId")
	h.updateEntity(c, body)
}

// UpdateProperty handles PUT /api/v1/documents/:id/properties/:entityId
func (h *DocumentHandler) UpdateProperty(c *gin.Context) {
	var body domain.PropertyData
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}
	body.ID = c.Param("entityId")
	h.updateEntity(c, body)
}

func (h *DocumentHandler) updateEntity(c *gin.Context, entity domain.Entity) {
	if err := h.storeSvc.UpdateEntity(c.Request.Context(), c.Param("id"), entity); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, entity)
}

// DeleteClient handles DELETE /api/v1/documents/:id/clients/:entityId
// Unknown IDs succeed.
func (h *DocumentHandler) DeleteClient(c *gin.Context) {
	h.deleteEntity(c, domain.EntityKindClient)
}

// DeleteCompany handles DELETE /api/v1/documents/:id/companies/:entityId
func (h *DocumentHandler) DeleteCompany(c *gin.Context) {
	h.deleteEntity(c, domain.EntityKindCompany)
}

// DeleteProperty handles DELETE /api/v1/documents/:id/properties/:entityId
func (h *DocumentHandler) DeleteProperty(c *gin.Context) {
	h.deleteEntity(c, domain.EntityKindProperty)
}

func (h *DocumentHandler) deleteEntity(c *gin.Context, kind domain.EntityKind) {
	err := h.storeSvc.DeleteEntity(c.Request.Context(), c.Param("id"), kind, c.Param("entityId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
