package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docbiz/internal/service"
)

// SettingsHandler handles user preference endpoints.
type SettingsHandler struct {
	settingsSvc service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsSvc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsSvc: settingsSvc}
}

// GetTheme handles GET /api/v1/settings/theme
func (h *SettingsHandler) GetTheme(c *gin.Context) {
	theme, err := h.settingsSvc.GetTheme(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"theme": theme})
}

// SetTheme handles PUT /api/v1/settings/theme
func (h *SettingsHandler) SetTheme(c *gin.Context) {
	var body struct {
		Theme string `json:"theme"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}
	if err := h.settingsSvc.SetTheme(c.Request.Context(), body.Theme); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"theme": body.Theme})
}

// SetAPIKey handles PUT /api/v1/settings/api-key
// The key is stored locally and never echoed back in any response.
func (h *SettingsHandler) SetAPIKey(c *gin.Context) {
	var body struct {
		APIKey string `json:"apiKey"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}
	if err := h.settingsSvc.SetAPIKey(c.Request.Context(), body.APIKey); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}
