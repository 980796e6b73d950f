package handlers

import (
	"io"
	"net/http"

	"betterfocus-api/internal/engine"

	"github.com/gin-gonic/gin"
)

// UpdateSettingsRequest represents a partial settings update
type UpdateSettingsRequest struct {
	Theme                *string `json:"theme"`
	SoundEnabled         *bool   `json:"soundEnabled"`
	NotificationsEnabled *bool   `json:"notificationsEnabled"`
	DefaultFocusDuration *int    `json:"defaultFocusDuration"`
	DefaultBreakDuration *int    `json:"defaultBreakDuration"`
	Language             *string `json:"language"`
}

// GetSettings handles GET /api/settings
func (a *API) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, a.engine.Settings())
}

// UpdateSettings handles PUT /api/settings
func (a *API) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := a.engine.UpdateSettings(engine.SettingsPatch{
		Theme:                req.Theme,
		SoundEnabled:         req.SoundEnabled,
		NotificationsEnabled: req.NotificationsEnabled,
		DefaultFocusDuration: req.DefaultFocusDuration,
		DefaultBreakDuration: req.DefaultBreakDuration,
		Language:             req.Language,
	})
	c.JSON(http.StatusOK, settings)
}

// ExportData handles GET /api/export
// Returns the full document; importing it back reproduces identical state.
func (a *API) ExportData(c *gin.Context) {
	doc, err := a.engine.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ImportData handles POST /api/import
// A document that does not parse is rejected; current state stays untouched.
func (a *API) ImportData(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	if err := a.engine.Import(data); err != nil {
		writeError(c, err)
		return
	}

	a.statsChanged()
	a.publish("data_imported", nil)
	c.JSON(http.StatusOK, gin.H{"message": "Data imported successfully"})
}

// ResetData handles POST /api/reset
func (a *API) ResetData(c *gin.Context) {
	a.engine.Reset()
	a.statsChanged()
	a.publish("data_reset", nil)
	c.JSON(http.StatusOK, gin.H{"message": "All data reset to defaults"})
}
