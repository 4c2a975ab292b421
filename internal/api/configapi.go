package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ConfigResponse configuración vigente del maestro
type ConfigResponse struct {
	MasterFile  string `json:"masterFile"`
	MasterSheet string `json:"masterSheet"`
}

// ConfigUpdate campos modificables; nil = sin cambio
type ConfigUpdate struct {
	MasterFile  *string `json:"masterFile"`
	MasterSheet *string `json:"masterSheet"`
}

// GetConfig configuración vigente
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c.JSON(http.StatusOK, ConfigResponse{
		MasterFile:  h.cfg.Data.MasterFile,
		MasterSheet: h.cfg.Data.MasterSheet,
	})
}

// UpdateConfig modifica la ruta u hoja del maestro en caliente.
// No se persiste: el siguiente arranque vuelve a config.toml.
// PATCH /api/config
func (h *Handler) UpdateConfig(c *gin.Context) {
	var update ConfigUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de petición inválido"})
		return
	}

	h.mu.Lock()
	if update.MasterFile != nil && *update.MasterFile != "" {
		h.cfg.Data.MasterFile = *update.MasterFile
	}
	if update.MasterSheet != nil && *update.MasterSheet != "" {
		h.cfg.Data.MasterSheet = *update.MasterSheet
	}
	resp := ConfigResponse{
		MasterFile:  h.cfg.Data.MasterFile,
		MasterSheet: h.cfg.Data.MasterSheet,
	}
	h.mu.Unlock()

	c.JSON(http.StatusOK, resp)
}
