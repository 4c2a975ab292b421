package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CarlosATO/cierre-telefonica/internal/model"
)

// StatusResponse estado del sistema
type StatusResponse struct {
	Initialized bool                `json:"initialized"` // hay datos cargados
	Materiales  int                 `json:"materiales"`
	UltimaCarga *model.InformeCarga `json:"ultimaCarga,omitempty"`
}

// GetStatus estado del sistema
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	materiales := h.store.Count()
	c.JSON(http.StatusOK, StatusResponse{
		Initialized: materiales > 0,
		Materiales:  materiales,
		UltimaCarga: h.store.Informe(),
	})
}
