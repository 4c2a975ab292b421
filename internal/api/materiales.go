package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/CarlosATO/cierre-telefonica/internal/model"
	"github.com/CarlosATO/cierre-telefonica/internal/service/reconcile"
)

// MaterialesResponse resumen de materiales con saldos derivados
type MaterialesResponse struct {
	Total      int                      `json:"total"`
	Materiales []model.ResumenCalculado `json:"materiales"`
}

// ListMateriales resumen vigente, opcionalmente filtrado por ?buscar=
// (código por subcadena literal, descripción sin distinguir mayúsculas).
// Los saldos derivados se recalculan en cada petición.
// GET /api/materiales
func (h *Handler) ListMateriales(c *gin.Context) {
	buscar := strings.TrimSpace(c.Query("buscar"))
	resumen := h.store.Resumen(buscar)

	c.JSON(http.StatusOK, MaterialesResponse{
		Total:      len(resumen),
		Materiales: reconcile.DeriveAll(resumen),
	})
}

// LineaFONConEstado línea FON con su estado de rebaja
type LineaFONConEstado struct {
	model.LineaFON
	Estado model.EstadoRebaja `json:"estado"`
}

// DetalleResponse desglose por zona TRIOT de un código y tipo de proyecto
type DetalleResponse struct {
	Code    string               `json:"code"`
	Tipo    model.TipoProyecto   `json:"tipo"`
	FON     []LineaFONConEstado  `json:"fon,omitempty"`
	FOT     []model.LineaFOT     `json:"fot,omitempty"`
	Totales model.TotalesDetalle `json:"totales"`
}

// GetDetalle desglose FON o FOT de un material
// GET /api/materiales/:code/detalle/:tipo
func (h *Handler) GetDetalle(c *gin.Context) {
	code := c.Param("code")
	tipo := model.TipoProyecto(strings.ToUpper(c.Param("tipo")))
	if tipo != model.ProyectoFON && tipo != model.ProyectoFOT {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El tipo de proyecto debe ser FON o FOT"})
		return
	}

	detalle, ok := h.store.Detalle(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No hay detalles cargados para este material"})
		return
	}

	resp := DetalleResponse{Code: code, Tipo: tipo}
	if tipo == model.ProyectoFON {
		resp.FON = make([]LineaFONConEstado, len(detalle.FON))
		for i, l := range detalle.FON {
			resp.FON[i] = LineaFONConEstado{LineaFON: l, Estado: reconcile.ClasificarRebaja(l.Dif)}
		}
		resp.Totales = reconcile.TotalesFON(detalle.FON)
	} else {
		resp.FOT = detalle.FOT
		resp.Totales = reconcile.TotalesFOT(detalle.FOT)
	}

	c.JSON(http.StatusOK, resp)
}
