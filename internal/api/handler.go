// Package api expone la API JSON que consume el panel: estado, cargas y
// consulta de resumen y detalle por material.
package api

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/CarlosATO/cierre-telefonica/internal/config"
	"github.com/CarlosATO/cierre-telefonica/internal/importer"
	"github.com/CarlosATO/cierre-telefonica/internal/service/store"
)

// Handler procesador de la API
type Handler struct {
	store *store.MemoryStore
	loads *importer.Coordinator

	mu  sync.RWMutex // protege cfg frente a PATCH /config
	cfg *config.AppConfig
}

// NewHandler crea el procesador de la API
func NewHandler(st *store.MemoryStore, loads *importer.Coordinator, cfg *config.AppConfig) *Handler {
	return &Handler{
		store: st,
		loads: loads,
		cfg:   cfg,
	}
}

// RegisterRoutes registra las rutas de la API
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// estado del sistema
	router.GET("/status", h.GetStatus)

	// cargas de datos
	router.POST("/carga", h.CargarArchivo)
	router.POST("/maestro", h.CargarMaestro)

	// consulta de materiales
	router.GET("/materiales", h.ListMateriales)
	router.GET("/materiales/:code/detalle/:tipo", h.GetDetalle)

	// configuración del maestro
	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)
}

// masterSource ruta y hoja vigentes del maestro
func (h *Handler) masterSource() (path, sheet string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return config.ResolveMasterPath(h.cfg), h.cfg.Data.MasterSheet
}
