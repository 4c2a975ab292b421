package server

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/CarlosATO/cierre-telefonica/internal/api"
	"github.com/CarlosATO/cierre-telefonica/internal/config"
	"github.com/CarlosATO/cierre-telefonica/internal/importer"
	"github.com/CarlosATO/cierre-telefonica/internal/service/store"
)

// Server servidor HTTP local del panel
type Server struct {
	router *gin.Engine
	store  *store.MemoryStore
	api    *api.Handler
}

// NewServer crea el servidor con su almacén y coordinador de cargas
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	st := store.NewMemoryStore()
	coordinator := importer.NewCoordinator(st)
	handler := api.NewHandler(st, coordinator, cfg)

	s := &Server{
		router: gin.Default(),
		store:  st,
		api:    handler,
	}

	s.setupRoutes(cfg)
	return s
}

// setupRoutes configura rutas de la API y estáticos
func (s *Server) setupRoutes(cfg *config.AppConfig) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// API
	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	if cfg.Server.DevMode {
		// modo desarrollo: el frontend corre en el dev server de Vite
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
		return
	}

	// producción: estáticos desde disco si el directorio existe
	webDir := cfg.Server.WebDir
	if webDir == "" {
		return
	}
	index := filepath.Join(webDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		return
	}

	s.router.Static("/assets", filepath.Join(webDir, "assets"))
	s.router.GET("/", func(c *gin.Context) {
		c.File(index)
	})
	// fallback SPA
	s.router.NoRoute(func(c *gin.Context) {
		c.File(index)
	})
}

// Run arranca el servidor
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// GetStore almacén del servidor (para pruebas)
func (s *Server) GetStore() *store.MemoryStore {
	return s.store
}
