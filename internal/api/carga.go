package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CarlosATO/cierre-telefonica/internal/importer"
)

// CargarArchivo carga un CSV/XLSX/XLS genérico subido como multipart
// POST /api/carga
func (h *Handler) CargarArchivo(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se encontró el archivo en el formulario"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se pudo abrir el archivo subido"})
		return
	}
	defer f.Close()

	informe, err := h.loads.LoadUpload(c.Request.Context(), fileHeader.Filename, f)
	if err != nil {
		if errors.Is(err, importer.ErrFormatoNoSoportado) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error cargando archivo: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, informe)
}

// CargarMaestro carga el libro maestro desde su ruta fija configurada
// POST /api/maestro
func (h *Handler) CargarMaestro(c *gin.Context) {
	path, sheet := h.masterSource()

	informe, err := h.loads.LoadMaster(c.Request.Context(), path, sheet)
	if err != nil {
		// el estado previo queda visible: la instantánea sólo se
		// sustituye al completar la carga
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error cargando Excel: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, informe)
}
