package parser

import (
	"strings"

	"github.com/CarlosATO/cierre-telefonica/internal/model"
)

// HojaMaestro nombre de la hoja esperada en el libro maestro
const HojaMaestro = "MAESTRO"

// Campos lógicos del formato maestro
const (
	colProyecto    = "proyecto"
	colCode        = "code"
	colDesc        = "desc"
	colTriot       = "triot"
	colInstalado   = "instalado"
	colDespunte    = "despunte"
	colRebajado    = "rebajado"
	colIngresosSap = "ingresosSap"
	colStockReal   = "stockReal"
)

// MapMasterColumns localiza los índices de columna del formato maestro.
// Compara tras normalizar espacios y pasar a mayúsculas, lo que absorbe
// las variantes con relleno (" INSTALADO ", " STOCK  REAL  ").
// Si un encabezado se repite gana la primera aparición.
func MapMasterColumns(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	set := func(campo string, i int) {
		if _, ok := idx[campo]; !ok {
			idx[campo] = i
		}
	}
	for i, col := range header {
		switch strings.ToUpper(NormalizeHeader(col)) {
		case "PROYECTO":
			set(colProyecto, i)
		case "CATALOGO", "CATÁLOGO":
			set(colCode, i)
		case "CATALOGO - DESCRIPCION", "CATALOGO - DESCRIPCIÓN", "CATÁLOGO - DESCRIPCIÓN":
			set(colDesc, i)
		case "TRIOT":
			set(colTriot, i)
		case "INSTALADO":
			set(colInstalado, i)
		case "DESPUNTE":
			set(colDespunte, i)
		case "REBAJADO":
			set(colRebajado, i)
		case "INGRESOS SAP", "INGRESOS_SAP", "INGRESOS":
			set(colIngresosSap, i)
		case "STOCK REAL":
			set(colStockReal, i)
		}
	}
	return idx
}

// ParseMasterRow extrae una fila de proyecto del maestro.
// Cantidades redondeadas al entero más cercano; proyecto en mayúsculas.
func ParseMasterRow(row []string, cols map[string]int) model.FilaProyecto {
	get := func(campo string) string {
		if i, ok := cols[campo]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}
	return model.FilaProyecto{
		Proyecto:    strings.ToUpper(strings.TrimSpace(get(colProyecto))),
		Code:        strings.TrimSpace(get(colCode)),
		Desc:        strings.TrimSpace(get(colDesc)),
		Triot:       strings.TrimSpace(get(colTriot)),
		Instalado:   RoundInt(ToNumber(get(colInstalado))),
		Despunte:    RoundInt(ToNumber(get(colDespunte))),
		Rebajado:    RoundInt(ToNumber(get(colRebajado))),
		IngresosSap: RoundInt(ToNumber(get(colIngresosSap))),
		StockReal:   RoundInt(ToNumber(get(colStockReal))),
	}
}
