package parser

import (
	"strings"

	"github.com/CarlosATO/cierre-telefonica/internal/model"
)

// Fila fila cruda tal como sale del decodificador: columna -> valor de celda
type Fila map[string]string

// Listas de alias por campo lógico, en orden de prioridad.
// Los exports llegan con encabezados en varios idiomas y formatos;
// gana el primer alias presente en la fila.
var (
	aliasCode      = []string{"code", "Codigo", "CODIGO", "Material", "material"}
	aliasDesc      = []string{"desc", "Descripcion", "DESCRIPCION", "Descripción", "descripcion", "Desc"}
	aliasIngFot    = []string{"ingFot", "IngFOT", "Ingresos FOT", "ing_fot"}
	aliasIngFon    = []string{"ingFon", "IngFON", "Ingresos FON", "ing_fon"}
	aliasOutFot    = []string{"outFot", "OutFOT", "Salidas FOT", "out_fot"}
	aliasOutFon    = []string{"outFon", "OutFON", "Salidas FON", "out_fon"}
	aliasStockReal = []string{"stockReal", "Stock", "Stock Real", "stock_real"}
	aliasDiff      = []string{"diff", "Dif", "Diferencia", "dif"}
)

// pick devuelve el valor del primer alias presente en la fila
func pick(row Fila, aliases []string) (string, bool) {
	for _, a := range aliases {
		if v, ok := row[a]; ok {
			return v, true
		}
	}
	return "", false
}

func pickString(row Fila, aliases []string) string {
	v, _ := pick(row, aliases)
	return strings.TrimSpace(v)
}

func pickNumber(row Fila, aliases []string) float64 {
	v, ok := pick(row, aliases)
	if !ok {
		return 0
	}
	return ToNumber(v)
}

// Normalize convierte una fila cruda al formato canónico.
// No valida el código: una fila con código vacío pasa y el agregador
// la descarta después.
func Normalize(row Fila) model.FilaNormalizada {
	return model.FilaNormalizada{
		Code:      pickString(row, aliasCode),
		Desc:      pickString(row, aliasDesc),
		IngFot:    pickNumber(row, aliasIngFot),
		IngFon:    pickNumber(row, aliasIngFon),
		OutFot:    pickNumber(row, aliasOutFot),
		OutFon:    pickNumber(row, aliasOutFon),
		StockReal: pickNumber(row, aliasStockReal),
		Diff:      pickNumber(row, aliasDiff),
	}
}

// FilasDesdeRegistros arma filas crudas a partir de encabezado + registros.
// La primera fila es el encabezado; las celdas que falten al final de un
// registro cuentan como vacías.
func FilasDesdeRegistros(records [][]string) []Fila {
	if len(records) < 2 {
		return nil
	}
	header := records[0]
	filas := make([]Fila, 0, len(records)-1)
	for _, rec := range records[1:] {
		fila := make(Fila, len(header))
		for i, col := range header {
			col = strings.TrimSpace(col)
			if col == "" {
				continue
			}
			if i < len(rec) {
				fila[col] = rec[i]
			} else {
				fila[col] = ""
			}
		}
		filas = append(filas, fila)
	}
	return filas
}
