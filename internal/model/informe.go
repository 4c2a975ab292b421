package model

import "time"

// Formatos de origen de una carga
const (
	FormatoCSV     = "csv"
	FormatoXLSX    = "xlsx"
	FormatoXLS     = "xls"
	FormatoMaestro = "maestro"
)

// InformeCarga resultado de una carga completada.
// Las filas sin código se descartan en silencio; aquí sólo se cuentan
// para poder auditarlas.
type InformeCarga struct {
	LoadID           string        `json:"loadId"`
	Filename         string        `json:"filename"`
	Formato          string        `json:"formato"`
	Hoja             string        `json:"hoja,omitempty"`
	TotalFilas       int           `json:"totalFilas"`
	FilasImportadas  int           `json:"filasImportadas"`
	FilasDescartadas int           `json:"filasDescartadas"`
	Materiales       int           `json:"materiales"`
	Duracion         time.Duration `json:"duracion"`
	FechaCarga       time.Time     `json:"fechaCarga"`
}
