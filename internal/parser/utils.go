package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var espacios = regexp.MustCompile(`\s+`)

// NormalizeHeader normaliza un encabezado de columna: recorta extremos,
// elimina saltos de línea y tabuladores y colapsa espacios internos.
// El maestro trae variantes con relleno tipo " STOCK  REAL  ".
func NormalizeHeader(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "\n", " ")
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\t", " ")
	return espacios.ReplaceAllString(name, " ")
}

// ToNumber convierte el valor de una celda a número.
// Nunca falla: celda vacía o no numérica vale 0.
func ToNumber(val string) float64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	// separador de miles
	val = strings.ReplaceAll(val, ",", "")
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return f
}

// RoundInt redondea al entero más cercano
func RoundInt(v float64) int {
	return int(math.Round(v))
}
