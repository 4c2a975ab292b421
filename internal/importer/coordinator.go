// Package importer coordina las cargas de archivos: decodifica el origen
// (CSV, XLSX, XLS o el libro maestro), pliega las filas con reconcile y
// sustituye la instantánea del almacén sólo si la carga completa bien.
// Una carga nueva cancela la que esté en vuelo; la última carga completada
// es la que queda visible.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"

	"github.com/CarlosATO/cierre-telefonica/internal/model"
	"github.com/CarlosATO/cierre-telefonica/internal/parser"
	"github.com/CarlosATO/cierre-telefonica/internal/service/reconcile"
	"github.com/CarlosATO/cierre-telefonica/internal/service/store"
)

// ErrFormatoNoSoportado extensión de archivo no admitida.
// El texto es el mensaje que ve el usuario.
var ErrFormatoNoSoportado = errors.New("Formato no soportado. Subir CSV o XLSX.")

// Coordinator serializa las cargas sobre un almacén
type Coordinator struct {
	store *store.MemoryStore

	ctrl   sync.Mutex // protege cancel
	cancel context.CancelFunc
	turno  sync.Mutex // una carga a la vez
}

// NewCoordinator crea el coordinador de cargas
func NewCoordinator(st *store.MemoryStore) *Coordinator {
	return &Coordinator{store: st}
}

// adquirir cancela la carga en vuelo y toma el turno de la nueva.
// El func devuelto libera el turno y debe llamarse con defer.
func (c *Coordinator) adquirir(parent context.Context) (context.Context, func()) {
	c.ctrl.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	c.cancel = cancel
	c.ctrl.Unlock()

	c.turno.Lock()
	return ctx, func() {
		c.turno.Unlock()
		cancel()
	}
}

// LoadUpload carga un archivo subido del formato simple (ruta genérica).
// La extensión decide el decodificador; cualquier otra se rechaza sin
// tocar el estado.
func (c *Coordinator) LoadUpload(parent context.Context, filename string, r io.Reader) (*model.InformeCarga, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	var formato string
	switch ext {
	case ".csv":
		formato = model.FormatoCSV
	case ".xlsx":
		formato = model.FormatoXLSX
	case ".xls":
		formato = model.FormatoXLS
	default:
		return nil, ErrFormatoNoSoportado
	}

	ctx, done := c.adquirir(parent)
	defer done()
	start := time.Now()

	records, err := decodeRecords(formato, r)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filas := parser.FilasDesdeRegistros(records)
	rows := make([]model.FilaNormalizada, 0, len(filas))
	descartadas := 0
	for _, fila := range filas {
		n := parser.Normalize(fila)
		if n.Code == "" {
			descartadas++
		}
		rows = append(rows, n)
	}

	resumen := reconcile.AggregateSimple(rows)
	informe := &model.InformeCarga{
		LoadID:           uuid.New().String(),
		Filename:         filepath.Base(filename),
		Formato:          formato,
		TotalFilas:       len(rows),
		FilasImportadas:  len(rows) - descartadas,
		FilasDescartadas: descartadas,
		Materiales:       len(resumen),
		Duracion:         time.Since(start),
		FechaCarga:       time.Now(),
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// la ruta simple no trae desglose por proyecto: detalle vacío
	c.store.Replace(resumen, nil, informe)
	return informe, nil
}

// LoadMaster carga el libro maestro desde su ruta fija.
// Usa la hoja MAESTRO, o la primera si no existe. El diff autoritativo se
// calcula tras la agregación y pisa el que trajeran las filas.
func (c *Coordinator) LoadMaster(parent context.Context, path, sheet string) (*model.InformeCarga, error) {
	ctx, done := c.adquirir(parent)
	defer done()
	start := time.Now()

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir el maestro %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = parser.HojaMaestro
	}
	hoja := sheet
	list := f.GetSheetList()
	if !contains(list, hoja) {
		if len(list) == 0 {
			return nil, fmt.Errorf("el maestro %s no tiene hojas", filepath.Base(path))
		}
		hoja = list[0]
	}

	records, err := f.GetRows(hoja)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer la hoja %s: %w", hoja, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("la hoja %s no tiene filas de datos", hoja)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cols := parser.MapMasterColumns(records[0])
	filas := make([]model.FilaProyecto, 0, len(records)-1)
	descartadas := 0
	for _, row := range records[1:] {
		fp := parser.ParseMasterRow(row, cols)
		if fp.Code == "" {
			descartadas++
		}
		filas = append(filas, fp)
	}

	res := reconcile.AggregateMaster(filas)
	reconcile.ApplyDiff(res.Resumen)

	informe := &model.InformeCarga{
		LoadID:           uuid.New().String(),
		Filename:         filepath.Base(path),
		Formato:          model.FormatoMaestro,
		Hoja:             hoja,
		TotalFilas:       len(filas),
		FilasImportadas:  len(filas) - descartadas,
		FilasDescartadas: descartadas,
		Materiales:       len(res.Resumen),
		Duracion:         time.Since(start),
		FechaCarga:       time.Now(),
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.store.Replace(res.Resumen, res.Detalle, informe)
	return informe, nil
}

// decodeRecords decodifica el origen a una matriz encabezado + registros
func decodeRecords(formato string, r io.Reader) ([][]string, error) {
	switch formato {
	case model.FormatoCSV:
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1 // filas desparejas se toleran
		cr.TrimLeadingSpace = true
		records, err := cr.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("CSV inválido: %w", err)
		}
		return records, nil
	case model.FormatoXLSX:
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, fmt.Errorf("XLSX inválido: %w", err)
		}
		defer f.Close()
		sheet := f.GetSheetName(0)
		records, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("no se pudo leer la hoja %s: %w", sheet, err)
		}
		return records, nil
	case model.FormatoXLS:
		return decodeXLS(r)
	}
	return nil, ErrFormatoNoSoportado
}

// decodeXLS decodifica el formato binario antiguo. La librería sólo lee
// desde disco, así que pasa por un archivo temporal.
func decodeXLS(r io.Reader) ([][]string, error) {
	tmp, err := os.CreateTemp("", "cierre_xls_*.xls")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, err
	}
	tmp.Close()

	book, err := xls.OpenFile(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("XLS inválido: %w", err)
	}
	sheet, err := book.GetSheet(0)
	if err != nil || sheet == nil {
		return nil, errors.New("el XLS no tiene hojas")
	}

	records := [][]string{}
	for _, row := range sheet.GetRows() {
		vals := []string{}
		for _, col := range row.GetCols() {
			vals = append(vals, col.GetString())
		}
		records = append(records, vals)
	}
	return records, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
