// Utilidad de diagnóstico: imprime las hojas del libro maestro y las
// primeras cinco filas de cada una. No forma parte del panel.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/CarlosATO/cierre-telefonica/internal/config"
)

func main() {
	archivo := flag.String("archivo", "", "ruta del libro a inspeccionar (por defecto el maestro configurado)")
	flag.Parse()

	path := *archivo
	if path == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			cfg = config.DefaultConfig()
		}
		path = config.ResolveMasterPath(cfg)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		log.Fatalf("No se pudo abrir %s: %v", path, err)
	}
	defer f.Close()

	hojas := f.GetSheetList()
	fmt.Printf("Hojas: %s\n", strings.Join(hojas, ", "))

	for _, hoja := range hojas {
		rows, err := f.GetRows(hoja)
		if err != nil {
			fmt.Printf("\nHoja: %s  (error leyendo filas: %v)\n", hoja, err)
			continue
		}
		fmt.Printf("\nHoja: %s  Filas: %d\n", hoja, len(rows))
		for i, row := range rows {
			if i >= 5 {
				break
			}
			fmt.Printf("  %s\n", strings.Join(row, " | "))
		}
	}
}
