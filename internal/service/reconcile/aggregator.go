package reconcile

import "github.com/CarlosATO/cierre-telefonica/internal/model"

// AggregateSimple pliega filas del formato simple en el resumen por código.
// Una sola pasada de izquierda a derecha:
//   - la fila sin código se descarta
//   - la primera fila de un código siembra la entrada completa
//   - las siguientes suman ingFot/ingFon/outFot/outFon
//   - stockReal y diff se sobrescriben sólo con valores distintos de cero
//     (gana el último no nulo, no se acumulan)
//
// El resumen sale en orden de primera aparición de cada código.
func AggregateSimple(rows []model.FilaNormalizada) []model.Resumen {
	byCode := make(map[string]*model.Resumen, len(rows))
	order := make([]string, 0, len(rows))

	for _, r := range rows {
		if r.Code == "" {
			continue
		}
		entry, ok := byCode[r.Code]
		if !ok {
			seed := model.Resumen{
				Code:      r.Code,
				Desc:      r.Desc,
				IngFot:    r.IngFot,
				IngFon:    r.IngFon,
				OutFot:    r.OutFot,
				OutFon:    r.OutFon,
				StockReal: r.StockReal,
				Diff:      r.Diff,
			}
			byCode[r.Code] = &seed
			order = append(order, r.Code)
			continue
		}
		entry.IngFot += r.IngFot
		entry.IngFon += r.IngFon
		entry.OutFot += r.OutFot
		entry.OutFon += r.OutFon
		if r.StockReal != 0 {
			entry.StockReal = r.StockReal
		}
		if r.Diff != 0 {
			entry.Diff = r.Diff
		}
	}

	resumen := make([]model.Resumen, 0, len(order))
	for _, code := range order {
		resumen = append(resumen, *byCode[code])
	}
	return resumen
}

// ResultadoMaestro resumen y detalle producidos por la pasada maestra
type ResultadoMaestro struct {
	Resumen []model.Resumen
	Detalle map[string]*model.Detalle
}

// AggregateMaster pliega filas del maestro en resumen + detalle por código.
// Una sola pasada; el orden de entrada importa: decide qué conteo físico
// queda (gana el último positivo) y el orden de las líneas de detalle.
// Todo proyecto que no sea FON cae al balde FOT.
// El diff autoritativo NO se calcula aquí; ver ApplyDiff.
func AggregateMaster(rows []model.FilaProyecto) ResultadoMaestro {
	byCode := make(map[string]*model.Resumen, len(rows))
	detalle := make(map[string]*model.Detalle, len(rows))
	order := make([]string, 0, len(rows))

	for _, r := range rows {
		if r.Code == "" {
			continue
		}
		entry, ok := byCode[r.Code]
		if !ok {
			entry = &model.Resumen{Code: r.Code, Desc: r.Desc}
			byCode[r.Code] = entry
			detalle[r.Code] = &model.Detalle{FON: []model.LineaFON{}, FOT: []model.LineaFOT{}}
			order = append(order, r.Code)
		}
		d := detalle[r.Code]

		// el último conteo físico positivo manda; 0 nunca pisa un valor previo
		if r.StockReal > 0 {
			entry.StockReal = float64(r.StockReal)
		}
		entry.DespuntesTotal += float64(r.Despunte)

		dif := float64(r.Instalado - r.Rebajado)
		if r.Proyecto == string(model.ProyectoFON) {
			entry.OutFon += float64(r.Instalado)
			entry.IngFon += float64(r.IngresosSap)
			d.FON = append(d.FON, model.LineaFON{
				Triot:     r.Triot,
				Plano:     float64(r.Instalado),
				Despuntes: float64(r.Despunte),
				Sap:       float64(r.Rebajado),
				Dif:       dif,
			})
		} else {
			entry.OutFot += float64(r.Instalado)
			entry.IngFot += float64(r.IngresosSap)
			d.FOT = append(d.FOT, model.LineaFOT{
				Triot:     r.Triot,
				Ingresos:  float64(r.IngresosSap),
				Instalado: float64(r.Instalado),
				Sap:       float64(r.Rebajado),
				Dif:       dif,
			})
		}
	}

	resumen := make([]model.Resumen, 0, len(order))
	for _, code := range order {
		resumen = append(resumen, *byCode[code])
	}
	return ResultadoMaestro{Resumen: resumen, Detalle: detalle}
}
