// Package reconcile contiene la aritmética de conciliación: agregación por
// código de material, saldos teóricos y diferencia contra el stock físico.
// Todas las funciones son puras; asumen valores ya coercionados por el
// normalizador y no hacen comprobaciones defensivas.
package reconcile

import "github.com/CarlosATO/cierre-telefonica/internal/model"

// SaldoTeorico saldo teórico de una entrada: ingresos menos todas las
// salidas, contando los despuntes como consumo.
func SaldoTeorico(r model.Resumen) float64 {
	totalSalidas := r.OutFot + r.OutFon + r.DespuntesTotal
	return (r.IngFot + r.IngFon) - totalSalidas
}

// ApplyDiff fija el diff autoritativo de cada entrada tras la pasada
// maestra: stock físico menos saldo teórico. Negativo = faltante en
// terreno, positivo = superávit. Pisa cualquier diff que trajeran las
// filas; la ruta simple NO pasa por aquí y conserva el diff de origen.
func ApplyDiff(resumen []model.Resumen) {
	for i := range resumen {
		resumen[i].Diff = resumen[i].StockReal - SaldoTeorico(resumen[i])
	}
}

// Derive calcula los saldos de presentación de una entrada. Se recalculan
// en cada lectura sobre la instantánea vigente, nunca se almacenan.
func Derive(r model.Resumen) model.ResumenCalculado {
	saldoFot := r.IngFot - r.OutFot
	saldoFon := r.IngFon - r.OutFon
	return model.ResumenCalculado{
		Resumen:    r,
		TotalIng:   r.IngFot + r.IngFon,
		TotalOut:   r.OutFot + r.OutFon + r.DespuntesTotal,
		SaldoFot:   saldoFot,
		SaldoFon:   saldoFon,
		TotalSaldo: saldoFot + saldoFon - r.DespuntesTotal,
	}
}

// DeriveAll aplica Derive a todo el resumen conservando el orden
func DeriveAll(resumen []model.Resumen) []model.ResumenCalculado {
	out := make([]model.ResumenCalculado, len(resumen))
	for i, r := range resumen {
		out[i] = Derive(r)
	}
	return out
}

// ClasificarRebaja estado del pendiente de rebaja de una línea FON.
// El signo aquí tiene el sentido INVERSO al diff de nivel superior:
// positivo = a SAP le falta rebajar, negativo = SAP rebajó de más.
func ClasificarRebaja(dif float64) model.EstadoRebaja {
	switch {
	case dif > 0:
		return model.RebajaPendiente
	case dif < 0:
		return model.RebajaAjuste
	default:
		return model.RebajaOK
	}
}

// TotalesFON pie de la vista de detalle FON
func TotalesFON(lineas []model.LineaFON) model.TotalesDetalle {
	var t model.TotalesDetalle
	for _, l := range lineas {
		t.Instalado += l.Plano
		t.Despuntes += l.Despuntes
		t.Sap += l.Sap
		t.Dif += l.Dif
	}
	return t
}

// TotalesFOT pie de la vista de detalle FOT
func TotalesFOT(lineas []model.LineaFOT) model.TotalesDetalle {
	var t model.TotalesDetalle
	for _, l := range lineas {
		t.Instalado += l.Instalado
		t.Sap += l.Sap
		t.Dif += l.Dif
	}
	return t
}
