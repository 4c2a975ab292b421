package reconcile

import (
	"testing"

	"github.com/CarlosATO/cierre-telefonica/internal/model"
)

// TestSaldoTeoricoYDiff identidad de conciliación:
// saldoTeorico = (ingFot+ingFon) - (outFot+outFon+despuntesTotal)
// diff = stockReal - saldoTeorico
func TestSaldoTeoricoYDiff(t *testing.T) {
	t.Parallel()

	r := model.Resumen{IngFot: 240000, IngFon: 640000, OutFot: 292919, OutFon: 189769, DespuntesTotal: 1200, StockReal: 52000}
	saldo := SaldoTeorico(r)
	if want := float64(240000+640000) - float64(292919+189769+1200); saldo != want {
		t.Fatalf("SaldoTeorico=%v, want %v", saldo, want)
	}

	resumen := []model.Resumen{r}
	ApplyDiff(resumen)
	if want := r.StockReal - saldo; resumen[0].Diff != want {
		t.Fatalf("Diff=%v, want %v", resumen[0].Diff, want)
	}
}

// TestApplyDiff_Signo negativo = faltante, positivo = superávit
func TestApplyDiff_Signo(t *testing.T) {
	t.Parallel()

	resumen := []model.Resumen{
		{Code: "faltante", IngFon: 100, OutFon: 20, StockReal: 10}, // teórico 80, físico 10
		{Code: "superavit", IngFon: 100, OutFon: 90, StockReal: 60}, // teórico 10, físico 60
		{Code: "cuadrado", IngFon: 100, OutFon: 40, StockReal: 60},
	}
	ApplyDiff(resumen)
	if resumen[0].Diff != -70 {
		t.Fatalf("faltante Diff=%v, want -70", resumen[0].Diff)
	}
	if resumen[1].Diff != 50 {
		t.Fatalf("superávit Diff=%v, want 50", resumen[1].Diff)
	}
	if resumen[2].Diff != 0 {
		t.Fatalf("cuadrado Diff=%v, want 0", resumen[2].Diff)
	}
}

// TestApplyDiff_PisaDiffPrevio el diff autoritativo pisa lo que trajera la fila
func TestApplyDiff_PisaDiffPrevio(t *testing.T) {
	t.Parallel()

	resumen := []model.Resumen{{IngFon: 10, OutFon: 10, StockReal: 5, Diff: 9999}}
	ApplyDiff(resumen)
	if resumen[0].Diff != 5 {
		t.Fatalf("Diff=%v, want 5", resumen[0].Diff)
	}
}

func TestDerive(t *testing.T) {
	t.Parallel()

	c := Derive(model.Resumen{IngFot: 580, IngFon: 5679, OutFot: 398, OutFon: 3957, DespuntesTotal: 10})
	if c.TotalIng != 6259 {
		t.Fatalf("TotalIng=%v, want 6259", c.TotalIng)
	}
	if c.TotalOut != 4365 {
		t.Fatalf("TotalOut=%v, want 4365", c.TotalOut)
	}
	if c.SaldoFot != 182 || c.SaldoFon != 1722 {
		t.Fatalf("saldos=%v/%v, want 182/1722", c.SaldoFot, c.SaldoFon)
	}
	if c.TotalSaldo != 182+1722-10 {
		t.Fatalf("TotalSaldo=%v, want %v", c.TotalSaldo, 182+1722-10)
	}
}

func TestClasificarRebaja(t *testing.T) {
	t.Parallel()

	if got := ClasificarRebaja(700); got != model.RebajaPendiente {
		t.Fatalf("dif 700 → %v, want Rebajar", got)
	}
	if got := ClasificarRebaja(-10); got != model.RebajaAjuste {
		t.Fatalf("dif -10 → %v, want Ajustar", got)
	}
	if got := ClasificarRebaja(0); got != model.RebajaOK {
		t.Fatalf("dif 0 → %v, want OK", got)
	}
}

func TestTotalesDetalle(t *testing.T) {
	t.Parallel()

	fon := TotalesFON([]model.LineaFON{
		{Plano: 12000, Despuntes: 200, Sap: 11500, Dif: 700},
		{Plano: 45000, Despuntes: 500, Sap: 45500, Dif: 0},
	})
	if fon.Instalado != 57000 || fon.Despuntes != 700 || fon.Sap != 57000 || fon.Dif != 700 {
		t.Fatalf("totales FON: %+v", fon)
	}

	fot := TotalesFOT([]model.LineaFOT{
		{Ingresos: 120000, Instalado: 110000, Sap: 110000, Dif: 0},
		{Ingresos: 120000, Instalado: 182919, Sap: 150000, Dif: 32919},
	})
	if fot.Instalado != 292919 || fot.Sap != 260000 || fot.Dif != 32919 {
		t.Fatalf("totales FOT: %+v", fot)
	}
	if fot.Despuntes != 0 {
		t.Fatalf("FOT no lleva despuntes: %v", fot.Despuntes)
	}
}
