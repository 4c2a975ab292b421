package store

import (
	"testing"

	"github.com/CarlosATO/cierre-telefonica/internal/model"
)

// TestNewMemoryStore el almacén nace vacío
func TestNewMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	if s.Count() != 0 {
		t.Errorf("almacén nuevo con %d materiales", s.Count())
	}
	if s.Informe() != nil {
		t.Errorf("almacén nuevo con informe: %+v", s.Informe())
	}
	if _, ok := s.Detalle("X"); ok {
		t.Error("Detalle sobre almacén vacío debería fallar")
	}
}

// TestReplace la carga sustituye la instantánea completa
func TestReplace(t *testing.T) {
	s := NewMemoryStore()
	s.Replace(
		[]model.Resumen{{Code: "A", Desc: "Cable ADSS"}},
		map[string]*model.Detalle{"A": {FON: []model.LineaFON{{Triot: "T1"}}}},
		&model.InformeCarga{Filename: "uno.xlsx", Materiales: 1},
	)
	if s.Count() != 1 {
		t.Fatalf("Count=%d, want 1", s.Count())
	}

	// una segunda carga no se mezcla con la primera
	s.Replace([]model.Resumen{{Code: "B"}, {Code: "C"}}, nil, &model.InformeCarga{Filename: "dos.csv"})
	if s.Count() != 2 {
		t.Fatalf("Count=%d, want 2", s.Count())
	}
	if _, ok := s.Detalle("A"); ok {
		t.Error("el detalle de la carga anterior sobrevivió al Replace")
	}
	if s.Informe().Filename != "dos.csv" {
		t.Errorf("Informe=%q, want dos.csv", s.Informe().Filename)
	}
}

// TestResumen_Filtro código literal, descripción sin mayúsculas
func TestResumen_Filtro(t *testing.T) {
	s := NewMemoryStore()
	s.Replace([]model.Resumen{
		{Code: "10302520211", Desc: "KIT Retención D.13,6mm"},
		{Code: "10302530374", Desc: "Cable ADSS 48 fo"},
	}, nil, nil)

	if got := s.Resumen(""); len(got) != 2 {
		t.Fatalf("sin filtro=%d, want 2", len(got))
	}
	if got := s.Resumen("adss"); len(got) != 1 || got[0].Code != "10302530374" {
		t.Fatalf("filtro por descripción: %+v", got)
	}
	if got := s.Resumen("2520211"); len(got) != 1 || got[0].Code != "10302520211" {
		t.Fatalf("filtro por código: %+v", got)
	}
	if got := s.Resumen("nada"); len(got) != 0 {
		t.Fatalf("filtro sin coincidencias: %+v", got)
	}
}

// TestResumen_OrdenPreservado el filtro no reordena
func TestResumen_OrdenPreservado(t *testing.T) {
	s := NewMemoryStore()
	s.Replace([]model.Resumen{{Code: "C"}, {Code: "A"}, {Code: "B"}}, nil, nil)
	got := s.Resumen("")
	if got[0].Code != "C" || got[1].Code != "A" || got[2].Code != "B" {
		t.Fatalf("orden alterado: %+v", got)
	}
}

func TestDetalle(t *testing.T) {
	s := NewMemoryStore()
	s.Replace(nil, map[string]*model.Detalle{
		"A": {
			FON: []model.LineaFON{{Triot: "T1", Plano: 100}},
			FOT: []model.LineaFOT{},
		},
	}, nil)

	d, ok := s.Detalle("A")
	if !ok {
		t.Fatal("Detalle(A) no encontrado")
	}
	if len(d.FON) != 1 || d.FON[0].Plano != 100 {
		t.Fatalf("detalle FON: %+v", d.FON)
	}
	if _, ok := s.Detalle("Z"); ok {
		t.Error("Detalle(Z) debería fallar")
	}
}
