package store

import (
	"strings"
	"sync"

	"github.com/CarlosATO/cierre-telefonica/internal/model"
)

// MemoryStore instantánea en memoria del resumen y detalle vigentes.
// La instantánea se sustituye completa en cada carga exitosa (Replace);
// nunca se muta en sitio, así los lectores siempre ven un estado íntegro.
// No hay persistencia: reiniciar el proceso parte de vacío.
type MemoryStore struct {
	mu      sync.RWMutex
	resumen []model.Resumen
	detalle map[string]*model.Detalle
	informe *model.InformeCarga
}

// NewMemoryStore crea el almacén vacío
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		detalle: make(map[string]*model.Detalle),
	}
}

// Replace sustituye la instantánea completa de forma atómica
func (s *MemoryStore) Replace(resumen []model.Resumen, detalle map[string]*model.Detalle, informe *model.InformeCarga) {
	if detalle == nil {
		detalle = make(map[string]*model.Detalle)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumen = resumen
	s.detalle = detalle
	s.informe = informe
}

// Resumen copia del resumen vigente, opcionalmente filtrado por subcadena:
// el código se compara literal, la descripción sin distinguir mayúsculas.
func (s *MemoryStore) Resumen(buscar string) []model.Resumen {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Resumen, 0, len(s.resumen))
	desc := strings.ToLower(buscar)
	for _, r := range s.resumen {
		if buscar != "" &&
			!strings.Contains(strings.ToLower(r.Desc), desc) &&
			!strings.Contains(r.Code, buscar) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Detalle desglose por proyecto de un código
func (s *MemoryStore) Detalle(code string) (model.Detalle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.detalle[code]
	if !ok {
		return model.Detalle{}, false
	}
	return *d, true
}

// Count número de materiales en la instantánea vigente
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.resumen)
}

// Informe informe de la última carga completada; nil si no hubo ninguna
func (s *MemoryStore) Informe() *model.InformeCarga {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.informe
}
