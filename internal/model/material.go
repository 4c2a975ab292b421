package model

// TipoProyecto categoría de proyecto de instalación
type TipoProyecto string

const (
	ProyectoFON TipoProyecto = "FON"
	ProyectoFOT TipoProyecto = "FOT"
)

// FilaNormalizada fila canónica del formato simple (CSV/XLSX genérico).
// Inmutable una vez producida; los valores ya vienen coercionados por el
// normalizador (0 si la celda no era numérica).
type FilaNormalizada struct {
	Code      string
	Desc      string
	IngFot    float64
	IngFon    float64
	OutFot    float64
	OutFon    float64
	StockReal float64
	Diff      float64
}

// FilaProyecto fila del formato maestro (hoja MAESTRO).
// Las cantidades se redondean al entero más cercano al extraerlas.
type FilaProyecto struct {
	Proyecto    string // en mayúsculas; FON o cualquier otra etiqueta
	Code        string
	Desc        string
	Triot       string
	Instalado   int
	Despunte    int
	Rebajado    int
	IngresosSap int
	StockReal   int // conteo físico; 0 significa ausente
}

// Resumen entrada acumulada por código de material.
// StockReal guarda el último valor positivo visto en orden de entrada;
// Diff no se acumula de las filas, se deriva (ver reconcile).
type Resumen struct {
	Code           string  `json:"code"`
	Desc           string  `json:"desc"`
	IngFot         float64 `json:"ingFot"`
	IngFon         float64 `json:"ingFon"`
	OutFot         float64 `json:"outFot"`
	OutFon         float64 `json:"outFon"`
	DespuntesTotal float64 `json:"despuntesTotal"`
	StockReal      float64 `json:"stockReal"`
	Diff           float64 `json:"diff"`
}

// ResumenCalculado fila de resumen con los saldos derivados para
// presentación. Se recalcula en cada lectura, nunca se almacena.
type ResumenCalculado struct {
	Resumen
	TotalIng   float64 `json:"totalIng"`
	TotalOut   float64 `json:"totalOut"`
	SaldoFot   float64 `json:"saldoFot"`
	SaldoFon   float64 `json:"saldoFon"`
	TotalSaldo float64 `json:"totalSaldo"`
}

// LineaFON línea de detalle FON por zona TRIOT.
// Dif = Plano - Sap: positivo significa rebaja pendiente en SAP.
type LineaFON struct {
	Triot     string  `json:"triot"`
	Plano     float64 `json:"plano"`
	Despuntes float64 `json:"despuntes"`
	Sap       float64 `json:"sap"`
	Dif       float64 `json:"dif"`
}

// LineaFOT línea de detalle FOT por zona TRIOT
type LineaFOT struct {
	Triot     string  `json:"triot"`
	Ingresos  float64 `json:"ingresos"`
	Instalado float64 `json:"instalado"`
	Sap       float64 `json:"sap"`
	Dif       float64 `json:"dif"`
}

// Detalle desglose por proyecto de un código; listas en orden de entrada
type Detalle struct {
	FON []LineaFON `json:"FON"`
	FOT []LineaFOT `json:"FOT"`
}

// EstadoRebaja clasificación del pendiente de rebaja de una línea FON
type EstadoRebaja string

const (
	RebajaPendiente EstadoRebaja = "Rebajar" // SAP aún no descuenta todo lo instalado
	RebajaAjuste    EstadoRebaja = "Ajustar" // SAP descontó más de lo instalado
	RebajaOK        EstadoRebaja = "OK"
)

// TotalesDetalle totales del pie de la vista de detalle
type TotalesDetalle struct {
	Instalado float64 `json:"instalado"`
	Despuntes float64 `json:"despuntes"`
	Sap       float64 `json:"sap"`
	Dif       float64 `json:"dif"`
}
