// Package ingest normaliza hojas de cálculo de ventas, productos y traspasos
// exportadas por TPV y almacenes a filas tipadas listas para analítica.
//
// El paquete no hace I/O: recibe filas crudas (cabecera → valor) con el rol de
// hoja ya asignado y devuelve filas normalizadas más una lista de errores
// legibles con número de fila.
package ingest

// Value es el valor crudo de una celda: string, numérico, bool, time.Time o nil
// (celda vacía).
type Value = any

// Cell par cabecera/valor usado para construir filas en orden.
type Cell struct {
	Header string
	Value  Value
}

// Row asociación ordenada cabecera → valor. Conserva el orden de inserción y
// las mayúsculas de la cabecera original.
type Row struct {
	headers []string
	values  map[string]Value
}

// NewRow construye una fila a partir de celdas en orden.
func NewRow(cells ...Cell) Row {
	r := Row{
		headers: make([]string, 0, len(cells)),
		values:  make(map[string]Value, len(cells)),
	}
	for _, c := range cells {
		r.Set(c.Header, c.Value)
	}
	return r
}

// Set asigna el valor de una cabecera. Si ya existe, reemplaza el valor sin
// cambiar su posición.
func (r *Row) Set(header string, v Value) {
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	if _, ok := r.values[header]; !ok {
		r.headers = append(r.headers, header)
	}
	r.values[header] = v
}

// Get devuelve el valor de una cabecera exacta.
func (r Row) Get(header string) (Value, bool) {
	v, ok := r.values[header]
	return v, ok
}

// Headers devuelve las cabeceras en orden de inserción.
func (r Row) Headers() []string {
	out := make([]string, len(r.headers))
	copy(out, r.headers)
	return out
}

// Len número de celdas.
func (r Row) Len() int { return len(r.headers) }

// IsBlank indica si todas las celdas están vacías.
func (r Row) IsBlank() bool {
	for _, h := range r.headers {
		if !isEmpty(r.values[h]) {
			return false
		}
	}
	return true
}
