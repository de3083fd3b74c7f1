package ingest

import "fmt"

// EntityKind tipo de entidad que aparece como prefijo en los errores de fila.
type EntityKind string

const (
	KindSales    EntityKind = "Sales"
	KindProduct  EntityKind = "Product"
	KindTransfer EntityKind = "Transfer"
)

// RowError rechazo explicable de una fila. Row es índice + 2 (cabecera en la fila 1).
type RowError struct {
	Kind       EntityKind
	Row        int
	Reason     string
	Identifier string
}

// String formato "<Kind> Row <n>: <reason>[ for <identifier>]".
func (e RowError) String() string {
	s := fmt.Sprintf("%s Row %d: %s", e.Kind, e.Row, e.Reason)
	if e.Identifier != "" {
		s += " for " + e.Identifier
	}
	return s
}

// Razones de rechazo.
const (
	ReasonMissingStore       = "Missing Store"
	ReasonInvalidQuantity    = "Invalid Quantity/Subtotal"
	ReasonMissingDestination = "Missing Destination Store"
)

type outcome int

const (
	outcomeAccepted outcome = iota
	// outcomeDropped fila sin datos identificativos (vacía o sin SKU): ni salida ni error.
	outcomeDropped
	outcomeRejected
	// outcomeExcluded tienda administrativa de la lista negra: ni salida ni error.
	outcomeExcluded
)

// SheetStats recuento por hoja. Accepted+Dropped+Rejected+Excluded == Input.
type SheetStats struct {
	Input    int `json:"input"`
	Accepted int `json:"accepted"`
	Dropped  int `json:"dropped"`
	Rejected int `json:"rejected"`
	Excluded int `json:"excluded"`
}

// normalizeSheet aplica fn a cada fila en orden. El RowError de fn solo se usa
// con outcomeRejected.
func normalizeSheet[T any](rows []Row, fn func(ix keyIndex, rowNum int) (T, outcome, RowError)) ([]T, []RowError, SheetStats) {
	out := make([]T, 0, len(rows))
	var errs []RowError
	stats := SheetStats{Input: len(rows)}
	for i, row := range rows {
		item, oc, rerr := fn(indexRow(row), i+2)
		switch oc {
		case outcomeAccepted:
			out = append(out, item)
			stats.Accepted++
		case outcomeRejected:
			errs = append(errs, rerr)
			stats.Rejected++
		case outcomeExcluded:
			stats.Excluded++
		default:
			stats.Dropped++
		}
	}
	return out, errs, stats
}

func skuIdentifier(sku string) string {
	if sku == "" {
		return ""
	}
	return "SKU " + sku
}
