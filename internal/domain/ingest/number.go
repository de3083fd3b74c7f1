package ingest

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrEmptyValue celda vacía.
	ErrEmptyValue = errors.New("valor vacío")
	// ErrNotANumber el contenido no es un número.
	ErrNotANumber = errors.New("no es un número")
)

var currencyStripper = strings.NewReplacer("€", "", "$", "", " ", "", "\u00a0", "")

// ParseNumber convierte una celda a float64 asumiendo formato europeo:
// "1.200,50 €" → 1200.5, "6002,50" → 6002.5. Quita también los espacios y
// NBSP interiores que algunos TPV usan como separador de miles ("1 250,75").
// Con solo coma, la coma es siempre decimal ("1,200" → 1.2).
func ParseNumber(v Value) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, ErrEmptyValue
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case string:
		return parseNumberString(x)
	}
	return 0, ErrNotANumber
}

func parseNumberString(s string) (float64, error) {
	s = strings.TrimSpace(currencyStripper.Replace(s))
	if s == "" {
		return 0, ErrEmptyValue
	}
	hasComma := strings.Contains(s, ",")
	switch {
	case hasComma && strings.Contains(s, "."):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrNotANumber
	}
	return finite(f)
}

func finite(f float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotANumber
	}
	return f, nil
}

// NumberOrNaN variante de ParseNumber que devuelve NaN en lugar de error.
func NumberOrNaN(v Value) float64 {
	f, err := ParseNumber(v)
	if err != nil {
		return math.NaN()
	}
	return f
}

// optionalNumber nil si la celda falta o no es numérica.
func optionalNumber(v Value, ok bool) *float64 {
	if !ok {
		return nil
	}
	f, err := ParseNumber(v)
	if err != nil {
		return nil
	}
	return &f
}
