package ingest

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeKey forma canónica de una cabecera: minúsculas, sin espacios en los
// extremos y sin diacríticos ("  Artículo " → "articulo"). Es idempotente.
func NormalizeKey(s string) string {
	s = strings.ToLower(s)
	// El chain guarda estado interno: uno nuevo por llamada.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(out)
}

func isEmpty(v Value) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	}
	return false
}

// toText convierte un valor de celda a texto recortado. Los números se escriben
// sin notación exponencial ni ceros sobrantes (12345 → "12345").
func toText(v Value) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(dateLayout)
	case interface{ String() string }:
		return strings.TrimSpace(x.String())
	}
	return ""
}
