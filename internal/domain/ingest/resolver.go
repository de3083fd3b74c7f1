package ingest

import (
	"sort"
	"strings"
)

// Strategy forma de casar una cabecera normalizada con un campo.
type Strategy int

const (
	// StrategyExact la cabecera normalizada es igual a una palabra clave.
	StrategyExact Strategy = iota
	// StrategySubstring la cabecera contiene la palabra clave o la palabra clave contiene la cabecera.
	StrategySubstring
	// StrategyPredicate predicado estructural sobre la cabecera (p. ej. "fecha" y "almac").
	StrategyPredicate
)

func (s Strategy) String() string {
	switch s {
	case StrategyExact:
		return "exact"
	case StrategySubstring:
		return "substring"
	case StrategyPredicate:
		return "predicate"
	}
	return "unknown"
}

// Field describe un campo semántico y cómo localizarlo en cabeceras arbitrarias.
// Las palabras clave se guardan ya normalizadas.
type Field struct {
	Name       string
	Keywords   []string
	Strategies []Strategy
	Predicate  func(key string) bool
	// Exclude cabeceras que contengan alguno de estos tokens nunca casan.
	Exclude []string
}

// NewField crea un campo con diccionario (exacto y luego subcadena).
func NewField(name string, keywords ...string) Field {
	kws := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if n := NormalizeKey(k); n != "" {
			kws = append(kws, n)
		}
	}
	return Field{
		Name:       name,
		Keywords:   kws,
		Strategies: []Strategy{StrategyExact, StrategySubstring},
	}
}

// WithPredicate añade la heurística estructural, siempre después del diccionario.
func (f Field) WithPredicate(p func(key string) bool) Field {
	f.Predicate = p
	f.Strategies = append(append([]Strategy(nil), f.Strategies...), StrategyPredicate)
	return f
}

// ExactOnly restringe el campo a coincidencia exacta.
func (f Field) ExactOnly() Field {
	f.Strategies = []Strategy{StrategyExact}
	return f
}

// Excluding descarta cabeceras que contengan alguno de los tokens.
func (f Field) Excluding(tokens ...string) Field {
	ex := append([]string(nil), f.Exclude...)
	for _, t := range tokens {
		ex = append(ex, NormalizeKey(t))
	}
	f.Exclude = ex
	return f
}

// PredicateField campo que solo se resuelve por predicado estructural.
func PredicateField(name string, p func(key string) bool) Field {
	return Field{Name: name, Strategies: []Strategy{StrategyPredicate}, Predicate: p}
}

// ContainsAll predicado: la cabecera contiene todos los tokens.
func ContainsAll(tokens ...string) func(string) bool {
	return func(key string) bool {
		for _, t := range tokens {
			if !strings.Contains(key, t) {
				return false
			}
		}
		return true
	}
}

// ContainsButNot predicado: contiene want y no contiene ninguno de not.
func ContainsButNot(want string, not ...string) func(string) bool {
	return func(key string) bool {
		if !strings.Contains(key, want) {
			return false
		}
		for _, n := range not {
			if strings.Contains(key, n) {
				return false
			}
		}
		return true
	}
}

type indexedKey struct {
	norm     string
	original string
}

// keyIndex índice normalizado → original de una fila, ordenado para que el
// resultado no dependa del orden de las columnas.
type keyIndex struct {
	row  Row
	keys []indexedKey
}

func indexRow(row Row) keyIndex {
	keys := make([]indexedKey, 0, row.Len())
	for _, h := range row.headers {
		keys = append(keys, indexedKey{norm: NormalizeKey(h), original: h})
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].norm != keys[j].norm {
			return keys[i].norm < keys[j].norm
		}
		return keys[i].original < keys[j].original
	})
	return keyIndex{row: row, keys: keys}
}

// lookup devuelve la cabecera original que casa con el campo.
func (ix keyIndex) lookup(f Field) (string, bool) {
	for _, s := range f.Strategies {
		switch s {
		case StrategyExact:
			for _, kw := range f.Keywords {
				for _, k := range ix.keys {
					if k.norm == kw && !f.excluded(k.norm) {
						return k.original, true
					}
				}
			}
		case StrategySubstring:
			for _, kw := range f.Keywords {
				for _, k := range ix.keys {
					if k.norm == "" || f.excluded(k.norm) {
						continue
					}
					if strings.Contains(k.norm, kw) || strings.Contains(kw, k.norm) {
						return k.original, true
					}
				}
			}
		case StrategyPredicate:
			if f.Predicate == nil {
				continue
			}
			for _, k := range ix.keys {
				if k.norm != "" && !f.excluded(k.norm) && f.Predicate(k.norm) {
					return k.original, true
				}
			}
		}
	}
	return "", false
}

func (ix keyIndex) find(f Field) (Value, bool) {
	h, ok := ix.lookup(f)
	if !ok {
		return nil, false
	}
	return ix.row.values[h], true
}

// first valor del primer campo, en orden, que case con una celda no vacía.
func (ix keyIndex) first(fields ...Field) (Value, bool) {
	for _, f := range fields {
		if v, ok := ix.find(f); ok && !isEmpty(v) {
			return v, true
		}
	}
	return nil, false
}

// text como first pero como texto recortado ("" si no hay).
func (ix keyIndex) text(fields ...Field) string {
	v, _ := ix.first(fields...)
	return toText(v)
}

func (f Field) excluded(key string) bool {
	for _, t := range f.Exclude {
		if t != "" && strings.Contains(key, t) {
			return true
		}
	}
	return false
}

// Find localiza el valor del campo en la fila: coincidencia exacta, luego
// subcadena y por último el predicado estructural. ok=false si nada casa.
func Find(row Row, f Field) (Value, bool) {
	return indexRow(row).find(f)
}

// FindHeader igual que Find pero devuelve la cabecera original elegida.
func FindHeader(row Row, f Field) (string, bool) {
	return indexRow(row).lookup(f)
}

// value como first, nil si ningún campo casa.
func (ix keyIndex) value(fields ...Field) Value {
	v, _ := ix.first(fields...)
	return v
}
