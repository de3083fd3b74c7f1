package ingest

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate la celda no contiene una fecha reconocible.
var ErrInvalidDate = errors.New("fecha inválida")

const (
	dateLayout = "2006-01-02"
	// excelUnixEpoch serial de Excel correspondiente a 1970-01-01.
	excelUnixEpoch = 25569
	msPerDay       = 86400 * 1000
	// maxExcelSerial 9999-12-31.
	maxExcelSerial = 2958465
)

var (
	dayFirstRe = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)
	isoRe      = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)

	fallbackLayouts = []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006/01/02",
		"2006/1/2",
		"2006.01.02",
		"02.01.2006",
		"2 Jan 2006",
		"Jan 2, 2006",
		"January 2, 2006",
		time.RFC1123,
		time.RFC1123Z,
		time.ANSIC,
	}
)

// ParseDate convierte una celda a fecha de calendario "YYYY-MM-DD".
// Acepta serial de Excel, time.Time, día primero (D/M/YYYY o D-M-YYYY) e ISO.
// Todas las ramas construyen la fecha en UTC para no desplazar el día.
func ParseDate(v Value) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", ErrInvalidDate
	case time.Time:
		if x.IsZero() {
			return "", ErrInvalidDate
		}
		return time.Date(x.Year(), x.Month(), x.Day(), 0, 0, 0, 0, time.UTC).Format(dateLayout), nil
	case string:
		return parseDateString(x)
	}
	f, err := ParseNumber(v)
	if err != nil || math.Abs(f) > maxExcelSerial {
		return "", ErrInvalidDate
	}
	return excelSerialToDate(f), nil
}

func excelSerialToDate(serial float64) string {
	ms := math.Round((serial - excelUnixEpoch) * msPerDay)
	return time.UnixMilli(int64(ms)).UTC().Format(dateLayout)
}

func parseDateString(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidDate
	}
	if m := dayFirstRe.FindStringSubmatch(s); m != nil {
		d, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		y, _ := strconv.Atoi(m[3])
		// Sin validar rango: 13/13/2024 desborda a 2025-01-13.
		return time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC).Format(dateLayout), nil
	}
	if m := isoRe.FindStringSubmatch(s); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		return time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC).Format(dateLayout), nil
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Format(dateLayout), nil
		}
	}
	return "", ErrInvalidDate
}

// optionalDate "" si la celda falta o no es una fecha.
func optionalDate(v Value, ok bool) string {
	if !ok {
		return ""
	}
	d, err := ParseDate(v)
	if err != nil {
		return ""
	}
	return d
}

// MonthLabel etiqueta "<Mes> <año>" de una fecha "YYYY-MM-DD" ("" si no es válida).
func MonthLabel(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return monthNames[t.Month()-1] + " " + strconv.Itoa(t.Year())
}
