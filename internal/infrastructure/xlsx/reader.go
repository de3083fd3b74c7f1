// Package xlsx decodifica libros .xlsx en filas crudas para el pipeline de ingesta.
package xlsx

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/retail-ingest/internal/domain"
	"github.com/jhoicas/retail-ingest/internal/domain/ingest"
)

// SheetInfo resumen de una hoja leída.
type SheetInfo struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
	Rows int    `json:"rows"`
}

// Workbook resultado de leer un libro: el dataset y qué hoja ocupó cada rol.
type Workbook struct {
	Dataset ingest.Dataset
	Sheets  []SheetInfo
}

// Reader lector de libros Excel. Sin estado: se puede compartir entre peticiones.
type Reader struct{}

// NewReader construye el lector.
func NewReader() *Reader { return &Reader{} }

// Decode lee el libro y devuelve solo el dataset.
func (rd *Reader) Decode(r io.Reader) (ingest.Dataset, error) {
	wb, err := rd.Read(r)
	if err != nil {
		return ingest.Dataset{}, err
	}
	return wb.Dataset, nil
}

// Read abre el libro, asigna roles a las hojas y convierte cada hoja con rol
// en filas. La primera fila de la hoja es la cabecera; las celdas vacías llegan
// como nil y las filas completamente vacías se omiten.
func (rd *Reader) Read(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedFile, err)
	}
	defer func() { _ = f.Close() }()

	names := f.GetSheetList()
	roles := assignRoles(names)

	wb := &Workbook{Sheets: make([]SheetInfo, 0, len(names))}
	for i, name := range names {
		info := SheetInfo{Name: name, Role: roles[i]}
		if roles[i] == RoleUnknown {
			wb.Sheets = append(wb.Sheets, info)
			continue
		}
		rows, err := readSheet(f, name)
		if err != nil {
			return nil, fmt.Errorf("leer hoja %q: %w", name, err)
		}
		info.Rows = len(rows)
		wb.Sheets = append(wb.Sheets, info)

		switch roles[i] {
		case RoleSales:
			wb.Dataset.Sales = rows
		case RoleProducts:
			wb.Dataset.Products = rows
		case RoleTransfers:
			wb.Dataset.Transfers = rows
		}
	}
	return wb, nil
}

func readSheet(f *excelize.File, sheet string) ([]ingest.Row, error) {
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []ingest.Row{}, nil
	}
	headers := headerRow(raw[0])

	out := make([]ingest.Row, 0, len(raw)-1)
	for r := 1; r < len(raw); r++ {
		cells := make([]ingest.Cell, 0, len(headers))
		for _, h := range headers {
			var v ingest.Value
			if h.col < len(raw[r]) && raw[r][h.col] != "" {
				v, err = cellValue(f, sheet, h.col+1, r+1, raw[r][h.col])
				if err != nil {
					return nil, err
				}
			}
			cells = append(cells, ingest.Cell{Header: h.name, Value: v})
		}
		row := ingest.NewRow(cells...)
		if row.IsBlank() {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

type column struct {
	name string
	col  int
}

// headerRow cabeceras recortadas; las vacías se ignoran y las repetidas reciben
// sufijo "_1", "_2"... saltando los nombres que ya existen en la hoja.
func headerRow(cells []string) []column {
	raw := make(map[string]bool, len(cells))
	for _, c := range cells {
		if name := strings.TrimSpace(c); name != "" {
			raw[name] = true
		}
	}
	used := make(map[string]bool, len(cells))
	suffix := make(map[string]int)
	cols := make([]column, 0, len(cells))
	for i, c := range cells {
		name := strings.TrimSpace(c)
		if name == "" {
			continue
		}
		if used[name] {
			base := name
			for {
				suffix[base]++
				name = fmt.Sprintf("%s_%d", base, suffix[base])
				if !used[name] && !raw[name] {
					break
				}
			}
		}
		used[name] = true
		cols = append(cols, column{name: name, col: i})
	}
	return cols
}

// cellValue convierte el valor crudo según el tipo de celda: números (y fechas
// con formato de fecha, que Excel guarda como serial) a float64, booleanos a
// bool y el resto a string.
func cellValue(f *excelize.File, sheet string, col, row int, raw string) (ingest.Value, error) {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, err
	}
	typ, err := f.GetCellType(sheet, axis)
	if err != nil {
		return nil, err
	}
	switch typ {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true"), nil
	case excelize.CellTypeError:
		return nil, nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula, excelize.CellTypeDate:
		return raw, nil
	}
	// Sin atributo de tipo o "n": numérico.
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n, nil
	}
	return raw, nil
}
