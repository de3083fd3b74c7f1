package xlsx_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/retail-ingest/internal/domain"
	"github.com/jhoicas/retail-ingest/internal/domain/ingest"
	"github.com/jhoicas/retail-ingest/internal/infrastructure/xlsx"
)

type sheet struct {
	name string
	rows [][]any
}

// buildWorkbook genera un .xlsx en memoria con las hojas en el orden dado.
func buildWorkbook(t *testing.T, sheets ...sheet) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName(defaultSheet, s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for r, values := range s.rows {
			if values == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			row := values
			require.NoError(t, f.SetSheetRow(s.name, cell, &row))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReader_ValoresTipados(t *testing.T) {
	buf := buildWorkbook(t, sheet{name: "Ventas", rows: [][]any{
		{"Articulo", "Tienda", "Cantidad", "Subtotal", "Fecha Venta", "Online"},
		{"SKU1", "Tienda Madrid", 2, 19.9, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), true},
		nil,
		{"SKU2", "Tienda Sevilla", "3"},
	}})

	wb, err := xlsx.NewReader().Read(buf)
	require.NoError(t, err)
	require.Len(t, wb.Dataset.Sales, 2, "la fila vacía se omite")

	first := wb.Dataset.Sales[0]
	v, _ := first.Get("Articulo")
	assert.Equal(t, "SKU1", v)
	v, _ = first.Get("Cantidad")
	assert.Equal(t, 2.0, v)
	v, _ = first.Get("Subtotal")
	assert.Equal(t, 19.9, v)
	v, _ = first.Get("Fecha Venta")
	assert.Equal(t, 45323.0, v, "las fechas llegan como serial de Excel")
	v, _ = first.Get("Online")
	assert.Equal(t, true, v)

	second := wb.Dataset.Sales[1]
	v, _ = second.Get("Cantidad")
	assert.Equal(t, "3", v, "un número escrito como texto sigue siendo texto")
	v, ok := second.Get("Subtotal")
	assert.True(t, ok, "las columnas ausentes existen con valor nil")
	assert.Nil(t, v)
	assert.Equal(t, first.Headers(), second.Headers())
}

func TestReader_AsignaRolesPorNombre(t *testing.T) {
	buf := buildWorkbook(t,
		sheet{name: "Traspasos", rows: [][]any{{"Articulo", "Destino"}, {"SKU1", "Tienda Bilbao"}}},
		sheet{name: "Resumen", rows: [][]any{{"Total"}, {10}}},
		sheet{name: "Inventario", rows: [][]any{{"Articulo", "Tema"}, {"SKU1", "Verano"}}},
	)

	wb, err := xlsx.NewReader().Read(buf)
	require.NoError(t, err)

	assert.Equal(t, []xlsx.SheetInfo{
		{Name: "Traspasos", Role: xlsx.RoleTransfers, Rows: 1},
		{Name: "Resumen", Role: xlsx.RoleSales, Rows: 1},
		{Name: "Inventario", Role: xlsx.RoleProducts, Rows: 1},
	}, wb.Sheets)
	assert.Len(t, wb.Dataset.Transfers, 1)
	assert.Len(t, wb.Dataset.Products, 1)
	assert.Len(t, wb.Dataset.Sales, 1)
}

func TestReader_RolRepetidoSeIgnora(t *testing.T) {
	buf := buildWorkbook(t,
		sheet{name: "Ventas Enero", rows: [][]any{{"Articulo"}, {"A"}}},
		sheet{name: "Ventas Febrero", rows: [][]any{{"Articulo"}, {"B"}}},
	)
	wb, err := xlsx.NewReader().Read(buf)
	require.NoError(t, err)

	assert.Equal(t, xlsx.RoleSales, wb.Sheets[0].Role)
	assert.Equal(t, xlsx.RoleUnknown, wb.Sheets[1].Role)
	require.Len(t, wb.Dataset.Sales, 1)
	v, _ := wb.Dataset.Sales[0].Get("Articulo")
	assert.Equal(t, "A", v)
}

func TestReader_CabecerasVaciasYRepetidas(t *testing.T) {
	buf := buildWorkbook(t, sheet{name: "Hoja1", rows: [][]any{
		{" Tienda ", "", "Tienda", "Cantidad"},
		{"T1", "ignorado", "T2", 1},
	}})
	wb, err := xlsx.NewReader().Read(buf)
	require.NoError(t, err)
	require.Len(t, wb.Dataset.Sales, 1)

	r := wb.Dataset.Sales[0]
	assert.Equal(t, []string{"Tienda", "Tienda_1", "Cantidad"}, r.Headers())
	v, _ := r.Get("Tienda_1")
	assert.Equal(t, "T2", v)
}

func TestReader_SufijoNoPisaCabeceraExistente(t *testing.T) {
	buf := buildWorkbook(t, sheet{name: "Hoja1", rows: [][]any{
		{"Tienda", "Tienda", "Tienda_1", "Articulo", "Cantidad"},
		{"T1", "T2", "T3", "S1", 1},
	}})
	wb, err := xlsx.NewReader().Read(buf)
	require.NoError(t, err)
	require.Len(t, wb.Dataset.Sales, 1)

	r := wb.Dataset.Sales[0]
	assert.Equal(t, []string{"Tienda", "Tienda_2", "Tienda_1", "Articulo", "Cantidad"}, r.Headers())
	for header, want := range map[string]string{"Tienda": "T1", "Tienda_2": "T2", "Tienda_1": "T3"} {
		v, ok := r.Get(header)
		require.True(t, ok, header)
		assert.Equal(t, want, v, header)
	}
}

func TestReader_ArchivoNoValido(t *testing.T) {
	_, err := xlsx.NewReader().Read(strings.NewReader("esto no es un libro"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFile)
}

func TestReader_LibroHastaPipeline(t *testing.T) {
	buf := buildWorkbook(t,
		sheet{name: "Ventas", rows: [][]any{
			{"Fecha Documento", "Articulo", "Cantidad", "P.V.P.", "NombreTPV", "Subtotal"},
			{"01/01/2024", "SKU123", 5, "1.200,50 €", "Tienda Madrid", "6002,50"},
			{time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "SKU456", 0, nil, "COMODIN", 0},
		}},
		sheet{name: "Productos", rows: [][]any{
			{"Artículo", "Tema"},
			{"SKU123", "sin tema"},
		}},
	)
	ds, err := xlsx.NewReader().Decode(buf)
	require.NoError(t, err)

	res := ingest.ValidateAndNormalize(ds)
	assert.Empty(t, res.Errors)
	require.Len(t, res.Sales, 1)
	assert.Equal(t, "2024-01-01", res.Sales[0].SaleDate)
	require.NotNil(t, res.Sales[0].UnitPrice)
	assert.InDelta(t, 1200.50, *res.Sales[0].UnitPrice, 1e-9)
	assert.InDelta(t, 6002.50, res.Sales[0].Subtotal, 1e-9)
	assert.Equal(t, 1, res.Stats.Sales.Excluded)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "Sin Tema", res.Products[0].Theme)
}
