package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-ingest/internal/domain/ingest"
)

func TestFind_ExactoAntesQueSubcadena(t *testing.T) {
	row := ingest.NewRow(
		ingest.Cell{Header: "Total Unidades", Value: 3},
		ingest.Cell{Header: "Subtotal", Value: 10},
	)
	h, ok := ingest.FindHeader(row, ingest.SubtotalField)
	require.True(t, ok)
	assert.Equal(t, "Subtotal", h)
}

func TestFind_Subcadena(t *testing.T) {
	row := ingest.NewRow(ingest.Cell{Header: "Cantidad Vendida", Value: 4})
	v, ok := ingest.Find(row, ingest.QuantityField)
	require.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestFind_SubcadenaInversa(t *testing.T) {
	f := ingest.NewField("theme", "tematica")
	row := ingest.NewRow(ingest.Cell{Header: "Tema", Value: "Verano"})
	v, ok := ingest.Find(row, f)
	require.True(t, ok)
	assert.Equal(t, "Verano", v)
}

func TestFind_Predicado(t *testing.T) {
	row := ingest.NewRow(
		ingest.Cell{Header: "Fecha de entrada al almacén central", Value: "2024-02-01"},
		ingest.Cell{Header: "Fecha Pedido", Value: "2024-01-10"},
	)
	h, ok := ingest.FindHeader(row, ingest.WarehouseDateField)
	require.True(t, ok)
	assert.Equal(t, "Fecha de entrada al almacén central", h)
}

func TestFind_DiccionarioAntesQuePredicado(t *testing.T) {
	row := ingest.NewRow(
		ingest.Cell{Header: "Descripcion de la familia", Value: "X"},
		ingest.Cell{Header: "Desc Familia", Value: "Y"},
	)
	v, ok := ingest.Find(row, ingest.FamilyDescriptionField)
	require.True(t, ok)
	assert.Equal(t, "Y", v)
}

func TestFind_Exclusion(t *testing.T) {
	row := ingest.NewRow(ingest.Cell{Header: "Descripcion Familia", Value: "Camisetas"})
	_, ok := ingest.Find(row, ingest.FamilyCodeField)
	assert.False(t, ok, "el código de familia no debe caer en la descripción")
}

func TestFind_SinCoincidencia(t *testing.T) {
	row := ingest.NewRow(ingest.Cell{Header: "Observaciones", Value: "x"})
	_, ok := ingest.Find(row, ingest.QuantityField)
	assert.False(t, ok)
}

func TestFind_CabeceraVaciaNoCasa(t *testing.T) {
	row := ingest.NewRow(ingest.Cell{Header: "  ", Value: 1})
	_, ok := ingest.Find(row, ingest.QuantityField)
	assert.False(t, ok)
}

func TestFind_SKUArticuloNoModelo(t *testing.T) {
	row := ingest.NewRow(
		ingest.Cell{Header: "Modelo Articulo", Value: "M1"},
		ingest.Cell{Header: "Articulo", Value: "A1"},
	)
	v, ok := ingest.Find(row, ingest.SKUArticleField)
	require.True(t, ok)
	assert.Equal(t, "A1", v)

	onlyModel := ingest.NewRow(ingest.Cell{Header: "Modelo Articulo", Value: "M1"})
	_, ok = ingest.Find(onlyModel, ingest.SKUArticleField)
	assert.False(t, ok)
}

func TestFind_IndependienteDelOrden(t *testing.T) {
	a := ingest.NewRow(
		ingest.Cell{Header: "Cantidad Vendida", Value: 1},
		ingest.Cell{Header: "Cantidad Devuelta", Value: 2},
	)
	b := ingest.NewRow(
		ingest.Cell{Header: "Cantidad Devuelta", Value: 2},
		ingest.Cell{Header: "Cantidad Vendida", Value: 1},
	)
	ha, _ := ingest.FindHeader(a, ingest.QuantityField)
	hb, _ := ingest.FindHeader(b, ingest.QuantityField)
	assert.Equal(t, ha, hb)
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "exact", ingest.StrategyExact.String())
	assert.Equal(t, "substring", ingest.StrategySubstring.String())
	assert.Equal(t, "predicate", ingest.StrategyPredicate.String())
}

func TestRow_SetConservaPosicion(t *testing.T) {
	row := ingest.NewRow(
		ingest.Cell{Header: "A", Value: 1},
		ingest.Cell{Header: "B", Value: 2},
	)
	row.Set("A", 3)
	assert.Equal(t, []string{"A", "B"}, row.Headers())
	v, ok := row.Get("A")
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.False(t, row.IsBlank())
	assert.True(t, ingest.NewRow(ingest.Cell{Header: "A"}, ingest.Cell{Header: "B", Value: " "}).IsBlank())
}
