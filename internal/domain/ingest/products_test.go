package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-ingest/internal/domain/ingest"
)

func TestProductsNormalizer(t *testing.T) {
	products, errs, stats := ingest.NewProductsNormalizer().Normalize(sampleDataset().Products)
	require.Empty(t, errs)
	require.Len(t, products, 2)
	assert.Equal(t, ingest.SheetStats{Input: 2, Accepted: 2}, stats)

	assert.Equal(t, "SKU123", products[0].SKU)
	assert.Equal(t, "2024-02-01", products[0].WarehouseDate)
	assert.Equal(t, "Verano", products[0].Theme)
	assert.Nil(t, products[0].OrderedQuantity)

	assert.Equal(t, "SKU999", products[1].SKU)
	assert.Equal(t, ingest.ThemeSentinel, products[1].Theme)
}

func TestProductsNormalizer_SinSKUSeDescartaEnSilencio(t *testing.T) {
	products, errs, stats := ingest.NewProductsNormalizer().Normalize([]ingest.Row{
		row("Tema", "Verano", "Cantidad Pedida", 10),
		row("Articulo", nil),
		row(),
	})
	assert.Empty(t, products)
	assert.Empty(t, errs)
	assert.Equal(t, ingest.SheetStats{Input: 3, Dropped: 3}, stats)
}

func TestProductsNormalizer_CamposOpcionales(t *testing.T) {
	products, _, _ := ingest.NewProductsNormalizer().Normalize([]ingest.Row{
		row(
			"Articulo", "SKU1",
			"Cantidad Pedida", "1.500",
			"Fecha Pedido", "2024-01-10",
			"Fecha Entrada Almacén Central", 45323,
			"PVP", "29,95",
			"Precio Coste", "12,00",
			"Codigo Familia", "PANT",
			"Talla", "42",
			"Color", "Negro",
			"Temporada", "I24",
		),
	})
	require.Len(t, products, 1)
	p := products[0]
	require.NotNil(t, p.OrderedQuantity)
	assert.InDelta(t, 1.5, *p.OrderedQuantity, 1e-9, "punto sin coma se lee como decimal")
	assert.Equal(t, "2024-02-01", p.WarehouseDate)
	require.NotNil(t, p.UnitPrice)
	assert.InDelta(t, 29.95, *p.UnitPrice, 1e-9)
	require.NotNil(t, p.UnitCost)
	assert.InDelta(t, 12.0, *p.UnitCost, 1e-9)
	assert.Equal(t, "PANT", p.FamilyCode)
	assert.Equal(t, "42", p.Size)
	assert.Equal(t, "Negro", p.Color)
	assert.Equal(t, "I24", p.Season)
	assert.Equal(t, ingest.ThemeSentinel, p.Theme)
}

func TestNormalizeTheme(t *testing.T) {
	cases := map[string]string{
		"":           "Sin Tema",
		"   ":        "Sin Tema",
		"null":       "Sin Tema",
		"sin tema":   "Sin Tema",
		"SIN TEMA":   "Sin Tema",
		" Sin Tema ": "Sin Tema",
		" Verano ":   "Verano",
		"NULL":       "NULL",
	}
	for in, want := range cases {
		assert.Equal(t, want, ingest.NormalizeTheme(in), "entrada %q", in)
	}
}
