package ingest

import (
	"strings"

	"github.com/jhoicas/retail-ingest/internal/domain/entity"
)

// ProductsNormalizer normaliza hojas de productos. Solo el SKU es obligatorio y
// su ausencia nunca se reporta: las hojas de inventario traen filas de totales.
type ProductsNormalizer struct{}

// NewProductsNormalizer construye el normalizador.
func NewProductsNormalizer() *ProductsNormalizer { return &ProductsNormalizer{} }

// Normalize procesa las filas en orden.
func (n *ProductsNormalizer) Normalize(rows []Row) ([]entity.Product, []RowError, SheetStats) {
	return normalizeSheet(rows, n.normalizeRow)
}

func (n *ProductsNormalizer) normalizeRow(ix keyIndex, _ int) (entity.Product, outcome, RowError) {
	sku := ix.text(SKUArticleField, SKUField)
	if sku == "" {
		return entity.Product{}, outcomeDropped, RowError{}
	}
	return entity.Product{
		SKU:             sku,
		OrderedQuantity: optionalNumber(ix.first(OrderedQuantityField)),
		WarehouseDate:   optionalDate(ix.first(WarehouseDateField)),
		Theme:           NormalizeTheme(ix.text(ThemeField)),
		UnitPrice:       optionalNumber(ix.first(PriceField)),
		UnitCost:        optionalNumber(ix.first(UnitCostField)),
		FamilyCode:      ix.text(FamilyCodeExactField, FamilyCodeField),
		Size:            ix.text(SizeField),
		Color:           ix.text(ColorField),
		Season:          ix.text(SeasonField),
	}, outcomeAccepted, RowError{}
}

// NormalizeTheme devuelve "Sin Tema" para temas vacíos, "null" o "sin tema" en cualquier caja.
func NormalizeTheme(theme string) string {
	t := strings.TrimSpace(theme)
	if t == "" || t == "null" || strings.EqualFold(t, ThemeSentinel) {
		return ThemeSentinel
	}
	return t
}
