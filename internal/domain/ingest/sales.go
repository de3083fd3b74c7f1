package ingest

import (
	"strings"

	"github.com/jhoicas/retail-ingest/internal/domain/entity"
)

// SalesNormalizer normaliza hojas de ventas aplicando la lista negra de tiendas,
// la obligatoriedad de tienda y la regla cantidad/subtotal, en ese orden.
type SalesNormalizer struct {
	excluded []string
}

// NewSalesNormalizer construye el normalizador con los tokens de tiendas excluidas.
func NewSalesNormalizer(excludedStores []string) *SalesNormalizer {
	tokens := make([]string, 0, len(excludedStores))
	for _, t := range excludedStores {
		if t = strings.ToUpper(strings.TrimSpace(t)); t != "" {
			tokens = append(tokens, t)
		}
	}
	return &SalesNormalizer{excluded: tokens}
}

// Normalize procesa las filas en orden y devuelve ventas válidas, rechazos y recuento.
func (n *SalesNormalizer) Normalize(rows []Row) ([]entity.Sale, []RowError, SheetStats) {
	return normalizeSheet(rows, n.normalizeRow)
}

// IsExcludedStore indica si el nombre de tienda contiene algún token de la lista negra.
func (n *SalesNormalizer) IsExcludedStore(store string) bool {
	upper := strings.ToUpper(store)
	for _, t := range n.excluded {
		if strings.Contains(upper, t) {
			return true
		}
	}
	return false
}

func (n *SalesNormalizer) normalizeRow(ix keyIndex, rowNum int) (entity.Sale, outcome, RowError) {
	sku := ix.text(SKUArticleField, SKUField)
	store := ix.text(StoreField)

	if store != "" && n.IsExcludedStore(store) {
		return entity.Sale{}, outcomeExcluded, RowError{}
	}
	if store == "" {
		if sku == "" {
			return entity.Sale{}, outcomeDropped, RowError{}
		}
		return entity.Sale{}, outcomeRejected, RowError{
			Kind: KindSales, Row: rowNum, Reason: ReasonMissingStore, Identifier: skuIdentifier(sku),
		}
	}

	qty, qtyErr := ParseNumber(ix.value(QuantityField))
	subtotal, subErr := ParseNumber(ix.value(SubtotalField))
	if !((qtyErr == nil && qty != 0) || (subErr == nil && subtotal > 0)) {
		if sku == "" {
			return entity.Sale{}, outcomeDropped, RowError{}
		}
		return entity.Sale{}, outcomeRejected, RowError{
			Kind: KindSales, Row: rowNum, Reason: ReasonInvalidQuantity, Identifier: skuIdentifier(sku),
		}
	}
	if qtyErr != nil {
		qty = 0
	}
	if subErr != nil {
		subtotal = 0
	}

	sale := entity.Sale{
		Act:               ix.text(ActField),
		SKU:               sku,
		Quantity:          qty,
		UnitPrice:         optionalNumber(ix.first(PriceField)),
		Subtotal:          subtotal,
		SaleDate:          optionalDate(ix.first(SaleDateExactField, SaleDateField)),
		Store:             store,
		StoreCode:         ix.text(StoreCodeField),
		Season:            ix.text(SeasonField),
		FamilyCode:        ix.text(FamilyCodeExactField, FamilyCodeField),
		FamilyDescription: ix.text(FamilyDescriptionField),
		Size:              ix.text(SizeField),
		Color:             ix.text(ColorField),
		UnitCost:          optionalNumber(ix.first(UnitCostField)),
		IsOnline:          strings.Contains(strings.ToLower(store), "online"),
	}
	if sale.SaleDate != "" {
		sale.Month = MonthLabel(sale.SaleDate)
	}
	return sale, outcomeAccepted, RowError{}
}
