package ingest

import "github.com/jhoicas/retail-ingest/internal/domain/entity"

// TransfersNormalizer normaliza hojas de traspasos entre tiendas.
type TransfersNormalizer struct{}

// NewTransfersNormalizer construye el normalizador.
func NewTransfersNormalizer() *TransfersNormalizer { return &TransfersNormalizer{} }

// Normalize procesa las filas en orden.
func (n *TransfersNormalizer) Normalize(rows []Row) ([]entity.Transfer, []RowError, SheetStats) {
	return normalizeSheet(rows, n.normalizeRow)
}

func (n *TransfersNormalizer) normalizeRow(ix keyIndex, rowNum int) (entity.Transfer, outcome, RowError) {
	sku := ix.text(SKUArticleField, SKUField)
	dest := ix.text(DestinationField)
	if dest == "" {
		if sku == "" {
			return entity.Transfer{}, outcomeDropped, RowError{}
		}
		return entity.Transfer{}, outcomeRejected, RowError{
			Kind: KindTransfer, Row: rowNum, Reason: ReasonMissingDestination,
		}
	}
	return entity.Transfer{
		SKU:              sku,
		QuantitySent:     optionalNumber(ix.first(QuantitySentField, QuantityField)),
		DestinationStore: dest,
		SentDate:         optionalDate(ix.first(SentDateExactField, SentDateField)),
	}, outcomeAccepted, RowError{}
}
