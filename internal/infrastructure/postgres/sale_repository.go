package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/retail-ingest/internal/domain/entity"
	"github.com/jhoicas/retail-ingest/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo persistencia de ventas normalizadas.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

var saleColumns = []string{
	"upload_id", "user_id", "act", "sku", "quantity", "unit_price", "subtotal",
	"sale_date", "month", "store", "store_code", "season", "family_code",
	"family_description", "size", "color", "unit_cost", "is_online",
}

// InsertBatch copia las ventas del lote con COPY.
func (r *SaleRepo) InsertBatch(ctx context.Context, uploadID, userID string, sales []entity.Sale) (int64, error) {
	if len(sales) == 0 {
		return 0, nil
	}
	n, err := r.q.CopyFrom(ctx, pgx.Identifier{"sales"}, saleColumns,
		pgx.CopyFromSlice(len(sales), func(i int) ([]any, error) {
			return saleRow(uploadID, userID, sales[i]), nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("copy sales: %w", err)
	}
	return n, nil
}

func saleRow(uploadID, userID string, s entity.Sale) []any {
	return []any{
		uploadID, userID, nullText(s.Act), s.SKU, toDecimal(s.Quantity), nullDecimal(s.UnitPrice), toDecimal(s.Subtotal),
		nullDate(s.SaleDate), nullText(s.Month), s.Store, nullText(s.StoreCode), nullText(s.Season), nullText(s.FamilyCode),
		s.FamilyDescription, nullText(s.Size), nullText(s.Color), nullDecimal(s.UnitCost), s.IsOnline,
	}
}
