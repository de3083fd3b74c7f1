package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/retail-ingest/internal/domain/entity"
	"github.com/jhoicas/retail-ingest/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

var productColumns = []string{
	"upload_id", "user_id", "sku", "ordered_quantity", "warehouse_date", "theme",
	"unit_price", "unit_cost", "family_code", "size", "color", "season",
}

// InsertBatch copia los productos del lote con COPY.
func (r *ProductRepo) InsertBatch(ctx context.Context, uploadID, userID string, products []entity.Product) (int64, error) {
	if len(products) == 0 {
		return 0, nil
	}
	n, err := r.q.CopyFrom(ctx, pgx.Identifier{"products"}, productColumns,
		pgx.CopyFromSlice(len(products), func(i int) ([]any, error) {
			return productRow(uploadID, userID, products[i]), nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("copy products: %w", err)
	}
	return n, nil
}

func productRow(uploadID, userID string, p entity.Product) []any {
	return []any{
		uploadID, userID, p.SKU, nullDecimal(p.OrderedQuantity), nullDate(p.WarehouseDate), p.Theme,
		nullDecimal(p.UnitPrice), nullDecimal(p.UnitCost), nullText(p.FamilyCode), nullText(p.Size), nullText(p.Color), nullText(p.Season),
	}
}
