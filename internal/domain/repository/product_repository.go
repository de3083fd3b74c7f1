package repository

import (
	"context"

	"github.com/jhoicas/retail-ingest/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// InsertBatch inserta los productos normalizados de un lote y devuelve las filas escritas.
	InsertBatch(ctx context.Context, uploadID, userID string, products []entity.Product) (int64, error)
}
