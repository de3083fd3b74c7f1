package repository

import (
	"context"

	"github.com/jhoicas/retail-ingest/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	InsertBatch(ctx context.Context, uploadID, userID string, sales []entity.Sale) (int64, error)
}
