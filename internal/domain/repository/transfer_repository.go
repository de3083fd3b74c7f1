package repository

import (
	"context"

	"github.com/jhoicas/retail-ingest/internal/domain/entity"
)

// TransferRepository define el puerto de persistencia para Transfer.
type TransferRepository interface {
	InsertBatch(ctx context.Context, uploadID, userID string, transfers []entity.Transfer) (int64, error)
}
