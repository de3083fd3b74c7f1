package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/retail-ingest/internal/domain/entity"
	"github.com/jhoicas/retail-ingest/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo persistencia de traspasos normalizados.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

var transferColumns = []string{"upload_id", "user_id", "sku", "quantity_sent", "destination_store", "sent_date"}

// InsertBatch copia los traspasos del lote con COPY.
func (r *TransferRepo) InsertBatch(ctx context.Context, uploadID, userID string, transfers []entity.Transfer) (int64, error) {
	if len(transfers) == 0 {
		return 0, nil
	}
	n, err := r.q.CopyFrom(ctx, pgx.Identifier{"transfers"}, transferColumns,
		pgx.CopyFromSlice(len(transfers), func(i int) ([]any, error) {
			return transferRow(uploadID, userID, transfers[i]), nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("copy transfers: %w", err)
	}
	return n, nil
}

func transferRow(uploadID, userID string, t entity.Transfer) []any {
	return []any{uploadID, userID, nullText(t.SKU), nullDecimal(t.QuantitySent), t.DestinationStore, nullDate(t.SentDate)}
}
