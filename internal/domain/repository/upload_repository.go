package repository

import (
	"context"

	"github.com/jhoicas/retail-ingest/internal/domain/entity"
)

// UploadRepository define el puerto de persistencia para los lotes de carga.
type UploadRepository interface {
	Create(ctx context.Context, upload *entity.Upload) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Upload, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Upload, error)
	// Delete borra el lote del usuario y sus filas; domain.ErrNotFound si no le pertenece.
	Delete(ctx context.Context, id, userID string) error
	// DeleteByUser borra todos los lotes del usuario y devuelve cuántos había.
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}
