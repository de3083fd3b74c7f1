package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jhoicas/retail-ingest/internal/domain"
	"github.com/jhoicas/retail-ingest/internal/domain/entity"
	"github.com/jhoicas/retail-ingest/internal/domain/repository"
)

var _ repository.UploadRepository = (*UploadRepo)(nil)

// UploadRepo implementación del puerto UploadRepository sobre PostgreSQL (usable con pool o tx).
type UploadRepo struct {
	q Querier
}

// NewUploadRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUploadRepository(q Querier) *UploadRepo {
	return &UploadRepo{q: q}
}

const uploadColumns = `id, user_id, company_id, file_name, sales_count, products_count, transfers_count, warnings_count, created_at`

// Create registra el lote de carga.
func (r *UploadRepo) Create(ctx context.Context, u *entity.Upload) error {
	query := `INSERT INTO uploads (` + uploadColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.UserID, nullText(u.CompanyID), u.FileName,
		u.SalesCount, u.ProductsCount, u.TransferCount, u.WarningCount, u.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert upload: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *UploadRepo) GetByID(ctx context.Context, id string) (*entity.Upload, error) {
	query := `SELECT ` + uploadColumns + ` FROM uploads WHERE id = $1`
	u, err := scanUpload(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get upload: %w", err)
	}
	return u, nil
}

// ListByUser lista los lotes del usuario, más recientes primero.
func (r *UploadRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Upload, error) {
	query := `SELECT ` + uploadColumns + ` FROM uploads WHERE user_id = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	defer rows.Close()
	var list []*entity.Upload
	for rows.Next() {
		u, err := scanUpload(rows)
		if err != nil {
			return nil, fmt.Errorf("scan upload: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Delete elimina el lote del usuario; las filas caen por ON DELETE CASCADE.
func (r *UploadRepo) Delete(ctx context.Context, id, userID string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM uploads WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete upload: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByUser elimina todos los lotes del usuario.
func (r *UploadRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM uploads WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("delete uploads by user: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func scanUpload(row pgx.Row) (*entity.Upload, error) {
	var u entity.Upload
	var companyID pgtype.Text
	if err := row.Scan(
		&u.ID, &u.UserID, &companyID, &u.FileName,
		&u.SalesCount, &u.ProductsCount, &u.TransferCount, &u.WarningCount, &u.CreatedAt,
	); err != nil {
		return nil, err
	}
	u.CompanyID = companyID.String
	return &u, nil
}
