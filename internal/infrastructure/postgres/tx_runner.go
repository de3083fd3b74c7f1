package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/retail-ingest/internal/application/upload"
	"github.com/jhoicas/retail-ingest/internal/domain/repository"
)

var _ upload.TxRunner = (*TxRunner)(nil)

// Beginner abre transacciones; lo cumple *pgxpool.Pool.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxRunner persiste una carga completa en una sola transacción: el lote y sus
// filas de ventas, productos y traspasos se confirman juntos o no se guarda nada.
type TxRunner struct {
	db Beginner
}

// NewTxRunner construye el runner.
func NewTxRunner(db Beginner) *TxRunner {
	return &TxRunner{db: db}
}

// Run ejecuta fn con repositorios atados a la tx. Si fn falla se hace rollback
// y se devuelve su error sin envolver.
func (r *TxRunner) Run(ctx context.Context, fn func(
	uploadRepo repository.UploadRepository,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	transferRepo repository.TransferRepository,
) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	// Tras un Commit correcto el Rollback no hace nada.
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewUploadRepository(tx),
		NewSaleRepository(tx),
		NewProductRepository(tx),
		NewTransferRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
