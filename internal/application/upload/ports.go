package upload

import (
	"context"
	"io"

	"github.com/jhoicas/retail-ingest/internal/domain/ingest"
	"github.com/jhoicas/retail-ingest/internal/domain/repository"
)

// Decoder convierte el archivo subido en filas crudas por hoja.
type Decoder interface {
	Decode(r io.Reader) (ingest.Dataset, error)
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Un lote se persiste entero o no se persiste.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		uploadRepo repository.UploadRepository,
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		transferRepo repository.TransferRepository,
	) error) error
}
