package entity

import "time"

// Upload lote de carga: agrupa las filas persistidas de un archivo subido por un usuario.
type Upload struct {
	ID            string
	UserID        string
	CompanyID     string
	FileName      string
	SalesCount    int
	ProductsCount int
	TransferCount int
	WarningCount  int
	CreatedAt     time.Time
}
