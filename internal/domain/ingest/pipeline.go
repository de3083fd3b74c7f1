package ingest

import "github.com/jhoicas/retail-ingest/internal/domain/entity"

// Dataset filas crudas por rol de hoja, tal como las entrega el lector de libros.
type Dataset struct {
	Sales     []Row
	Products  []Row
	Transfers []Row
}

// IsEmpty indica si las tres hojas están vacías.
func (d Dataset) IsEmpty() bool {
	return len(d.Sales) == 0 && len(d.Products) == 0 && len(d.Transfers) == 0
}

// Stats recuento por hoja.
type Stats struct {
	Sales     SheetStats `json:"sales"`
	Products  SheetStats `json:"products"`
	Transfers SheetStats `json:"transfers"`
}

// Result salida del pipeline. Una fila rechazada solo aparece en Errors.
type Result struct {
	Sales     []entity.Sale     `json:"sales"`
	Products  []entity.Product  `json:"products"`
	Transfers []entity.Transfer `json:"transfers"`
	Errors    []string          `json:"errors"`
	Stats     Stats             `json:"stats"`
}

// Options configuración del pipeline.
type Options struct {
	// ExcludedStores tokens de tiendas a excluir; nil usa DefaultExcludedStores.
	ExcludedStores []string
}

// Pipeline orquesta los tres normalizadores. Inmutable tras construirse: se
// puede usar desde varias goroutines.
type Pipeline struct {
	sales     *SalesNormalizer
	products  *ProductsNormalizer
	transfers *TransfersNormalizer
}

// NewPipeline construye el pipeline.
func NewPipeline(opts Options) *Pipeline {
	excluded := opts.ExcludedStores
	if excluded == nil {
		excluded = DefaultExcludedStores
	}
	return &Pipeline{
		sales:     NewSalesNormalizer(excluded),
		products:  NewProductsNormalizer(),
		transfers: NewTransfersNormalizer(),
	}
}

var defaultPipeline = NewPipeline(Options{})

// ValidateAndNormalize ejecuta el pipeline con la configuración por defecto.
func ValidateAndNormalize(in Dataset) Result {
	return defaultPipeline.ValidateAndNormalize(in)
}

// ValidateAndNormalize normaliza cada hoja de forma independiente y concatena
// los errores (ventas, productos, traspasos). Nunca falla por filas malformadas.
func (p *Pipeline) ValidateAndNormalize(in Dataset) Result {
	sales, salesErrs, salesStats := p.sales.Normalize(in.Sales)
	products, productErrs, productStats := p.products.Normalize(in.Products)
	transfers, transferErrs, transferStats := p.transfers.Normalize(in.Transfers)

	errs := make([]string, 0, len(salesErrs)+len(productErrs)+len(transferErrs))
	for _, group := range [][]RowError{salesErrs, productErrs, transferErrs} {
		for _, e := range group {
			errs = append(errs, e.String())
		}
	}
	return Result{
		Sales:     sales,
		Products:  products,
		Transfers: transfers,
		Errors:    errs,
		Stats: Stats{
			Sales:     salesStats,
			Products:  productStats,
			Transfers: transferStats,
		},
	}
}
