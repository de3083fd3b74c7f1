package ingest_test

import "github.com/jhoicas/retail-ingest/internal/domain/ingest"

func row(pairs ...any) ingest.Row {
	cells := make([]ingest.Cell, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		cells = append(cells, ingest.Cell{Header: pairs[i].(string), Value: pairs[i+1]})
	}
	return ingest.NewRow(cells...)
}

// reversed misma fila con las columnas en orden inverso.
func reversed(r ingest.Row) ingest.Row {
	headers := r.Headers()
	cells := make([]ingest.Cell, 0, len(headers))
	for i := len(headers) - 1; i >= 0; i-- {
		v, _ := r.Get(headers[i])
		cells = append(cells, ingest.Cell{Header: headers[i], Value: v})
	}
	return ingest.NewRow(cells...)
}

// sampleDataset filas tal como llegan de exportaciones reales mezcladas.
func sampleDataset() ingest.Dataset {
	return ingest.Dataset{
		Sales: []ingest.Row{
			row(
				"Fecha Documento", "01/01/2024",
				"Articulo", "SKU123",
				"Cantidad", 5,
				"P.V.P.", "1.200,50 €",
				"NombreTPV", "Tienda Madrid",
				"Subtotal", "6002,50",
			),
			row(
				"fechaVenta", 45323,
				"codigoUnico", "SKU456",
				"cantidad", 0,
				"tienda", "COMODIN",
				"subtotal", 0,
			),
			row(
				"Descripcion Familia", "Camisetas",
				"Articulo", "SKU789",
				"Tienda", "Tienda Sevilla",
				"Cantidad", 1,
				"Subtotal", 10,
			),
		},
		Products: []ingest.Row{
			row(
				"Artículo", "SKU123",
				"Fecha REAL entrada en almacen", "2024-02-01",
				"Tema", "Verano",
			),
			row(
				"codigoUnico", "SKU999",
				"tema", "sin tema",
			),
		},
		Transfers: []ingest.Row{
			row(
				"Articulo", "SKU123",
				"Enviado", 10,
				"NombreTpvDestino", "Tienda Barcelona",
				"Fecha", "05-05-2024",
			),
		},
	}
}
