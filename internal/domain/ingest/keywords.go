package ingest

import "strings"

// Diccionarios de cabeceras vistos en exportaciones reales (TPV, ERP de
// almacén). Las palabras clave se normalizan al construir el campo.
//
// La búsqueda por subcadena funciona en ambos sentidos, así que las claves
// compuestas largas ("fecha documento") van en campos solo-exactos: como
// subcadena casarían con cabeceras cortas como "Documento".

var (
	// SKUArticleField prefiere el código único de artículo frente al código de modelo.
	SKUArticleField = PredicateField("sku", ContainsButNot("articulo", "modelo"))
	SKUField        = NewField("sku", "articulo", "codigounico", "sku", "referencia")

	StoreField = NewField("store", "tienda", "tpv", "store").
			Excluding("cod", "destino", "origen")
	StoreCodeField = NewField("store_code", "codigotpv", "codigo tpv", "codigo tienda", "cod tienda", "codtienda", "store code", "storecode").
			ExactOnly().
			WithPredicate(isStoreCodeKey)

	QuantityField = NewField("quantity", "cantidad", "unidades", "uds", "qty", "quantity").
			Excluding("pedid", "envia")
	PriceField = NewField("unit_price", "pvp", "p.v.p.", "precio", "price").
			Excluding("coste", "costo")
	SubtotalField = NewField("subtotal", "subtotal", "importe", "total", "revenue")

	SaleDateExactField = NewField("sale_date", "fecha documento", "fechaventa", "fecha venta", "fecha de venta", "fecha ticket", "sale_date").
				ExactOnly()
	SaleDateField = NewField("sale_date", "fecha", "date")
	SeasonField   = NewField("season", "temporada", "season")

	FamilyCodeExactField = NewField("family_code", "codigo familia", "cod familia", "codfamilia", "cod. familia", "family code").
				ExactOnly()
	FamilyCodeField = NewField("family_code", "familia", "family").
			Excluding("descripcion", "desc", "nombre")
	FamilyDescriptionField = NewField("family_description", "descripcion familia", "desc familia", "familia descripcion", "nombre familia").
				ExactOnly().
				WithPredicate(ContainsAll("descripcion", "familia"))

	SizeField     = NewField("size", "talla", "size")
	ColorField    = NewField("color", "color", "colour")
	UnitCostField = NewField("unit_cost", "coste", "costo", "cost")
	ActField      = NewField("act", "act", "acto").ExactOnly()

	OrderedQuantityField = NewField("ordered_quantity", "pedid", "cantidad", "unidades", "qty")
	WarehouseDateField   = NewField("warehouse_date", "fecha almacen", "fecha entrada almacen", "fecha real entrada en almacen", "fecha entrada").
				ExactOnly().
				WithPredicate(ContainsAll("fecha", "almac"))
	ThemeField = NewField("theme", "tema", "theme")

	QuantitySentField  = NewField("quantity_sent", "enviad")
	DestinationField   = NewField("destination_store", "destino", "destination")
	SentDateExactField = NewField("sent_date", "fecha envio", "fecha de envio", "fecha traspaso", "fecha salida").
				ExactOnly()
	SentDateField = NewField("sent_date", "fecha", "date")
)

func isStoreCodeKey(key string) bool {
	if !strings.Contains(key, "cod") {
		return false
	}
	return strings.Contains(key, "tienda") || strings.Contains(key, "tpv") || strings.Contains(key, "store")
}

// DefaultExcludedStores tokens de tiendas administrativas que no son ventas reales.
var DefaultExcludedStores = []string{"COMODIN", "R998", "ECI ONLINE", "DEVOLUCIONES WEB"}

// ThemeSentinel tema por defecto cuando el producto no trae uno.
const ThemeSentinel = "Sin Tema"

var monthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}
