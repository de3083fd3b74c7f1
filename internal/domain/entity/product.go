package entity

// Product producto normalizado de una hoja de inventario. SKU nunca vacío;
// Theme nunca vacío (por defecto "Sin Tema").
type Product struct {
	SKU             string   `json:"sku"`
	OrderedQuantity *float64 `json:"ordered_quantity,omitempty"`
	WarehouseDate   string   `json:"warehouse_date,omitempty"`
	Theme           string   `json:"theme"`
	UnitPrice       *float64 `json:"unit_price,omitempty"`
	UnitCost        *float64 `json:"unit_cost,omitempty"`
	FamilyCode      string   `json:"family_code,omitempty"`
	Size            string   `json:"size,omitempty"`
	Color           string   `json:"color,omitempty"`
	Season          string   `json:"season,omitempty"`
}
