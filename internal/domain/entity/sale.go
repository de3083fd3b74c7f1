package entity

// Sale venta normalizada de una hoja de ventas.
// SaleDate es "YYYY-MM-DD" o vacío; Month es "<Mes> <año>" derivado de SaleDate.
type Sale struct {
	Act               string   `json:"act,omitempty"`
	SKU               string   `json:"sku"`
	Quantity          float64  `json:"quantity"`
	UnitPrice         *float64 `json:"unit_price,omitempty"`
	Subtotal          float64  `json:"subtotal"`
	SaleDate          string   `json:"sale_date,omitempty"`
	Store             string   `json:"store"`
	StoreCode         string   `json:"store_code,omitempty"`
	Season            string   `json:"season,omitempty"`
	FamilyCode        string   `json:"family_code,omitempty"`
	FamilyDescription string   `json:"family_description"`
	Size              string   `json:"size,omitempty"`
	Color             string   `json:"color,omitempty"`
	UnitCost          *float64 `json:"unit_cost,omitempty"`
	IsOnline          bool     `json:"is_online"`
	Month             string   `json:"month,omitempty"`
}
