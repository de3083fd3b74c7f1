package entity

// Transfer traspaso de mercancía a una tienda. DestinationStore nunca vacío.
type Transfer struct {
	SKU              string   `json:"sku,omitempty"`
	QuantitySent     *float64 `json:"quantity_sent,omitempty"`
	DestinationStore string   `json:"destination_store"`
	SentDate         string   `json:"sent_date,omitempty"`
}
