package models

// Product represents a catalog item sold in the warung.
type Product struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Unit      string `json:"unit"`
	Category  string `json:"category,omitempty"`
	Location  string `json:"location,omitempty"`
	Detail    string `json:"detail,omitempty"`
	Stock     int    `json:"stock"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// DefaultUnit is applied when a product is created without a unit label.
const DefaultUnit = "pcs"
