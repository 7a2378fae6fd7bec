package types

import "time"

// Product represents a catalog item. SKU is unique across the products
// collection, enforced by a uniqueness index.
type Product struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	Price          float64           `json:"price"`
	Stock          int               `json:"stock"`
	SKU            string            `json:"sku"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications"`
	CreateDate     time.Time         `json:"createDate"`
	UpdateDate     time.Time         `json:"updateDate"`
}

// Validate checks required fields.
func (p *Product) Validate() error {
	if p.Name == "" || p.SKU == "" {
		return ErrInvalidName
	}
	return nil
}

// InStock reports whether the product has remaining stock.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
