package entity

import (
	"github.com/shopspring/decimal"
)

// Product represents the product table. Only identity, title and reference
// price are needed for ranking; category and material are carried for display.
type Product struct {
	ID       string          `db:"id"`
	Title    string          `db:"title"`
	Price    decimal.Decimal `db:"price"`
	Category string          `db:"category"`
	Material string          `db:"material"`
}

// Catalog indexes products by id.
type Catalog map[string]Product

// NewCatalog builds a Catalog; for duplicated ids the first product wins.
func NewCatalog(products []Product) Catalog {
	c := make(Catalog, len(products))
	for _, p := range products {
		if _, ok := c[p.ID]; ok {
			continue
		}
		c[p.ID] = p
	}
	return c
}
