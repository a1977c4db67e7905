package repo

import (
	models "github.com/prasetyoadi/warung-assistant/internal/models"
)

// CategoryCount is one raw (not yet normalized) category value with the
// number of products carrying it.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ProductRepository defines the interface for catalog data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetByID(id int) (models.Product, error)
	GetByName(name string) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error

	// Filter runs a single constrained query: optional phrase condition on
	// name/category plus category/price/stock ranges. No fallback tiers.
	Filter(f ProductFilter) ([]models.Product, int, error)

	// SearchTerms matches any of the given terms as case-insensitive
	// substrings of name or category. Used by the fallback search tiers.
	SearchTerms(terms []string, opt SearchOptions) ([]models.Product, int, error)

	// Categories returns raw category values with product counts,
	// most-used first, excluding products without a category.
	Categories() ([]CategoryCount, error)

	Count() (int, error)
}
