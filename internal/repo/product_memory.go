package repo

import (
	"sort"
	"strings"

	models "github.com/prasetyoadi/warung-assistant/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository, used by the handler test suites.
type InMemoryProductRepository struct {
	products []models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) GetByName(name string) (models.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Delete(id int) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func matchesFilter(p models.Product, f ProductFilter) bool {
	if f.Query != "" && !containsFold(p.Name, f.Query) && !containsFold(p.Category, f.Query) {
		return false
	}
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinStock != nil && p.Stock < *f.MinStock {
		return false
	}
	if f.MaxStock != nil && p.Stock > *f.MaxStock {
		return false
	}
	return true
}

func (r *InMemoryProductRepository) Filter(f ProductFilter) ([]models.Product, int, error) {
	var filtered []models.Product
	for _, p := range r.products {
		if matchesFilter(p, f) {
			filtered = append(filtered, p)
		}
	}
	sortProducts(filtered, f.SortBy, f.SortOrder)
	total := len(filtered)
	return paginate(filtered, f.Offset, f.Limit), total, nil
}

func (r *InMemoryProductRepository) SearchTerms(terms []string, opt SearchOptions) ([]models.Product, int, error) {
	if len(terms) == 0 {
		return []models.Product{}, 0, nil
	}

	var matched []models.Product
	for _, p := range r.products {
		if opt.ExcludeName != "" && containsFold(p.Name, opt.ExcludeName) {
			continue
		}
		for _, t := range terms {
			if containsFold(p.Name, t) || containsFold(p.Category, t) {
				matched = append(matched, p)
				break
			}
		}
	}
	sortProducts(matched, opt.SortBy, opt.SortOrder)
	total := len(matched)
	return paginate(matched, opt.Offset, opt.Limit), total, nil
}

func (r *InMemoryProductRepository) Categories() ([]CategoryCount, error) {
	counts := map[string]int{}
	for _, p := range r.products {
		if p.Category != "" {
			counts[p.Category]++
		}
	}

	categories := make([]CategoryCount, 0, len(counts))
	for name, count := range counts {
		categories = append(categories, CategoryCount{Name: name, Count: count})
	}
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].Count != categories[j].Count {
			return categories[i].Count > categories[j].Count
		}
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

func (r *InMemoryProductRepository) Count() (int, error) {
	return len(r.products), nil
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}

func sortProducts(products []models.Product, sortBy, sortOrder string) {
	desc := strings.EqualFold(sortOrder, "desc")
	less := func(a, b models.Product) bool { return a.CreatedAt > b.CreatedAt } // newest first

	switch sortBy {
	case "name":
		less = func(a, b models.Product) bool { return a.Name < b.Name }
	case "price":
		less = func(a, b models.Product) bool { return a.Price < b.Price }
	case "stock":
		less = func(a, b models.Product) bool { return a.Stock < b.Stock }
	case "category":
		less = func(a, b models.Product) bool { return a.Category < b.Category }
	case "created_at":
		less = func(a, b models.Product) bool { return a.CreatedAt < b.CreatedAt }
	default:
		desc = false
	}

	sort.SliceStable(products, func(i, j int) bool {
		if desc {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func paginate(products []models.Product, offset, limit *int) []models.Product {
	if offset != nil && *offset > len(products) {
		return []models.Product{}
	}

	start := 0
	if offset != nil {
		start = clamp(*offset, 0, len(products))
	}

	end := len(products)
	if limit != nil && *limit > 0 {
		end = clamp(start+*limit, start, len(products))
	}

	return products[start:end]
}
