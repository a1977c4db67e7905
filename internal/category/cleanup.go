package category

import (
	"time"

	repo "github.com/prasetyoadi/warung-assistant/internal/repo"
)

// Change records one rewritten category spelling.
type Change struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// CleanupResult summarizes a batch normalization run.
type CleanupResult struct {
	Updated int      `json:"updated"`
	Changes []Change `json:"changes"`
}

// Cleanup rewrites every stored category to its normalized form and returns
// the change log (original -> normalized, deduplicated) for observability.
func Cleanup(products repo.ProductRepository) (CleanupResult, error) {
	all, _, err := products.Filter(repo.ProductFilter{})
	if err != nil {
		return CleanupResult{}, err
	}

	result := CleanupResult{Changes: []Change{}}
	seen := map[string]bool{}

	for _, p := range all {
		if p.Category == "" {
			continue
		}
		normalized := Normalize(p.Category)
		if normalized == p.Category {
			continue
		}

		original := p.Category
		p.Category = normalized
		p.UpdatedAt = time.Now().Format(time.RFC3339)
		if _, err := products.Update(p); err != nil {
			return result, err
		}

		if !seen[original] {
			seen[original] = true
			result.Changes = append(result.Changes, Change{From: original, To: normalized})
		}
		result.Updated++
	}

	return result, nil
}
