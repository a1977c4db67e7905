// Package search implements the cascading product-search fallback chain:
// a fixed, ordered list of matcher tiers tried until one yields rows.
package search

import (
	"strings"

	models "github.com/prasetyoadi/warung-assistant/internal/models"
	repo "github.com/prasetyoadi/warung-assistant/internal/repo"
)

// Tier names, recorded as result provenance.
const (
	TierPhrase  = "phrase"
	TierKeyword = "keyword"
	TierPrefix  = "prefix"
)

const minKeywordLen = 3 // tokens shorter than this are discarded
const prefixLen = 4     // tier-3 truncation length

// Matcher is one tier of the fallback chain: a pure function deriving
// search terms from the raw query. An empty term list skips the tier.
type Matcher struct {
	Name  string
	Terms func(q string) []string
}

// Tiers is the canonical fallback chain, in strict precedence order.
var Tiers = []Matcher{
	{Name: TierPhrase, Terms: PhraseTerms},
	{Name: TierKeyword, Terms: KeywordTerms},
	{Name: TierPrefix, Terms: PrefixTerms},
}

// PhraseTerms returns the whole trimmed query as a single term.
func PhraseTerms(q string) []string {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}
	return []string{q}
}

// KeywordTerms splits the query on whitespace and keeps tokens long enough
// to be meaningful. "Aquviva air mineral enak" -> [Aquviva, mineral, enak].
func KeywordTerms(q string) []string {
	var terms []string
	for _, tok := range strings.Fields(q) {
		if len([]rune(tok)) >= minKeywordLen {
			terms = append(terms, tok)
		}
	}
	return terms
}

// PrefixTerms truncates the keyword tokens to their first four runes to
// bridge concatenation mismatches, e.g. "freshcare" vs the stored
// "Fresh Care" both reduce to "fres".
func PrefixTerms(q string) []string {
	var terms []string
	for _, tok := range KeywordTerms(q) {
		runes := []rune(tok)
		if len(runes) >= prefixLen {
			terms = append(terms, string(runes[:prefixLen]))
		}
	}
	return terms
}

// Result is one resolved search: the winning tier (empty when every tier
// came up short) plus the page of products it produced.
type Result struct {
	Tier     string
	Products []models.Product
	Total    int
}

// Engine resolves free-text queries against a product repository.
type Engine struct {
	products repo.ProductRepository
}

func NewEngine(products repo.ProductRepository) *Engine {
	return &Engine{products: products}
}

// Search walks the fallback chain. Sort and pagination apply only to the
// winning tier's query; exhausting every tier is an empty result, not an
// error.
func (e *Engine) Search(q string, opt repo.SearchOptions) (Result, error) {
	for _, tier := range Tiers {
		terms := tier.Terms(q)
		if len(terms) == 0 {
			continue
		}

		products, total, err := e.products.SearchTerms(terms, opt)
		if err != nil {
			return Result{}, err
		}
		if total > 0 {
			return Result{Tier: tier.Name, Products: products, Total: total}, nil
		}
	}
	return Result{Products: []models.Product{}}, nil
}

// SearchTerms runs a single term set outside the chain, e.g. the image-scan
// alternatives lookup.
func (e *Engine) SearchTerms(terms []string, opt repo.SearchOptions) ([]models.Product, int, error) {
	return e.products.SearchTerms(terms, opt)
}
