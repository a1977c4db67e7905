package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	models "github.com/prasetyoadi/warung-assistant/internal/models"
	repo "github.com/prasetyoadi/warung-assistant/internal/repo"
	search "github.com/prasetyoadi/warung-assistant/internal/search"
)

// ScanResult is the vision model's reading of a product photo, in the
// source language text as returned by the model.
type ScanResult struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	SearchKeywords []string `json:"searchKeywords"`
	Alternatives   []string `json:"alternatives"`
}

const visionPrompt = `Analyze this image of a product sold in an Indonesian "Warung".
Identify the **Brand** and **Product Name**.
Also suggest 2-3 normalized search keywords and 2-3 **competitor brands** or
similar alternatives commonly sold in warungs.

Strictly output valid JSON format ONLY:
{
    "name": "Visible Brand & Product Name",
    "category": "Generic Category (e.g. Kopi, Sabun, Mie Instan)",
    "searchKeywords": ["keyword1", "keyword2"],
    "alternatives": ["Competitor Brand 1", "Competitor Brand 2"]
}

If the image is unclear/unknown, guess the category and suggest generic brands.
Do not acknowledge or apologize. JSON only.`

// Identify sends a base64 image to the vision model and parses the reply.
// A reply that defies parsing degrades to treating the whole text as the
// identified name; transport and model errors are returned to the caller.
func Identify(ctx context.Context, m Model, imageB64 string) (ScanResult, error) {
	// Strip a data:image/...;base64, prefix when present.
	if i := strings.Index(imageB64, ","); i != -1 {
		imageB64 = imageB64[i+1:]
	}

	reply, err := m.Generate(ctx, []Part{
		{Text: visionPrompt},
		{MimeType: "image/jpeg", Data: imageB64},
	})
	if err != nil {
		return ScanResult{}, fmt.Errorf("vision model: %w", err)
	}

	var result ScanResult
	if err := DecodeLoose(reply, &result); err != nil {
		log.Printf("vision: unparseable model reply, using raw text as name: %v", err)
		return ScanResult{Name: strings.TrimSpace(reply)}, nil
	}
	return result, nil
}

// scanResultLimit caps each scan lookup; the UI shows at most three primary
// matches and three recommendations.
const scanResultLimit = 3

// ScanResolution maps an identified product onto catalog rows.
type ScanResolution struct {
	Products        []models.Product
	Recommendations []models.Product
}

// Resolve re-applies the search fallback chain to a scan result: phrase
// match on the identified name, then the model keywords united with the
// name's own tokens, then 4-rune prefixes of those keywords. When the
// primary set stays small and the model suggested alternatives, a secondary
// lookup by alternative brand names fills the recommendations, excluding
// rows already matching the identified name.
func Resolve(engine *search.Engine, res ScanResult) (ScanResolution, error) {
	limit := scanResultLimit
	opt := repo.SearchOptions{Limit: &limit}

	tiers := [][]string{
		search.PhraseTerms(res.Name),
		keywordUnion(res),
		prefixes(keywordUnion(res)),
	}

	resolution := ScanResolution{Products: []models.Product{}, Recommendations: []models.Product{}}
	for _, terms := range tiers {
		if len(terms) == 0 {
			continue
		}
		products, _, err := engine.SearchTerms(terms, opt)
		if err != nil {
			return ScanResolution{}, err
		}
		if len(products) > 0 {
			resolution.Products = products
			break
		}
	}

	if len(resolution.Products) < scanResultLimit && len(res.Alternatives) > 0 {
		altOpt := opt
		altOpt.ExcludeName = strings.TrimSpace(res.Name)
		recommendations, _, err := engine.SearchTerms(cleanTerms(res.Alternatives), altOpt)
		if err != nil {
			return ScanResolution{}, err
		}
		if recommendations != nil {
			resolution.Recommendations = recommendations
		}
	}

	return resolution, nil
}

// keywordUnion merges the model-suggested keywords with the whitespace
// tokens of the identified name, deduplicated case-insensitively.
func keywordUnion(res ScanResult) []string {
	seen := map[string]bool{}
	var terms []string
	for _, t := range append(cleanTerms(res.SearchKeywords), search.KeywordTerms(res.Name)...) {
		key := strings.ToLower(t)
		if !seen[key] {
			seen[key] = true
			terms = append(terms, t)
		}
	}
	return terms
}

func prefixes(terms []string) []string {
	var out []string
	for _, t := range terms {
		runes := []rune(t)
		if len(runes) >= 4 {
			out = append(out, string(runes[:4]))
		}
	}
	return out
}

func cleanTerms(terms []string) []string {
	var out []string
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
