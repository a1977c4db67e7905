package search

import (
	"reflect"
	"testing"

	models "github.com/prasetyoadi/warung-assistant/internal/models"
	repo "github.com/prasetyoadi/warung-assistant/internal/repo"
)

func seedEngine(t *testing.T, names map[string]string) *Engine {
	t.Helper()
	r := repo.NewInMemoryProductRepository()
	for name, cat := range names {
		if _, err := r.Create(models.Product{Name: name, Category: cat, Price: 1000, Stock: 5}); err != nil {
			t.Fatalf("seed %q: %v", name, err)
		}
	}
	return NewEngine(r)
}

func TestSearchPhraseTierWins(t *testing.T) {
	e := seedEngine(t, map[string]string{
		"Kopi ABC Susu":        "Kopi",
		"Top Coffee Cappucino": "Kopi",
	})

	res, err := e.Search("Kopi ABC", repo.SearchOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Tier != TierPhrase {
		t.Errorf("expected tier %q, got %q", TierPhrase, res.Tier)
	}
	if res.Total != 1 || res.Products[0].Name != "Kopi ABC Susu" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestSearchFallsBackToKeywords(t *testing.T) {
	e := seedEngine(t, map[string]string{
		"Top Coffee Cappucino": "Kopi",
	})

	// No product contains the full phrase, but the "Top" token matches.
	res, err := e.Search("Kopi Top", repo.SearchOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Tier != TierKeyword {
		t.Errorf("expected tier %q, got %q", TierKeyword, res.Tier)
	}
	if res.Total != 1 || res.Products[0].Name != "Top Coffee Cappucino" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestSearchFallsBackToPrefixes(t *testing.T) {
	e := seedEngine(t, map[string]string{
		"Fresh Care Minyak Angin": "Obat",
	})

	// "freshcare" matches nothing whole or tokenized; its 4-rune prefix
	// "fres" bridges the concatenation mismatch.
	res, err := e.Search("freshcare", repo.SearchOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Tier != TierPrefix {
		t.Errorf("expected tier %q, got %q", TierPrefix, res.Tier)
	}
	if res.Total != 1 {
		t.Errorf("expected 1 match, got %d", res.Total)
	}
}

func TestSearchExhaustedChainIsEmptyNotError(t *testing.T) {
	e := seedEngine(t, map[string]string{"Gula Pasir": "Sembako"})

	res, err := e.Search("zzzz", repo.SearchOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Tier != "" {
		t.Errorf("expected no winning tier, got %q", res.Tier)
	}
	if res.Total != 0 || len(res.Products) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
	if res.Products == nil {
		t.Error("products slice should be non-nil for JSON encoding")
	}
}

func TestKeywordTermsDropShortTokens(t *testing.T) {
	got := KeywordTerms("Aquviva air mineral enak di x")
	want := []string{"Aquviva", "air", "mineral", "enak"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("KeywordTerms = %v, want %v", got, want)
	}
}

func TestPrefixTermsTruncateToFourRunes(t *testing.T) {
	got := PrefixTerms("freshcare mie")
	want := []string{"fres"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PrefixTerms = %v, want %v", got, want)
	}
}

func TestPhraseTermsEmptyQuery(t *testing.T) {
	if got := PhraseTerms("   "); got != nil {
		t.Errorf("expected nil terms for blank query, got %v", got)
	}
}
