package ai

import (
	"context"
	"errors"
	"testing"

	models "github.com/prasetyoadi/warung-assistant/internal/models"
	repo "github.com/prasetyoadi/warung-assistant/internal/repo"
	search "github.com/prasetyoadi/warung-assistant/internal/search"
)

func TestIdentifyParsesReplyAndStripsDataPrefix(t *testing.T) {
	m := &fakeModel{reply: "```json\n{\"name\":\"Indomie Goreng\",\"category\":\"Mie Instan\",\"searchKeywords\":[\"indomie\",\"mie goreng\"],\"alternatives\":[\"Mie Sedaap\"]}\n```"}

	res, err := Identify(context.Background(), m, "data:image/jpeg;base64,AAAA")
	if err != nil {
		t.Fatal(err)
	}
	if res.Name != "Indomie Goreng" || res.Category != "Mie Instan" {
		t.Errorf("unexpected result %+v", res)
	}
	if len(res.Alternatives) != 1 || res.Alternatives[0] != "Mie Sedaap" {
		t.Errorf("unexpected alternatives %v", res.Alternatives)
	}

	if len(m.parts) != 2 {
		t.Fatalf("expected prompt + image, got %d parts", len(m.parts))
	}
	if m.parts[1].Data != "AAAA" {
		t.Errorf("data URL prefix should be stripped, got %q", m.parts[1].Data)
	}
}

func TestIdentifyUnparseableReplyUsesRawText(t *testing.T) {
	m := &fakeModel{reply: "  Kopi Kapal Api Special  "}

	res, err := Identify(context.Background(), m, "AAAA")
	if err != nil {
		t.Fatal(err)
	}
	if res.Name != "Kopi Kapal Api Special" {
		t.Errorf("expected raw text as name, got %q", res.Name)
	}
}

func TestIdentifyModelErrorIsReturned(t *testing.T) {
	m := &fakeModel{err: errors.New("timeout")}

	if _, err := Identify(context.Background(), m, "AAAA"); err == nil {
		t.Fatal("expected transport error to surface")
	}
}

func seedResolver(t *testing.T, products ...models.Product) *search.Engine {
	t.Helper()
	r := repo.NewInMemoryProductRepository()
	for _, p := range products {
		if _, err := r.Create(p); err != nil {
			t.Fatal(err)
		}
	}
	return search.NewEngine(r)
}

func TestResolvePhraseMatchWins(t *testing.T) {
	engine := seedResolver(t,
		models.Product{Name: "Indomie Goreng", Category: "Mie Instan"},
		models.Product{Name: "Mie Sedaap Goreng", Category: "Mie Instan"},
	)

	resolution, err := Resolve(engine, ScanResult{Name: "Indomie Goreng"})
	if err != nil {
		t.Fatal(err)
	}
	if len(resolution.Products) != 1 || resolution.Products[0].Name != "Indomie Goreng" {
		t.Errorf("unexpected products %+v", resolution.Products)
	}
}

func TestResolveFallsBackToModelKeywords(t *testing.T) {
	engine := seedResolver(t,
		models.Product{Name: "Teh Botol Sosro", Category: "Minuman"},
	)

	resolution, err := Resolve(engine, ScanResult{
		Name:           "Sosro Tehbotol Original",
		SearchKeywords: []string{"teh botol"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(resolution.Products) != 1 || resolution.Products[0].Name != "Teh Botol Sosro" {
		t.Errorf("unexpected products %+v", resolution.Products)
	}
}

func TestResolveRecommendationsExcludeIdentifiedName(t *testing.T) {
	engine := seedResolver(t,
		models.Product{Name: "Indomie Goreng", Category: "Mie Instan"},
		models.Product{Name: "Mie Sedaap Goreng", Category: "Mie Instan"},
	)

	resolution, err := Resolve(engine, ScanResult{
		Name:         "Indomie Goreng",
		Alternatives: []string{"Mie Sedaap"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(resolution.Recommendations) != 1 || resolution.Recommendations[0].Name != "Mie Sedaap Goreng" {
		t.Fatalf("unexpected recommendations %+v", resolution.Recommendations)
	}
	for _, p := range resolution.Recommendations {
		if p.Name == "Indomie Goreng" {
			t.Error("recommendations must exclude the identified product")
		}
	}
}

func TestResolveUnknownProductIsEmptyNotError(t *testing.T) {
	engine := seedResolver(t, models.Product{Name: "Gula Pasir", Category: "Sembako"})

	resolution, err := Resolve(engine, ScanResult{Name: "Zzz"})
	if err != nil {
		t.Fatal(err)
	}
	if len(resolution.Products) != 0 {
		t.Errorf("expected no products, got %+v", resolution.Products)
	}
	if resolution.Products == nil || resolution.Recommendations == nil {
		t.Error("slices should be non-nil for JSON encoding")
	}
}
