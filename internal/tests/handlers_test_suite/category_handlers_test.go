package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prasetyoadi/warung-assistant/internal/category"
	api "github.com/prasetyoadi/warung-assistant/internal/http"
	handler "github.com/prasetyoadi/warung-assistant/internal/http/handlers"
)

func TestGetCategoriesHandler_MergesSpellingVariants(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	seed := []handler.ProductRequest{
		{Name: "Indomilk", Price: 5000, Category: "olahan-susu", Stock: 5},
		{Name: "Ultra Milk", Price: 6000, Category: "Olahan Susu", Stock: 5},
		{Name: "Frisian Flag", Price: 4500, Category: "olahan   susu", Stock: 5},
		{Name: "Kapal Api", Price: 2000, Category: "Kopi", Stock: 5},
	}
	for _, p := range seed {
		createProduct(r, p)
	}

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var counts []category.Count
	if err := json.NewDecoder(w.Body).Decode(&counts); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if len(counts) != 2 {
		t.Fatalf("expected 2 merged categories, got %v", counts)
	}
	if counts[0].Name != "Olahan Susu" || counts[0].Count != 3 {
		t.Errorf("expected 'Olahan Susu' with 3 products first, got %+v", counts[0])
	}
	if counts[1].Name != "Kopi" || counts[1].Count != 1 {
		t.Errorf("expected 'Kopi' with 1 product, got %+v", counts[1])
	}
}

func TestCleanupCategoriesHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	createProduct(r, handler.ProductRequest{Name: "Indomilk", Price: 5000, Category: "olahan-susu", Stock: 5})
	createProduct(r, handler.ProductRequest{Name: "Kapal Api", Price: 2000, Category: "Kopi", Stock: 5})

	req := httptest.NewRequest(http.MethodPost, "/admin/categories/cleanup", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var result category.CleanupResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.Updated != 1 {
		t.Errorf("expected 1 updated row, got %d", result.Updated)
	}
	if len(result.Changes) != 1 || result.Changes[0].To != "Olahan Susu" {
		t.Errorf("unexpected change log %+v", result.Changes)
	}
}

func TestCleanupCategoriesHandler_Unauthorized(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodPost, "/admin/categories/cleanup", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
}
