package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	api "github.com/prasetyoadi/warung-assistant/internal/http"
	handler "github.com/prasetyoadi/warung-assistant/internal/http/handlers"
	"github.com/prasetyoadi/warung-assistant/internal/models"
)

func TestGetDashboardMetricsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllScanLogs)
	r := api.NewRouter()

	createProduct(r, handler.ProductRequest{Name: "Kopi ABC", Price: 2000, Stock: 5})
	createProduct(r, handler.ProductRequest{Name: "Gula Pasir", Price: 12000, Stock: 8})

	// One scan today, one from the day before yesterday.
	scanLogRepo.Add(models.ScanLog{IdentifiedName: "Indomie Goreng", CreatedAt: time.Now()})
	scanLogRepo.Add(models.ScanLog{IdentifiedName: "Teh Botol", CreatedAt: time.Now().Add(-48 * time.Hour)})

	req := httptest.NewRequest(http.MethodGet, "/admin/metrics/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var metrics handler.DashboardMetrics
	if err := json.NewDecoder(w.Body).Decode(&metrics); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if metrics.TotalProducts != 2 {
		t.Errorf("expected 2 products, got %d", metrics.TotalProducts)
	}
	if metrics.ScansToday != 1 {
		t.Errorf("expected 1 scan today, got %d", metrics.ScansToday)
	}
}

func TestGetDashboardMetricsHandler_Unauthorized(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin/metrics/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
}
