package handlers

import (
	cart "github.com/prasetyoadi/warung-assistant/internal/cart"
	category "github.com/prasetyoadi/warung-assistant/internal/category"
	models "github.com/prasetyoadi/warung-assistant/internal/models"
)

type ProductRequest struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
	Location string `json:"location"`
	Detail   string `json:"detail"`
	Stock    int    `json:"stock"`
}

// UpdateProductRequest distinguishes omitted fields (nil, left unchanged)
// from explicitly empty ones (cleared). This asymmetry is deliberate.
type UpdateProductRequest struct {
	Name     *string `json:"name"`
	Price    *int    `json:"price"`
	Unit     *string `json:"unit"`
	Category *string `json:"category"`
	Location *string `json:"location"`
	Detail   *string `json:"detail"`
	Stock    *int    `json:"stock"`
}

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type ProductsSearchResult struct {
	Products   []models.Product `json:"products"`
	Pagination Pagination       `json:"pagination"`

	// Tier names the fallback stage that produced the page; empty for
	// plain filtered listings and empty result sets.
	Tier string `json:"tier,omitempty"`
}

type CommandRequest struct {
	Text string `json:"text"`
}

type ScanRequest struct {
	Image string `json:"image"`
}

type ScanResponse struct {
	IdentifiedName  string           `json:"identifiedName"`
	Alternatives    []string         `json:"alternatives"`
	Products        []models.Product `json:"products"`
	Recommendations []models.Product `json:"recommendations"`
}

type SettingsRequest struct {
	GeminiAPIKey string `json:"gemini_api_key"`
	GeminiModel  string `json:"gemini_model"`
}

type SettingsResponse struct {
	Settings map[string]string `json:"settings"`
}

type CategoriesResponse []category.Count

type CartItemRequest struct {
	ProductID int `json:"product_id"`
	Qty       int `json:"qty"`
}

type CartResponse struct {
	Items []cart.Item `json:"items"`
	Total int         `json:"total"`
	Count int         `json:"count"`
}

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type DashboardMetrics struct {
	TotalProducts int `json:"total_products"`
	ScansToday    int `json:"scans_today"`
}

type ImportProductsResult struct {
	ImportedProductsCount int                      `json:"imported"`
	Errors                []ProductValidationError `json:"errors"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
