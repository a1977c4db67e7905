package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	models "github.com/prasetyoadi/warung-assistant/internal/models"
	repo "github.com/prasetyoadi/warung-assistant/internal/repo"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// SearchProductsHandler godoc
// @Summary Search the catalog
// @Description Free-text search with the tiered fallback chain, or a plain filtered listing when category/price/stock filters are present
// @Tags products
// @Produce json
// @Param q query string false "Free-text query"
// @Param category query string false "Category filter"
// @Param minPrice query int false "Minimum price"
// @Param maxPrice query int false "Maximum price"
// @Param minStock query int false "Minimum stock"
// @Param maxStock query int false "Maximum stock"
// @Param sortBy query string false "Sort field (name|price|stock|category|created_at)"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func SearchProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := 1
	if v := q.Get("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 {
			writeError(w, http.StatusBadRequest, "page must be a positive number")
			return
		}
		page = p
	}

	limit := defaultPageLimit
	if v := q.Get("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive number")
			return
		}
		if l > maxPageLimit {
			l = maxPageLimit
		}
		limit = l
	}
	offset := (page - 1) * limit

	filter := repo.ProductFilter{
		Query:     strings.TrimSpace(q.Get("q")),
		Category:  strings.TrimSpace(q.Get("category")),
		MinPrice:  parseIntPtr(q.Get("minPrice")),
		MaxPrice:  parseIntPtr(q.Get("maxPrice")),
		MinStock:  parseIntPtr(q.Get("minStock")),
		MaxStock:  parseIntPtr(q.Get("maxStock")),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		Offset:    &offset,
		Limit:     &limit,
	}

	var (
		products []models.Product
		total    int
		tier     string
		err      error
	)

	// Filters take precedence: when any is active the fallback chain is
	// bypassed and the query degrades to a single phrase condition.
	if filter.Query == "" || filter.HasConstraints() {
		products, total, err = productRepo.Filter(filter)
	} else {
		opt := repo.SearchOptions{
			SortBy:    filter.SortBy,
			SortOrder: filter.SortOrder,
			Offset:    &offset,
			Limit:     &limit,
		}
		result, serr := searchEngine.Search(filter.Query, opt)
		products, total, tier, err = result.Products, result.Total, result.Tier, serr
	}
	if err != nil {
		log.Printf("product search failed: %v", err)
		writeError(w, http.StatusInternalServerError, "could not search products")
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	totalPages := (total + limit - 1) / limit

	_ = writeJSON(w, http.StatusOK, ProductsSearchResult{
		Products: products,
		Pagination: Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
		Tier: tier,
	})
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "could not fetch product")
		return
	}
	_ = writeJSON(w, http.StatusOK, product)
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} models.Product
// @Failure 400 {object} []ProductValidationError
// @Router /admin/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		_ = writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	if strings.TrimSpace(req.Unit) == "" {
		req.Unit = models.DefaultUnit
	}

	now := time.Now().Format(time.RFC3339)
	product := models.Product{
		Name:      req.Name,
		Price:     req.Price,
		Unit:      req.Unit,
		Category:  req.Category,
		Location:  req.Location,
		Detail:    req.Detail,
		Stock:     req.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := productRepo.Create(product)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			writeError(w, http.StatusConflict, "product name already exists")
			return
		}
		log.Printf("create product failed: %v", err)
		writeError(w, http.StatusInternalServerError, "could not create product")
		return
	}

	invalidateCategoryCache()
	_ = writeJSON(w, http.StatusCreated, created)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Partial update: omitted fields keep their value, explicitly empty optional fields are cleared
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param product body UpdateProductRequest true "Fields to change"
// @Success 200 {object} models.Product
// @Failure 400 {object} []ProductValidationError
// @Failure 404 {object} ErrorResponse
// @Router /admin/products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	var req UpdateProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "could not fetch product")
		return
	}

	applyUpdate(&product, req)

	validationErrors := validateProduct(ProductRequest{
		Name:  product.Name,
		Price: product.Price,
		Stock: product.Stock,
	})
	if len(validationErrors) > 0 {
		_ = writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	product.UpdatedAt = time.Now().Format(time.RFC3339)
	updated, err := productRepo.Update(product)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		log.Printf("update product failed: %v", err)
		writeError(w, http.StatusInternalServerError, "could not update product")
		return
	}

	invalidateCategoryCache()
	_ = writeJSON(w, http.StatusOK, updated)
}

// applyUpdate copies the provided fields onto the stored product. A nil
// pointer means "leave unchanged"; an empty value clears the optional
// field (unit snaps back to its default instead of going empty).
func applyUpdate(p *models.Product, req UpdateProductRequest) {
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Unit != nil {
		p.Unit = strings.TrimSpace(*req.Unit)
		if p.Unit == "" {
			p.Unit = models.DefaultUnit
		}
	}
	if req.Category != nil {
		p.Category = strings.TrimSpace(*req.Category)
	}
	if req.Location != nil {
		p.Location = strings.TrimSpace(*req.Location)
	}
	if req.Detail != nil {
		p.Detail = strings.TrimSpace(*req.Detail)
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	if err := productRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		log.Printf("delete product failed: %v", err)
		writeError(w, http.StatusInternalServerError, "could not delete product")
		return
	}

	invalidateCategoryCache()
	w.WriteHeader(http.StatusNoContent)
}

func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
