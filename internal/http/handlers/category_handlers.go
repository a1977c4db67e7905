package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	category "github.com/prasetyoadi/warung-assistant/internal/category"
)

const (
	categoryCacheKey = "categories:list"
	categoryCacheTTL = 5 * time.Minute
)

// GetCategoriesHandler godoc
// @Summary List categories
// @Description Normalized, deduplicated category vocabulary with product counts, most-used first
// @Tags categories
// @Produce json
// @Success 200 {array} category.Count
// @Failure 500 {object} ErrorResponse
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	if Rdb != nil {
		if data, err := Rdb.Get(Ctx, categoryCacheKey).Bytes(); err == nil {
			var cached []category.Count
			if json.Unmarshal(data, &cached) == nil {
				_ = writeJSON(w, http.StatusOK, cached)
				return
			}
		}
	}

	raw, err := productRepo.Categories()
	if err != nil {
		log.Printf("fetch categories failed: %v", err)
		writeError(w, http.StatusInternalServerError, "could not fetch categories")
		return
	}

	counts := make([]category.Count, len(raw))
	for i, c := range raw {
		counts[i] = category.Count{Name: c.Name, Count: c.Count}
	}
	merged := category.MergeCounts(counts)

	if Rdb != nil {
		if data, err := json.Marshal(merged); err == nil {
			_ = Rdb.Set(Ctx, categoryCacheKey, data, categoryCacheTTL).Err()
		}
	}

	_ = writeJSON(w, http.StatusOK, merged)
}

// CleanupCategoriesHandler godoc
// @Summary Normalize stored category spellings
// @Description Batch rewrite of every category to its canonical form, returning the change log
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} category.CleanupResult
// @Failure 500 {object} ErrorResponse
// @Router /admin/categories/cleanup [post]
func CleanupCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	result, err := category.Cleanup(productRepo)
	if err != nil {
		log.Printf("category cleanup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "category cleanup failed")
		return
	}

	invalidateCategoryCache()
	_ = writeJSON(w, http.StatusOK, result)
}

// invalidateCategoryCache drops the cached category list after any catalog
// mutation; the admin UI re-fetches immediately and expects to see its own
// write.
func invalidateCategoryCache() {
	if Rdb != nil {
		_ = Rdb.Del(Ctx, categoryCacheKey).Err()
	}
}
