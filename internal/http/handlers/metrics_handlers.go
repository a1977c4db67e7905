package handlers

import (
	"log"
	"net/http"
	"time"
)

// GetDashboardMetricsHandler godoc
// @Summary Dashboard metrics for the admin view
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardMetrics
// @Failure 500 {object} ErrorResponse
// @Router /admin/metrics/dashboard [get]
func GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	total, err := productRepo.Count()
	if err != nil {
		log.Printf("metrics: product count failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch metrics")
		return
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	scans, err := scanLogRepo.CountSince(startOfDay)
	if err != nil {
		log.Printf("metrics: scan count failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch metrics")
		return
	}

	_ = writeJSON(w, http.StatusOK, DashboardMetrics{
		TotalProducts: total,
		ScansToday:    scans,
	})
}
