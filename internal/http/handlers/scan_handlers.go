package handlers

import (
	"log"
	"net/http"
	"time"

	ai "github.com/prasetyoadi/warung-assistant/internal/ai"
	models "github.com/prasetyoadi/warung-assistant/internal/models"
)

// ScanProductHandler godoc
// @Summary Identify a photographed product
// @Description Runs the vision model on a base64 image and resolves the identified name against the catalog via the fallback chain
// @Tags ai
// @Accept json
// @Produce json
// @Param scan body ScanRequest true "Base64-encoded image"
// @Success 200 {object} ScanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /scan-ai [post]
func ScanProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}
	if req.Image == "" {
		writeError(w, http.StatusBadRequest, "no image provided")
		return
	}

	model, err := aiProvider.Resolve()
	if err != nil {
		log.Printf("scan: %v", err)
		writeError(w, http.StatusInternalServerError, "server misconfiguration: no AI API key")
		return
	}

	result, err := ai.Identify(r.Context(), model, req.Image)
	if err != nil {
		log.Printf("scan failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to process image")
		return
	}

	resolution, err := ai.Resolve(searchEngine, result)
	if err != nil {
		log.Printf("scan resolution failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to process image")
		return
	}

	if _, err := scanLogRepo.Add(models.ScanLog{
		IdentifiedName: result.Name,
		CreatedAt:      time.Now(),
	}); err != nil {
		// The scan itself succeeded; losing the metric row is not fatal.
		log.Printf("scan log write failed: %v", err)
	}

	alternatives := result.Alternatives
	if alternatives == nil {
		alternatives = []string{}
	}

	_ = writeJSON(w, http.StatusOK, ScanResponse{
		IdentifiedName:  result.Name,
		Alternatives:    alternatives,
		Products:        resolution.Products,
		Recommendations: resolution.Recommendations,
	})
}
