package handlers

import (
	"log"
	"net/http"

	models "github.com/prasetyoadi/warung-assistant/internal/models"
)

// GetSettingsHandler godoc
// @Summary Read stored system settings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SettingsResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/settings [get]
func GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	settings, err := settingRepo.GetAll()
	if err != nil {
		log.Printf("fetch settings failed: %v", err)
		writeError(w, http.StatusInternalServerError, "could not fetch settings")
		return
	}

	config := map[string]string{}
	for _, s := range settings {
		config[s.Key] = s.Value
	}
	_ = writeJSON(w, http.StatusOK, SettingsResponse{Settings: config})
}

// SaveSettingsHandler godoc
// @Summary Save AI provider settings
// @Description Upserts the Gemini API key and model choice; stored values take precedence over environment defaults
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body SettingsRequest true "Settings to save"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/settings [put]
func SaveSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if req.GeminiAPIKey != "" {
		if err := settingRepo.Upsert(models.Setting{Key: models.SettingGeminiAPIKey, Value: req.GeminiAPIKey}); err != nil {
			log.Printf("save settings failed: %v", err)
			writeError(w, http.StatusInternalServerError, "could not save settings")
			return
		}
	}
	if req.GeminiModel != "" {
		if err := settingRepo.Upsert(models.Setting{Key: models.SettingGeminiModel, Value: req.GeminiModel}); err != nil {
			log.Printf("save settings failed: %v", err)
			writeError(w, http.StatusInternalServerError, "could not save settings")
			return
		}
	}

	_ = writeJSON(w, http.StatusOK, map[string]string{"message": "settings saved"})
}
