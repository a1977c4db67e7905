package handlers

import (
	"log"
	"net/http"
	"strings"

	ai "github.com/prasetyoadi/warung-assistant/internal/ai"
)

// VoiceCommandHandler godoc
// @Summary Interpret a voice transcript
// @Description Maps free text onto a structured search / add-to-cart / chat command; model failures degrade to a plain search
// @Tags ai
// @Accept json
// @Produce json
// @Param command body CommandRequest true "Voice transcript"
// @Success 200 {object} ai.Command
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /command [post]
func VoiceCommandHandler(w http.ResponseWriter, r *http.Request) {
	var req CommandRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text input is required")
		return
	}

	model, err := aiProvider.Resolve()
	if err != nil {
		log.Printf("voice command: %v", err)
		writeError(w, http.StatusInternalServerError, "server misconfiguration: no AI API key")
		return
	}

	// Interpret never fails; a broken model reply comes back as a search
	// for the raw transcript.
	cmd := ai.Interpret(r.Context(), model, req.Text)
	_ = writeJSON(w, http.StatusOK, cmd)
}
