package handlers_test_suite

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	ai "github.com/prasetyoadi/warung-assistant/internal/ai"
	api "github.com/prasetyoadi/warung-assistant/internal/http"
	handler "github.com/prasetyoadi/warung-assistant/internal/http/handlers"
)

func TestVoiceCommandHandler_AddToCartIntent(t *testing.T) {
	r := api.NewRouter()
	model.reply = `{"action":"add_to_cart","params":{"product":"gula"},"reply":"Oke, Ibu masukkan ya."}`
	model.err = nil

	w := aiRequest(r, "/command", handler.CommandRequest{Text: "mau beli gula"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var cmd ai.Command
	if err := json.NewDecoder(w.Body).Decode(&cmd); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if cmd.Action != ai.ActionAddToCart || cmd.Params.Product != "gula" {
		t.Errorf("unexpected command %+v", cmd)
	}
	if cmd.Params.Quantity != 1 {
		t.Errorf("unspoken quantity must default to 1, got %d", cmd.Params.Quantity)
	}
}

func TestVoiceCommandHandler_ModelFailureDegradesToSearch(t *testing.T) {
	r := api.NewRouter()
	model.reply = ""
	model.err = errors.New("model unavailable")
	t.Cleanup(func() { model.err = nil })

	w := aiRequest(r, "/command", handler.CommandRequest{Text: "cariin sabun"})
	if w.Code != http.StatusOK {
		t.Fatalf("a broken model must not fail the request, got %d", w.Code)
	}

	var cmd ai.Command
	json.NewDecoder(w.Body).Decode(&cmd)
	if cmd.Action != ai.ActionSearch || cmd.Params.Query != "cariin sabun" {
		t.Errorf("expected search fallback for the raw transcript, got %+v", cmd)
	}
	if cmd.Reply == "" {
		t.Error("fallback reply must not be empty")
	}
}

func TestVoiceCommandHandler_EmptyText(t *testing.T) {
	r := api.NewRouter()

	w := aiRequest(r, "/command", handler.CommandRequest{Text: "   "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for blank transcript, got %d", w.Code)
	}
}

func TestVoiceCommandHandler_NoAPIKey(t *testing.T) {
	r := api.NewRouter()
	clearAllSettings()
	handler.SetAIProvider(testAIProvider(""))
	t.Cleanup(func() { handler.SetAIProvider(testAIProvider("test-key")) })

	w := aiRequest(r, "/command", handler.CommandRequest{Text: "cariin beras"})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 without an API key, got %d", w.Code)
	}
}

func TestVoiceCommandHandler_StoredKeyOverridesMissingDefault(t *testing.T) {
	r := api.NewRouter()
	handler.SetAIProvider(testAIProvider(""))
	t.Cleanup(func() {
		clearAllSettings()
		handler.SetAIProvider(testAIProvider("test-key"))
	})

	// A key saved through the dashboard takes effect without a restart.
	saveSettings(r, handler.SettingsRequest{GeminiAPIKey: "stored-key"})

	model.reply = `{"action":"chat","reply":"Halo nak."}`
	model.err = nil

	w := aiRequest(r, "/command", handler.CommandRequest{Text: "halo bu"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected stored key to satisfy the provider, got %d", w.Code)
	}
}
