// Package ai wraps the external generative model: prompt shaping on the way
// in, defensive parsing on the way out. The model itself is an opaque
// request/response boundary.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	models "github.com/prasetyoadi/warung-assistant/internal/models"
	repo "github.com/prasetyoadi/warung-assistant/internal/repo"
)

// Part is one piece of a prompt: text or base64 image data.
type Part struct {
	Text     string
	MimeType string
	Data     string
}

// Model is the oracle boundary. Tests substitute a fake; production uses
// the Gemini REST API.
type Model interface {
	Generate(ctx context.Context, parts []Part) (string, error)
}

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Gemini calls the generateContent endpoint of one Gemini model.
type Gemini struct {
	APIKey    string
	ModelName string
	BaseURL   string
	Client    *http.Client
}

func NewGemini(apiKey, modelName string) *Gemini {
	return &Gemini{
		APIKey:    apiKey,
		ModelName: modelName,
		BaseURL:   defaultBaseURL,
		Client:    &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiRequest struct {
	Contents []struct {
		Parts []geminiPart `json:"parts"`
	} `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *Gemini) Generate(ctx context.Context, parts []Part) (string, error) {
	var req geminiRequest
	req.Contents = make([]struct {
		Parts []geminiPart `json:"parts"`
	}, 1)
	for _, p := range parts {
		gp := geminiPart{Text: p.Text}
		if p.Data != "" {
			gp = geminiPart{InlineData: &geminiInlineData{MimeType: p.MimeType, Data: p.Data}}
		}
		req.Contents[0].Parts = append(req.Contents[0].Parts, gp)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.BaseURL, g.ModelName, g.APIKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", err
	}

	var out geminiResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("invalid model response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("model error: %s", out.Error.Message)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("model returned no candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// ErrNoAPIKey signals that neither the settings store nor the environment
// provides a provider key.
var ErrNoAPIKey = errors.New("no AI API key configured")

// ModelFactory builds a Model for resolved credentials. Tests inject fakes.
type ModelFactory func(apiKey, modelName string) Model

// Provider resolves credentials per request so a key saved in the dashboard
// takes effect without a restart. Precedence: stored setting > default.
type Provider struct {
	settings     repo.SettingRepository
	defaultKey   string
	defaultModel string
	factory      ModelFactory
}

func NewProvider(settings repo.SettingRepository, defaultKey, defaultModel string, factory ModelFactory) *Provider {
	if factory == nil {
		factory = func(apiKey, modelName string) Model { return NewGemini(apiKey, modelName) }
	}
	return &Provider{
		settings:     settings,
		defaultKey:   defaultKey,
		defaultModel: defaultModel,
		factory:      factory,
	}
}

func (p *Provider) Resolve() (Model, error) {
	apiKey := p.defaultKey
	modelName := p.defaultModel

	if s, err := p.settings.Get(models.SettingGeminiAPIKey); err == nil && s.Value != "" {
		apiKey = s.Value
	}
	if s, err := p.settings.Get(models.SettingGeminiModel); err == nil && s.Value != "" {
		modelName = s.Value
	}

	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	return p.factory(apiKey, modelName), nil
}
