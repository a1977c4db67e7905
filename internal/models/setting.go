package models

// Setting is a key/value row used for runtime configuration, currently the
// AI provider credentials and model choice.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Setting keys read by the AI endpoints. A stored value takes precedence
// over the environment default.
const (
	SettingGeminiAPIKey = "GEMINI_API_KEY"
	SettingGeminiModel  = "GEMINI_MODEL"
)
