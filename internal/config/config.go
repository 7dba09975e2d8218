package config

import (
	"fmt"
	"os"
)

// Config holds the application configuration.
type Config struct {
	// GeminiAPIKey enables the direct provider transport.
	GeminiAPIKey string
	// RelayURL is the fallback transport: a chat-completions endpoint that
	// injects a server-held credential. Used when no API key is set.
	RelayURL string
	// Model overrides the transport's default model name.
	Model string
	// SaveDir overrides where save files live.
	SaveDir string
}

// LoadConfig reads configuration from environment variables. At least one
// transport (API key or relay URL) must be configured.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		RelayURL:     os.Getenv("RELAY_URL"),
		Model:        os.Getenv("EPOKHA_MODEL"),
		SaveDir:      os.Getenv("EPOKHA_SAVE_DIR"),
	}

	if cfg.GeminiAPIKey == "" && cfg.RelayURL == "" {
		return nil, fmt.Errorf("neither GEMINI_API_KEY nor RELAY_URL is set")
	}
	return cfg, nil
}
