// Package config defines the runtime configuration for bobibot.
//
// Configuration is built from compiled-in defaults overlaid with environment
// variables. There is no config file.
package config

const (
	// EnvAPIEndpoint overrides Config.APIEndpoint.
	EnvAPIEndpoint = "LLM_API_ENDPOINT"
	// EnvAPIKey overrides Config.APIKey.
	EnvAPIKey = "LLM_API_KEY"
)

// Config holds agent settings. It is built once at startup and not mutated
// afterwards.
type Config struct {
	// Name is the agent's display name.
	Name string `json:"name" yaml:"name"`
	// APIEndpoint is the LLM API endpoint. Empty means unset.
	APIEndpoint string `json:"apiEndpoint,omitempty" yaml:"apiEndpoint,omitempty"`
	// APIKey is the LLM API key. Empty means unset.
	APIKey      string  `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
	Model       string  `json:"model" yaml:"model"`
	MaxTokens   uint    `json:"maxTokens" yaml:"maxTokens"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
}

// DefaultConfig returns a Config populated with the compiled-in defaults.
func DefaultConfig() Config {
	return Config{
		Name:        "BobiBot",
		Model:       "gpt-4",
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// HasEndpoint reports whether an API endpoint was configured.
func (c *Config) HasEndpoint() bool { return c.APIEndpoint != "" }

// HasAPIKey reports whether an API key was configured.
func (c *Config) HasAPIKey() bool { return c.APIKey != "" }

// Redacted returns a copy of c with the API key masked, safe for printing.
func (c *Config) Redacted() Config {
	out := *c
	if out.APIKey != "" {
		out.APIKey = maskSecret(out.APIKey)
	}
	return out
}

func maskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}
