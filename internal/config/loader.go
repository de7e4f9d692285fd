package config

import "os"

// EnvLookup resolves an environment variable, reporting whether it was set.
// os.LookupEnv satisfies it.
type EnvLookup func(key string) (string, bool)

// Load returns DefaultConfig() overlaid with LLM_API_ENDPOINT and LLM_API_KEY
// from the process environment.
func Load() (*Config, error) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom is Load with an injected environment.
func LoadFrom(lookup EnvLookup) (*Config, error) {
	cfg := DefaultConfig()
	if lookup == nil {
		return &cfg, nil
	}

	if v, ok := lookup(EnvAPIEndpoint); ok {
		cfg.APIEndpoint = v
	}
	if v, ok := lookup(EnvAPIKey); ok {
		cfg.APIKey = v
	}

	return &cfg, nil
}
