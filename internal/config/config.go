// Package config loads the demo CLI's configuration from an optional
// TOML file with environment variable overrides. File values are applied
// first, then environment values on top.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables recognized as overrides.
const (
	EnvNewsURL   = "TICKLOOP_NEWS_URL"
	EnvNewsKey   = "TICKLOOP_API_KEY"
	EnvHelloFile = "TICKLOOP_HELLO_FILE"
)

// Config holds the settings the demo CLI needs for its handlers.
type Config struct {
	// NewsURL is the top-stories endpoint queried by the news handler.
	NewsURL string `toml:"news_url"`

	// NewsAPIKey authenticates against the news API.
	NewsAPIKey string `toml:"news_api_key"`

	// HelloFile is the file read by the read-file handler.
	HelloFile string `toml:"hello_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HelloFile: "hello.txt",
	}
}

// Load reads configuration from path and applies environment overrides.
// A missing file is not an error; defaults are used. A present but
// malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Fall through to env overrides.
		case err != nil:
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overlays environment variables onto cfg. Unset variables
// leave the existing values untouched.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvNewsURL); ok {
		cfg.NewsURL = v
	}
	if v, ok := os.LookupEnv(EnvNewsKey); ok {
		cfg.NewsAPIKey = v
	}
	if v, ok := os.LookupEnv(EnvHelloFile); ok {
		cfg.HelloFile = v
	}
}
