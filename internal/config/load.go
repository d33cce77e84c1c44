package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults. Everything except the API key has a workable default.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.landing_page", "web/index.html")
	v.SetDefault("llm.model_name", "gemini-2.0-flash")
	v.SetDefault("llm.comment_temperature", 0.9)
	v.SetDefault("llm.comment_top_p", 0.95)
	v.SetDefault("llm.comment_max_output_tokens", 2048)
	v.SetDefault("llm.post_temperature", 0.8)
	v.SetDefault("llm.post_top_p", 0.95)
	v.SetDefault("llm.post_max_output_tokens", 1024)

	// Optional config file in the working directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables with POSTWRIGHT_ prefix override everything,
	// e.g. POSTWRIGHT_SERVER_PORT, POSTWRIGHT_LLM_GEMINI_API_KEY.
	v.SetEnvPrefix("POSTWRIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The credential is conventionally supplied as GEMINI_API_KEY and the
	// listen port as PORT, so bind those unprefixed names as well.
	if err := v.BindEnv("llm.gemini_api_key", "POSTWRIGHT_LLM_GEMINI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind environment variable: %w", err)
	}
	if err := v.BindEnv("server.port", "POSTWRIGHT_SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind environment variable: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
