package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// LandingPage is the path of the static document served at GET /.
	LandingPage string `mapstructure:"landing_page" validate:"required"`
}

// LLMConfig contains all Gemini integration related settings.
// The API key is the only setting without a default; its absence is a fatal
// startup condition.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name" validate:"required"`

	// Sampling parameters per generation flow.
	CommentTemperature     float32 `mapstructure:"comment_temperature" validate:"gte=0,lte=2"`
	CommentTopP            float32 `mapstructure:"comment_top_p" validate:"gte=0,lte=1"`
	CommentMaxOutputTokens int32   `mapstructure:"comment_max_output_tokens" validate:"gt=0"`
	PostTemperature        float32 `mapstructure:"post_temperature" validate:"gte=0,lte=2"`
	PostTopP               float32 `mapstructure:"post_top_p" validate:"gte=0,lte=1"`
	PostMaxOutputTokens    int32   `mapstructure:"post_max_output_tokens" validate:"gt=0"`
}
