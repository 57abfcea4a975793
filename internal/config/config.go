package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	LLM        LLMConfig        `mapstructure:"llm"        validate:"required"`
	Generation GenerationConfig `mapstructure:"generation" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                int      `mapstructure:"port"                  validate:"required,gt=0,lt=65536"`
	LogLevel            string   `mapstructure:"log_level"             validate:"required,oneof=debug info warn error"`
	ReadTimeoutSeconds  int      `mapstructure:"read_timeout_seconds"  validate:"gte=0"`
	WriteTimeoutSeconds int      `mapstructure:"write_timeout_seconds" validate:"gte=0"`
	AllowedOrigins      []string `mapstructure:"allowed_origins"`
}

// Supported LLM providers.
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// Provider selects the model service: "groq" or "gemini".
	Provider string `mapstructure:"provider" validate:"required,oneof=groq gemini"`

	// ModelName defaults per provider when empty.
	ModelName string `mapstructure:"model_name"`

	// BaseURL overrides the provider endpoint, e.g. for a proxy.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`

	// APIKey is an optional server-side credential used when the user
	// does not enter one. Usually left empty.
	APIKey string `mapstructure:"api_key"`

	Temperature        float32 `mapstructure:"temperature"          validate:"gte=0,lte=2"`
	MaxTokens          int32   `mapstructure:"max_tokens"           validate:"gte=1,lte=32768"`
	TopP               float32 `mapstructure:"top_p"                validate:"gt=0,lte=1"`
	TimeoutSeconds     int     `mapstructure:"timeout_seconds"      validate:"gte=0"`
	PromptTemplatePath string  `mapstructure:"prompt_template_path"`
}

// GenerationConfig controls how prompts ask for posts and how answers are split.
type GenerationConfig struct {
	ItemLabel string `mapstructure:"item_label" validate:"required"`
	MaxItems  int    `mapstructure:"max_items"  validate:"gt=0,lte=50"`
	MaxChars  int    `mapstructure:"max_chars"  validate:"gt=0"`

	// Debug writes raw model answers and extracted items to the diagnostics log.
	Debug bool `mapstructure:"debug"`
}

// Default model per provider.
const (
	DefaultGroqModel   = "llama3-8b-8192"
	DefaultGeminiModel = "gemini-2.0-flash"
)

// Model returns the configured model name or the provider default.
func (c LLMConfig) Model() string {
	if c.ModelName != "" {
		return c.ModelName
	}
	if c.Provider == ProviderGemini {
		return DefaultGeminiModel
	}
	return DefaultGroqModel
}
