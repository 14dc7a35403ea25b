package completion

import "time"

// Defaults for the hosted chat-completion endpoint.
const (
	DefaultURL   = "https://api.groq.com/openai/v1/chat/completions"
	DefaultModel = "meta-llama/llama-4-scout-17b-16e-instruct"

	// DefaultTemperature is used for both generation kinds.
	DefaultTemperature = 0.7

	// EmailMaxTokens is the token budget for email generation.
	EmailMaxTokens = 1024

	// HashtagMaxTokens is the token budget for hashtag/description generation.
	HashtagMaxTokens = 512
)

// Driver names accepted by Config.Driver.
const (
	DriverHTTP   = "http"
	DriverOpenAI = "openai"
)

// Config holds completion client configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey string `env:"API_KEY" validate:"required"`
	URL    string `env:"COMPLETION_URL" envDefault:"https://api.groq.com/openai/v1/chat/completions" validate:"required,url"`
	Model  string `env:"COMPLETION_MODEL" envDefault:"meta-llama/llama-4-scout-17b-16e-instruct" validate:"required"`
	Driver string `env:"COMPLETION_DRIVER" envDefault:"http" validate:"oneof=http openai"`

	// Timeout bounds one upstream call. Zero keeps the HTTP client default.
	Timeout time.Duration `env:"COMPLETION_TIMEOUT" validate:"gte=0"`
}

func (c Config) withDefaults() Config {
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	return c
}
