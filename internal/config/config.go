package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env"` // current application environment (local, dev, prod etc)
	TelegramAPIToken string `mapstructure:"-"`   // Telegram API token loaded from environment
	Bot              Bot    `mapstructure:"bot"` // telegram bot section
	Server           Server `mapstructure:"server"`
	AI               AI     `mapstructure:"ai"`
}

// Bot contains settings of the Telegram front end.
type Bot struct {
	QuizAPIURL        string        `mapstructure:"quiz_api_url"`        // base URL of the quiz generation API
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`     // upper bound for one generation call
	NextQuestionDelay time.Duration `mapstructure:"next_question_delay"` // pause before revealing the next question
}

// Server contains settings of the quiz generation HTTP API.
type Server struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AI contains settings of the OpenAI-compatible completion endpoint
// used to generate quiz content.
type AI struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"-"` // loaded from environment
	Model       string        `mapstructure:"model"`
	Temperature float32       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from an optional .env file, config files
// and environment variables.
func Load() (*Config, error) {
	// Pick up a local .env if present; real environments set vars directly.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("bot.quiz_api_url", "http://localhost:8000")
	v.SetDefault("bot.request_timeout", "60s")
	v.SetDefault("bot.next_question_delay", "2s")
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("ai.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("ai.model", "llama-3.3-70b-versatile")
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.max_tokens", 4096)
	v.SetDefault("ai.timeout", "60s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("ai_api_key", "AI_API_KEY")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("bot.quiz_api_url", "QUIZ_API_URL")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.AI.APIKey = v.GetString("ai_api_key")

	return &cfg, nil
}

// ValidateBot checks the variables the Telegram bot cannot run without.
func (c *Config) ValidateBot() error {
	if c.TelegramAPIToken == "" {
		return fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}
	return nil
}

// ValidateServer checks the variables the generation API cannot run without.
func (c *Config) ValidateServer() error {
	if c.AI.APIKey == "" {
		return fmt.Errorf("%w: AI_API_KEY", ErrMissingEnvironmentVariables)
	}
	return nil
}
