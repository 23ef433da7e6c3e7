package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	DatabaseURL    string   `mapstructure:"DATABASE_URL"`
	DBMaxConns     int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns     int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	JWTSecret      string   `mapstructure:"JWT_SECRET"`
	TokenTTLHours  int      `mapstructure:"TOKEN_TTL_HOURS"`
	GroqAPIKey     string   `mapstructure:"GROQ_API_KEY"`
	GroqBaseURL    string   `mapstructure:"GROQ_BASE_URL"`
	GroqModel      string   `mapstructure:"GROQ_MODEL"`
	OllamaURL      string   `mapstructure:"OLLAMA_URL"`
	OllamaModel    string   `mapstructure:"OLLAMA_MODEL"`
	OverpassURL    string   `mapstructure:"OVERPASS_URL"`
	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST"`
	RequestTimeout int      `mapstructure:"REQUEST_TIMEOUT_SECONDS"`
	BodyLimit      string   `mapstructure:"BODY_LIMIT"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("TOKEN_TTL_HOURS", 72)
	v.SetDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	v.SetDefault("GROQ_MODEL", "llama-3.1-8b-instant")
	v.SetDefault("OLLAMA_URL", "http://127.0.0.1:11434")
	v.SetDefault("OLLAMA_MODEL", "llama3.2")
	v.SetDefault("OVERPASS_URL", "https://overpass-api.de/api/interpreter")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("REQUEST_TIMEOUT_SECONDS", 30)
	v.SetDefault("BODY_LIMIT", "1M")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("JWT_SECRET")
	v.BindEnv("TOKEN_TTL_HOURS")
	v.BindEnv("GROQ_API_KEY")
	v.BindEnv("GROQ_BASE_URL")
	v.BindEnv("GROQ_MODEL")
	v.BindEnv("OLLAMA_URL")
	v.BindEnv("OLLAMA_MODEL")
	v.BindEnv("OVERPASS_URL")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("REQUEST_TIMEOUT_SECONDS")
	v.BindEnv("BODY_LIMIT")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate checks that the configuration is safe to run. Production refuses
// to start without a stable JWT secret: issued tokens would be invalidated
// on every restart, and an empty key is trivially forgeable.
func (c *Config) Validate() error {
	if c.IsProduction() && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	if c.TokenTTLHours <= 0 {
		return fmt.Errorf("TOKEN_TTL_HOURS must be positive, got %d", c.TokenTTLHours)
	}
	return nil
}
