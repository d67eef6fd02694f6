package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port               string        `mapstructure:"PORT"`
	Env                string        `mapstructure:"ENV"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	DatabaseURL        string        `mapstructure:"DATABASE_URL"`
	CORSAllowOrigin    []string      `mapstructure:"-"`
	LLMProvider        string        `mapstructure:"LLM_PROVIDER"`
	LLMModel           string        `mapstructure:"LLM_MODEL"`
	GeminiAPIKey       string        `mapstructure:"GEMINI_API_KEY"`
	OpenAIAPIKey       string        `mapstructure:"OPENAI_API_KEY"`
	LLMTimeout         time.Duration `mapstructure:"LLM_TIMEOUT"`
	RecommenderTimeout time.Duration `mapstructure:"RECOMMENDER_TIMEOUT"`
	AuthProvider       string        `mapstructure:"AUTH_PROVIDER"`
	SupabaseURL        string        `mapstructure:"SUPABASE_URL"`
	SupabaseAnonKey    string        `mapstructure:"SUPABASE_ANON_KEY"`
	SupabaseServiceKey string        `mapstructure:"SUPABASE_SERVICE_ROLE_KEY"`
	JWTSecret          string        `mapstructure:"JWT_SECRET"`
	SessionTTL         time.Duration `mapstructure:"SESSION_TTL"`
	RedisAddr          string        `mapstructure:"REDIS_ADDR"`
	RedisPassword      string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB            int           `mapstructure:"REDIS_DB"`
	RequireSession     bool          `mapstructure:"REQUIRE_SESSION"`
	ChatRatePerMinute  int           `mapstructure:"CHAT_RATE_PER_MINUTE"`
	ReminderSchedule   string        `mapstructure:"REMINDER_SCHEDULE"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL", "DATABASE_URL", "CORS_ALLOW_ORIGINS",
	"LLM_PROVIDER", "LLM_MODEL", "GEMINI_API_KEY", "OPENAI_API_KEY", "LLM_TIMEOUT",
	"RECOMMENDER_TIMEOUT", "AUTH_PROVIDER", "SUPABASE_URL", "SUPABASE_ANON_KEY",
	"SUPABASE_SERVICE_ROLE_KEY", "JWT_SECRET", "SESSION_TTL", "REDIS_ADDR",
	"REDIS_PASSWORD", "REDIS_DB", "REQUIRE_SESSION", "CHAT_RATE_PER_MINUTE",
	"REMINDER_SCHEDULE",
}

// Load reads configuration from the environment and an optional config file.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	v.AutomaticEnv()
	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.Env = normalizeEnv(cfg.Env)
	cfg.LLMProvider = normalizeProvider(cfg.LLMProvider)
	cfg.AuthProvider = strings.ToLower(strings.TrimSpace(cfg.AuthProvider))
	cfg.CORSAllowOrigin = splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS"))
	if strings.TrimSpace(os.Getenv("REQUIRE_SESSION")) == "" && !v.InConfig("REQUIRE_SESSION") {
		cfg.RequireSession = cfg.Env == "production"
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsDevLike reports whether the environment tolerates in-memory fallbacks.
func (c Config) IsDevLike() bool {
	switch c.Env {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func (c Config) validate() error {
	if c.Env != "production" {
		return nil
	}
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required in production")
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000")
	v.SetDefault("LLM_PROVIDER", "gemini")
	v.SetDefault("LLM_MODEL", "gemini-1.5-flash")
	v.SetDefault("LLM_TIMEOUT", 30*time.Second)
	v.SetDefault("RECOMMENDER_TIMEOUT", 5*time.Second)
	v.SetDefault("AUTH_PROVIDER", "local")
	v.SetDefault("SESSION_TTL", 24*time.Hour)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CHAT_RATE_PER_MINUTE", 20)
	v.SetDefault("REMINDER_SCHEDULE", "0 8 * * *")
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "openai":
		return "openai"
	case "none", "off":
		return "none"
	default:
		return "gemini"
	}
}
