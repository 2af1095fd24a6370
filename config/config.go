package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Interpreter (reasoning backend) configuration.
	InterpreterProvider string `mapstructure:"INTERPRETER_PROVIDER"`
	InterpreterModel    string `mapstructure:"INTERPRETER_MODEL"`
	XAIAPIKey           string `mapstructure:"XAI_API_KEY"`
	XAIBaseURL          string `mapstructure:"XAI_BASE_URL"`
	GeminiAPIKey        string `mapstructure:"GEMINI_API_KEY"`

	// Enrichment source credentials. Each is optional; an empty value
	// disables that one source only.
	GooglePlacesAPIKey string `mapstructure:"GOOGLE_PLACES_API_KEY"`
	YelpAPIKey         string `mapstructure:"YELP_API_KEY"`
	SerpAPIKey         string `mapstructure:"SERP_API_KEY"`

	// Pipeline tuning.
	DefaultLocality         string `mapstructure:"DEFAULT_LOCALITY"`
	PerSourceTimeoutSec     int    `mapstructure:"PER_SOURCE_TIMEOUT_SEC"`
	MaxConcurrentCandidates int    `mapstructure:"MAX_CONCURRENT_CANDIDATES"`
	CollapseDuplicateNames  bool   `mapstructure:"COLLAPSE_DUPLICATE_NAMES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("INTERPRETER_PROVIDER", "grok")
	viper.SetDefault("INTERPRETER_MODEL", "grok-4")
	viper.SetDefault("XAI_BASE_URL", "https://api.x.ai")
	viper.SetDefault("DEFAULT_LOCALITY", "New York City")
	viper.SetDefault("PER_SOURCE_TIMEOUT_SEC", 5)
	viper.SetDefault("MAX_CONCURRENT_CANDIDATES", 4)
	viper.SetDefault("COLLAPSE_DUPLICATE_NAMES", false)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// PerSourceTimeout returns the enrichment per-call timeout as a duration.
func (c Config) PerSourceTimeout() time.Duration {
	if c.PerSourceTimeoutSec <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.PerSourceTimeoutSec) * time.Second
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
