package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `validate:"required"`
	Variant     string `validate:"oneof=console cli cdk sam"`
	Port        string `validate:"required,numeric"`
	Log         LogConfig
	Gateway     GatewayConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `validate:"oneof=text json"`

	// Events logs every received event regardless of the handler variant
	Events bool
}

// GatewayConfig holds settings for the local API Gateway emulator
type GatewayConfig struct {
	RateLimit    float64 `validate:"gt=0"`
	RateBurst    int     `validate:"gte=1"`
	MaxBodyBytes int64   `validate:"gte=1"`
}

var validate = validator.New()

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	return load("")
}

// LoadForVariant loads configuration for a binary built for one variant.
// HANDLER_VARIANT is ignored.
func LoadForVariant(variant string) (*Config, error) {
	return load(variant)
}

func load(variant string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Set up Viper
	viper.AutomaticEnv()
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("HANDLER_VARIANT", "sam")
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_EVENTS", false)
	viper.SetDefault("GATEWAY_RATE_LIMIT", 50)
	viper.SetDefault("GATEWAY_RATE_BURST", 100)
	// Lambda's synchronous invocation payload limit
	viper.SetDefault("GATEWAY_MAX_BODY_BYTES", 6*1024*1024)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Variant:     strings.ToLower(viper.GetString("HANDLER_VARIANT")),
		Port:        viper.GetString("PORT"),
		Log: LogConfig{
			Level:  strings.ToLower(viper.GetString("LOG_LEVEL")),
			Format: strings.ToLower(viper.GetString("LOG_FORMAT")),
			Events: viper.GetBool("LOG_EVENTS"),
		},
		Gateway: GatewayConfig{
			RateLimit:    viper.GetFloat64("GATEWAY_RATE_LIMIT"),
			RateBurst:    viper.GetInt("GATEWAY_RATE_BURST"),
			MaxBodyBytes: viper.GetInt64("GATEWAY_MAX_BODY_BYTES"),
		},
	}
	if variant != "" {
		config.Variant = variant
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed '%s' (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
