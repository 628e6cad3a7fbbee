// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server Configuration
	GinMode       string        `mapstructure:"GIN_MODE"`
	ServerHost    string        `mapstructure:"SERVER_HOST"`
	ServerPort    string        `mapstructure:"SERVER_PORT"`
	ServerTimeout time.Duration `mapstructure:"SERVER_TIMEOUT_SECONDS"`

	// Document Store Configuration
	MongoURI      string `mapstructure:"MONGODB_URI"`
	MongoDatabase string `mapstructure:"MONGODB_DATABASE"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Firebase Configuration
	// FirebaseServiceKey is the service account JSON, base64 encoded,
	// as it is delivered through the deployment environment.
	FirebaseServiceKey string `mapstructure:"FB_SERVICE_KEY"`
	FirebaseProjectID  string `mapstructure:"FIREBASE_PROJECT_ID"`

	// Stripe Configuration
	StripeSecretKey   string `mapstructure:"STRIPE_SECRET_KEY"`
	PaymentSuccessURL string `mapstructure:"PAYMENT_SUCCESS_URL"`
	PaymentCancelURL  string `mapstructure:"PAYMENT_CANCEL_URL"`

	// CORS
	AllowedOrigin string `mapstructure:"ALLOWED_ORIGIN"`
}

// Load attempts to load configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	// Set default values
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "3000")
	v.SetDefault("SERVER_TIMEOUT_SECONDS", 30)

	v.SetDefault("MONGODB_URI", "")
	v.SetDefault("MONGODB_DATABASE", "bloodDonationDB")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("FB_SERVICE_KEY", "")
	v.SetDefault("FIREBASE_PROJECT_ID", "") // Optional

	v.SetDefault("STRIPE_SECRET_KEY", "")
	v.SetDefault("PAYMENT_SUCCESS_URL", "http://localhost:5173/payment-success?session_id={CHECKOUT_SESSION_ID}")
	v.SetDefault("PAYMENT_CANCEL_URL", "http://localhost:5173/donate")

	v.SetDefault("ALLOWED_ORIGIN", "*")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Convert duration fields
	cfg.ServerTimeout = time.Duration(v.GetInt("SERVER_TIMEOUT_SECONDS")) * time.Second

	// Basic validation for critical configs
	if strings.TrimSpace(cfg.MongoURI) == "" {
		return nil, fmt.Errorf("FATAL: MONGODB_URI is not set. The document store connection string is required")
	}
	if strings.TrimSpace(cfg.FirebaseServiceKey) == "" {
		return nil, fmt.Errorf("FATAL: FB_SERVICE_KEY is not set. This is required for Firebase Admin SDK initialization")
	}
	if strings.TrimSpace(cfg.StripeSecretKey) == "" {
		return nil, fmt.Errorf("FATAL: STRIPE_SECRET_KEY is not set. This is required for checkout session creation")
	}

	return &cfg, nil
}
