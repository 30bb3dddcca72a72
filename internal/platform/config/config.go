package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Session token config
	JWTSecret             string
	SessionExpiry         time.Duration // default window
	SessionRememberExpiry time.Duration // window when "remember me" is set
	SessionCookieName     string

	// Default VAT percentage applied to new quotes when the request omits one.
	DefaultTaxRate float64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("SESSION_EXPIRY", "24h")
	viper.SetDefault("SESSION_REMEMBER_EXPIRY", "120h")
	viper.SetDefault("SESSION_COOKIE_NAME", "token")
	viper.SetDefault("DEFAULT_TAX_RATE", 20.0)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	sessionExpiryStr := viper.GetString("SESSION_EXPIRY")
	sessionExpiry, err := time.ParseDuration(sessionExpiryStr)
	if err != nil {
		sessionExpiry = 24 * time.Hour
		log.Printf("Warning: Invalid value for SESSION_EXPIRY ('%s'). Defaulting to %s.\n", sessionExpiryStr, sessionExpiry)
	}
	cfg.SessionExpiry = sessionExpiry

	rememberExpiryStr := viper.GetString("SESSION_REMEMBER_EXPIRY")
	rememberExpiry, err := time.ParseDuration(rememberExpiryStr)
	if err != nil {
		rememberExpiry = 5 * 24 * time.Hour
		log.Printf("Warning: Invalid value for SESSION_REMEMBER_EXPIRY ('%s'). Defaulting to %s.\n", rememberExpiryStr, rememberExpiry)
	}
	cfg.SessionRememberExpiry = rememberExpiry

	cfg.SessionCookieName = viper.GetString("SESSION_COOKIE_NAME")
	if cfg.SessionCookieName == "" {
		cfg.SessionCookieName = "token"
	}

	cfg.DefaultTaxRate = viper.GetFloat64("DEFAULT_TAX_RATE")
	if cfg.DefaultTaxRate < 0 {
		log.Printf("Warning: DEFAULT_TAX_RATE is negative (%v). Defaulting to 20.\n", cfg.DefaultTaxRate)
		cfg.DefaultTaxRate = 20
	}

	return cfg, nil
}
