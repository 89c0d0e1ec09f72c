package config

import (
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config holds all process-wide settings. It is built once at startup by
// Load and passed explicitly into each component's constructor; core
// packages never read the environment themselves.
type Config struct {
	AppPort     string
	DatabaseDSN string
	JWTSecret   string
	TokenTTL    time.Duration
	BcryptCost  int
	RabbitMQURL string
}

// Load reads configuration from environment variables with sensible
// defaults for local development.
func Load() *Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "trackvault.db")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("TOKEN_TTL", "1h")
	viper.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	return &Config{
		AppPort:     viper.GetString("APP_PORT"),
		DatabaseDSN: viper.GetString("DATABASE_DSN"),
		JWTSecret:   viper.GetString("JWT_SECRET"),
		TokenTTL:    viper.GetDuration("TOKEN_TTL"),
		BcryptCost:  viper.GetInt("BCRYPT_COST"),
		RabbitMQURL: viper.GetString("RABBITMQ_URL"),
	}
}
