package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"sms-payment-backend/internal/services/verification"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds the runtime settings read from the environment.
type Config struct {
	ServerPort     int
	RequiredAmount int64
	PhonePolicy    verification.PhonePolicy
	AllowedOrigins []string
}

// Load reads configuration from environment variables, falling back to
// defaults. REQUIRED_AMOUNT is the amount verified when a request does not
// supply one.
func Load() *Config {
	cfg := &Config{
		ServerPort:     8080,
		RequiredAmount: 100,
		PhonePolicy:    verification.PhoneOptional,
		AllowedOrigins: []string{"http://localhost:3000"},
	}

	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.ServerPort = p
		}
	}
	if amount := os.Getenv("REQUIRED_AMOUNT"); amount != "" {
		if a, err := strconv.ParseInt(amount, 10, 64); err == nil {
			cfg.RequiredAmount = a
		}
	}
	switch os.Getenv("PHONE_VERIFICATION") {
	case "required":
		cfg.PhonePolicy = verification.PhoneRequired
	case "off":
		cfg.PhonePolicy = verification.PhoneOff
	}
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		cfg.AllowedOrigins = []string{origin}
	}

	return cfg
}

// InitDB opens the Postgres connection. DATABASE_URL wins; otherwise the
// DSN is assembled from the DB_* variables.
func InitDB() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			envOr("DB_HOST", "localhost"),
			envOr("DB_PORT", "5432"),
			envOr("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			envOr("DB_NAME", "sms_payments"),
			envOr("DB_SSLMODE", "disable"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	return db
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
