package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the service needs at startup. It is built once in
// main and passed down to the route setup, so tests can construct their own
// instead of relying on globals.
type Config struct {
	Port string

	// Database
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// Remote prediction service
	MLServiceURL string
	MLTimeout    time.Duration

	// Outgoing mail
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string

	// Password-set links
	JWTSecret  string
	AppBaseURL string
}

func Load() *Config {
	return &Config{
		Port: GetEnv("PORT", "3000"),

		DBUser:     GetEnv("DB_USER", "root"),
		DBPassword: GetEnv("DB_PASSWORD", ""),
		DBHost:     GetEnv("DB_HOST", "127.0.0.1"),
		DBPort:     GetEnv("DB_PORT", "3306"),
		DBName:     GetEnv("DB_NAME", "medequip_db"),

		MLServiceURL: GetEnv("ML_SERVICE_URL", "http://localhost:7860/api/predict"),
		MLTimeout:    time.Duration(GetEnvAsInt("ML_TIMEOUT_SECONDS", 15)) * time.Second,

		SMTPHost:     GetEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     GetEnvAsInt("SMTP_PORT", 587),
		SMTPUser:     GetEnv("SMTP_USER", ""),
		SMTPPassword: GetEnv("SMTP_PASSWORD", ""),
		MailFrom:     GetEnv("MAIL_FROM", "no-reply@medequip.local"),

		JWTSecret:  GetEnv("JWT_SECRET", "change-me-in-production"),
		AppBaseURL: GetEnv("APP_BASE_URL", "http://localhost:3000"),
	}
}

// DSN builds the MySQL connection string for GORM.
// Format: user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
