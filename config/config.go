package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every environment-configurable setting of the application.
type Config struct {
	Env      string
	HTTPAddr string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	SessionSecret string
	SessionTTL    time.Duration

	UploadDir         string
	MaxUploadSize     int64
	AllowedExtensions []string

	ResendAPIKey string
	EmailFrom    string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:      getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBName:     getEnv("DB_NAME", "mercado_vecino"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    getDuration("SESSION_TTL", 30*24*time.Hour),

		UploadDir:         getEnv("UPLOAD_DIR", "static/imagenes/perfiles"),
		MaxUploadSize:     getInt64("MAX_UPLOAD_SIZE", 16<<20),
		AllowedExtensions: getList("ALLOWED_EXTENSIONS", []string{"png", "jpg", "jpeg", "gif", "webp"}),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		EmailFrom:    os.Getenv("EMAIL_FROM"),
	}
}

func (c *Config) IsProd() bool {
	return c.Env == "production"
}

// DSN builds the MySQL data source name for the configured database.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getInt64(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			list = append(list, part)
		}
	}
	return list
}
