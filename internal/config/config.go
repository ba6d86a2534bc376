package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	Port           string
	AdminUsername  string
	AdminPassword  string
	JWTSecret      string
	AccessTokenTTL time.Duration
	SessionTTL     time.Duration
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		AdminUsername:  getEnvOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword:  getEnvOrDefault("ADMIN_PASSWORD", "admin123"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", "dev-secret-change-me"),
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", 60, time.Minute),
		SessionTTL:     getDurationEnv("SESSION_TTL", 12, time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
