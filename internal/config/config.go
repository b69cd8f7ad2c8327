package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DBPath          string
	SecretKey       string
	Timezone        string
	CoachURL        string
	CoachSecret     string
	PlanSyncURL     string
	RemindersOn     bool
	CoachTimeoutSec int
}

// Load reads an optional .env file, then the environment. Every value has a
// dev-friendly default so the binary starts with no configuration at all.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8080"),
		DBPath:          getEnv("DB_PATH", filepath.Join("data", "dayzero.db")),
		SecretKey:       getEnv("SECRET_KEY", ""),
		Timezone:        getEnv("TZ", "UTC"),
		CoachURL:        getEnv("COACH_URL", ""),
		CoachSecret:     getEnv("COACH_SECRET", ""),
		PlanSyncURL:     getEnv("PLAN_SYNC_URL", ""),
		RemindersOn:     getEnvBool("REMINDERS_ENABLED", true),
		CoachTimeoutSec: getEnvInt("COACH_TIMEOUT_SEC", 20),
	}
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
