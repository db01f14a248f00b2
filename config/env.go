package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Env holds the process settings read from the environment and .env.
type Env struct {
	Port           string
	DBDSN          string
	ConfigPath     string
	OpenBrowser    bool
	AllowedOrigins []string
	LogLevel       string
	LogPretty      bool
	MaxUploadMB    int64
}

// LoadEnv loads .env when present and reads the process settings.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		Port:           getEnv("PORT", "8080"),
		DBDSN:          getEnv("DB_DSN", ":memory:"),
		ConfigPath:     getEnv("CONFIG_PATH", "./reorder_config.json"),
		OpenBrowser:    getEnvBool("OPEN_BROWSER", true),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogPretty:      getEnvBool("LOG_PRETTY", true),
		MaxUploadMB:    int64(getEnvInt("MAX_UPLOAD_MB", 32)),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
