package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultDevOrigin is the local React dev server, always allowed by CORS.
const DefaultDevOrigin = "http://localhost:3000"

// WriteTimeoutMargin is the time left after the model budget to write the
// response, fallback reply included.
const WriteTimeoutMargin = 15 * time.Second

type Config struct {
	// Server
	Port     string
	Env      string
	LogLevel string

	// Gemini AI
	GeminiAPIKey         string
	GeminiModel          string
	GeminiTimeoutSeconds int
	AllowFakeGemini      bool

	// Frontend / CORS
	FrontendURL    string
	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		Env:                  getEnvOrDefault("ENV", "development"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		GeminiAPIKey:         strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:          strings.TrimSpace(os.Getenv("GEMINI_MODEL")),
		GeminiTimeoutSeconds: getEnvAsIntOrDefault("GEMINI_TIMEOUT_SECONDS", 30),
		AllowFakeGemini:      getEnvAsBool("ALLOW_FAKE_GEMINI"),
		FrontendURL:          getEnvOrDefault("FRONTEND_URL", ""),
	}

	cfg.AllowedOrigins = allowedOrigins(cfg.FrontendURL, os.Getenv("CORS_ALLOWED_ORIGINS"))

	return cfg
}

// GeminiTimeout is the budget for one reply, shared by every model attempt.
func (c *Config) GeminiTimeout() time.Duration {
	return time.Duration(c.GeminiTimeoutSeconds) * time.Second
}

// WriteTimeout must outlast GeminiTimeout, otherwise a hanging upstream
// cuts the connection before the fallback reply is written.
func (c *Config) WriteTimeout() time.Duration {
	return c.GeminiTimeout() + WriteTimeoutMargin
}

// allowedOrigins merges the dev origin, the deployment origin and any extra
// comma separated entries, dropping blanks and duplicates.
func allowedOrigins(frontendURL, extra string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, o := range append([]string{DefaultDevOrigin, frontendURL}, splitList(extra)...) {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		out = append(out, o)
	}
	return out
}

func splitList(val string) []string {
	if strings.TrimSpace(val) == "" {
		return nil
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}

// getEnvAsBool accepts 1, true, yes and on (any case).
func getEnvAsBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
