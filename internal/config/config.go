package config

import (
	"os"
	"strings"
)

type Config struct {
	Port         string
	DBPath       string
	AllowOrigins []string

	// LLM backends
	GeminiAPIKey    string
	GeminiModel     string
	OpenAIAPIKey    string
	OpenAIModel     string
	DefaultProvider string // "gemini" or "openai"
	DefaultLanguage string
}

// Load reads settings from the environment. godotenv.Load() in main makes a
// local .env visible here.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		DBPath:          getEnv("DB_PATH", "machines.db"),
		AllowOrigins:    splitList(getEnv("ALLOW_ORIGINS", "http://localhost:3000")),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		DefaultProvider: getEnv("LLM_PROVIDER", "gemini"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "es"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
