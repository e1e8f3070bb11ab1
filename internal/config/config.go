package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// OpenAI
	OpenAIAPIKey string
	OpenAIAPIURL string

	// Static assets
	StaticDir string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:         getEnvOrDefault("PORT", "3000"),
		Env:          getEnvOrDefault("ENV", "development"),
		OpenAIAPIKey: mustGetEnv("OPENAI_API_KEY"),
		OpenAIAPIURL: getEnvOrDefault("OPENAI_API_URL", "https://api.openai.com/v1/chat/completions"),
		StaticDir:    getEnvOrDefault("STATIC_DIR", "./public"),
		FrontendURL:  getEnvOrDefault("FRONTEND_URL", "*"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
