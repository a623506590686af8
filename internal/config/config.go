package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Auth     AuthConfig
	Sales    SalesConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	LLMProvider   string // "ollama" or "openai"
	LLMModel      string // e.g. "llama3", "gpt-4o-mini"
	OllamaBaseURL string
	OpenAIKey     string
}

type AuthConfig struct {
	JwtSecret string
	JwtExpiry time.Duration
}

// SalesConfig holds the sales-policy knobs of the recommendation flow.
type SalesConfig struct {
	// When a customer wants a computer plus an accessory in one budget, the
	// computer gets this share and the accessory the remainder.
	BundleComputerShare float64
	// Ceiling for a stand-alone upsell when the budget was not split.
	AccessoryBudgetCap float64
	// How long one generation call may run before the deterministic
	// fallback takes over.
	GenerateTimeout time.Duration
	// How many products the generator may see per recommendation.
	CatalogLimit int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:      getEnv("LLM_MODEL", "llama3"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
		},
		Auth: AuthConfig{
			JwtSecret: getEnv("JWT_SECRET", "change-me"),
			JwtExpiry: getEnvAsDuration("JWT_EXPIRY", 24*time.Hour),
		},
		Sales: SalesConfig{
			BundleComputerShare: getEnvAsFloat("SALES_BUNDLE_COMPUTER_SHARE", 0.75),
			AccessoryBudgetCap:  getEnvAsFloat("SALES_ACCESSORY_BUDGET_CAP", 1000),
			GenerateTimeout:     getEnvAsDuration("SALES_GENERATE_TIMEOUT", 30*time.Second),
			CatalogLimit:        getEnvAsInt("SALES_CATALOG_LIMIT", 5),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
