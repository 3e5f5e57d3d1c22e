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
	Remote   RemoteConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Chat     ChatConfig
	Checkout CheckoutConfig
	SMTP     SMTPConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string

	// DataDir backs the file cart store when Redis is not configured.
	DataDir string

	// AnalyticsForwarder selects where drained analytics events go:
	// "nats" or "log".
	AnalyticsForwarder string
}

// RemoteConfig points at the upstream storefront functions API.
type RemoteConfig struct {
	BaseURL string
	Timeout time.Duration
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JwtSecret string

	// DemoMode enables the local fallback account store when the upstream
	// auth API is unreachable.
	DemoMode bool
}

type ChatConfig struct {
	ReplyBaseDelay time.Duration
	ReplyJitter    time.Duration
}

type CheckoutConfig struct {
	// MaskFailures keeps the optimistic submit: an upstream failure still
	// confirms the order locally. Explicit so operators can turn it off.
	MaskFailures bool
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			DataDir:            getEnv("DATA_DIR", "data"),
			AnalyticsForwarder: getEnv("ANALYTICS_FORWARDER", "log"),
		},
		Remote: RemoteConfig{
			BaseURL: getEnv("REMOTE_API_BASE_URL", "http://localhost:7071/api"),
			Timeout: time.Duration(getEnvAsInt("REMOTE_API_TIMEOUT_SECONDS", 8)) * time.Second,
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
			DemoMode:  getEnvAsBool("DEMO_MODE", true),
		},
		Chat: ChatConfig{
			ReplyBaseDelay: time.Duration(getEnvAsInt("CHAT_REPLY_BASE_DELAY_MS", 600)) * time.Millisecond,
			ReplyJitter:    time.Duration(getEnvAsInt("CHAT_REPLY_JITTER_MS", 400)) * time.Millisecond,
		},
		Checkout: CheckoutConfig{
			MaskFailures: getEnvAsBool("CHECKOUT_MASK_FAILURES", true),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "NexTel"),
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

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
