package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	RedisHost          string
	RedisPort          string
	SessionSecret      string
	GinMode            string
	Port               string
	GoogleClientID     string
	GoogleClientSecret string
	WhatsAppAPIURL     string
	FBToken            string
	WebhookVerifyToken string
	WhatsAppDryRun     bool
	OpenAIAPIKey       string
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "zapboard"),
		DBPassword:         getEnv("DB_PASSWORD", "zapboard"),
		DBName:             getEnv("DB_NAME", "zapboard"),
		RedisHost:          getEnv("REDIS_HOST", "localhost"),
		RedisPort:          getEnv("REDIS_PORT", "6379"),
		SessionSecret:      getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		Port:               getEnv("PORT", "8080"),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		WhatsAppAPIURL:     getEnv("WHATSAPP_API_URL", ""),
		FBToken:            getEnv("FB_TOKEN", ""),
		WebhookVerifyToken: getEnv("WEBHOOK_VERIFY_TOKEN", ""),
		WhatsAppDryRun:     getEnv("WHATSAPP_DRY_RUN", "") == "true",
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
	}
}

// Validate checks the integration variables and warns about missing ones.
// The server still starts; the affected integrations degrade at call time.
func (c *Config) Validate(log *zap.Logger) bool {
	checks := []struct {
		name  string
		value string
	}{
		{"GOOGLE_CLIENT_ID", c.GoogleClientID},
		{"GOOGLE_CLIENT_SECRET", c.GoogleClientSecret},
		{"WHATSAPP_API_URL", c.WhatsAppAPIURL},
		{"FB_TOKEN", c.FBToken},
		{"WEBHOOK_VERIFY_TOKEN", c.WebhookVerifyToken},
		{"OPENAI_API_KEY", c.OpenAIAPIKey},
	}

	var missing []string
	for _, check := range checks {
		if check.value == "" {
			missing = append(missing, check.name)
		}
	}

	if len(missing) > 0 {
		log.Warn("missing environment variables, related integrations are disabled",
			zap.Strings("variables", missing))
		return false
	}

	return true
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
