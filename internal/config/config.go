package config

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process-level configuration read from the environment.
// Runtime-tunable values (prices, model names, free-tier limits) live in
// the app_config row instead, managed through the admin endpoints.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	PostgresURL string `env:"POSTGRES_URL,required"`
	JWTSecret   string `env:"JWT_SECRET"`

	OpenAIKey string `env:"OPENAI_API_KEY"`
	GeminiKey string `env:"GEMINI_API_KEY"`

	PayOSClientID    string `env:"PAYOS_CLIENT_ID"`
	PayOSAPIKey      string `env:"PAYOS_API_KEY"`
	PayOSChecksumKey string `env:"PAYOS_CHECKSUM_KEY"`
	PayOSReturnURL   string `env:"PAYOS_RETURN_URL"`
	PayOSCancelURL   string `env:"PAYOS_CANCEL_URL"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`

	AppName    string `env:"APP_NAME" envDefault:"NutriKids"`
	AppBaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	ExpoPushURL string `env:"EXPO_PUSH_URL" envDefault:"https://exp.host/--/api/v2/push/send"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
