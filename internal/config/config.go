package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	RabbitMQUser string
	RabbitMQPass string
	RabbitMQHost string
	RabbitMQPort string

	RedisAddr         string
	AnalyticsCacheTTL time.Duration

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string
}

// Load reads the environment, pulling in .env first when present. Missing
// optional settings fall back to local-development defaults.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		RabbitMQUser: getenv("RABBITMQ_USER", "guest"),
		RabbitMQPass: getenv("RABBITMQ_PASS", "guest"),
		RabbitMQHost: getenv("RABBITMQ_HOST", "localhost"),
		RabbitMQPort: getenv("RABBITMQ_PORT", "5672"),

		RedisAddr:         getenv("REDIS_ADDR", "localhost:6379"),
		AnalyticsCacheTTL: getduration("ANALYTICS_CACHE_TTL", 5*time.Minute),

		MailHost: getenv("MAIL_HOST", "localhost"),
		MailPort: getint("MAIL_PORT", 587),
		MailUser: os.Getenv("MAIL_USER"),
		MailPass: os.Getenv("MAIL_PASS"),
		MailFrom: getenv("MAIL_FROM", "alerts@leadflow.local"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getduration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
