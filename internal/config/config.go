package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key int

const (
	KeyUUID key = iota
	KeyLogger
	KeyMetrics
)

type Config struct {
	Service    Service
	Postgres   Postgres
	Logger     Logger
	Metrics    Metrics
	Kafka      Kafka
	Platform   Platform
	Auth       Auth
	Completion Completion
}

type Service struct {
	Port string `env:"CHAT_SERVICE_PORT" env-default:"8080"`
	Name string `env:"CHAT_SERVICE_NAME" env-default:"chat-service"`
}

type Postgres struct {
	User     string `env:"CHAT_SERVICE_POSTGRES_USER" env-required:"true"`
	Password string `env:"CHAT_SERVICE_POSTGRES_PASSWORD" env-required:"true"`
	Database string `env:"CHAT_SERVICE_POSTGRES_DB" env-required:"true"`
	Host     string `env:"CHAT_SERVICE_POSTGRES_HOST" env-default:"localhost"`
	Port     string `env:"CHAT_SERVICE_POSTGRES_PORT" env-default:"5432"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Kafka struct {
	Host      string `env:"KAFKA_HOST"`
	Port      string `env:"KAFKA_PORT"`
	UserTopic string `env:"KAFKA_USER_TOPIC" env-default:"user.updated"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Auth struct {
	JWTSecret string `env:"CHAT_SERVICE_JWT_SECRET" env-required:"true"`
}

type Completion struct {
	APIKey  string        `env:"COMPLETION_API_KEY" env-required:"true"`
	BaseURL string        `env:"COMPLETION_BASE_URL"`
	Model   string        `env:"COMPLETION_MODEL" env-default:"gpt-4o-mini"`
	Timeout time.Duration `env:"COMPLETION_TIMEOUT" env-default:"60s"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	return cfg
}
