package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyUUID    = key("uuid")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service  Service
	Platform Platform
	Postgres Postgres
	Logger   Logger
	Metrics  Metrics
	Kafka    Kafka
	Event    Event
	User     User
	Push     Push
}

type Service struct {
	Name      string `env:"CHAT_SERVICE_NAME" env-default:"chat-service"`
	Port      string `env:"CHAT_SERVICE_PORT" env-default:"8080"`
	JWTSecret string `env:"CHAT_SERVICE_JWT_SECRET" env-required:"true"`
}

type Platform struct {
	Env string `env:"PLATFORM_ENV" env-default:"dev"`
}

type Postgres struct {
	User     string `env:"CHAT_SERVICE_POSTGRES_USER" env-required:"true"`
	Password string `env:"CHAT_SERVICE_POSTGRES_PASSWORD" env-required:"true"`
	Database string `env:"CHAT_SERVICE_POSTGRES_DB" env-required:"true"`
	Host     string `env:"CHAT_SERVICE_POSTGRES_HOST" env-default:"localhost"`
	Port     string `env:"CHAT_SERVICE_POSTGRES_PORT" env-default:"5432"`
}

type Logger struct {
	Host string `env:"LOGGER_HOST"`
	Port string `env:"LOGGER_PORT"`
}

type Metrics struct {
	Host string `env:"METRICS_HOST"`
	Port int    `env:"METRICS_PORT"`
}

type Kafka struct {
	Host      string `env:"KAFKA_HOST"`
	Port      string `env:"KAFKA_PORT"`
	UserTopic string `env:"KAFKA_USER_TOPIC" env-default:"user.profile.updated"`
}

type Event struct {
	BaseURL string        `env:"EVENT_SERVICE_BASE_URL"`
	APIKey  string        `env:"EVENT_SERVICE_API_KEY"`
	Timeout time.Duration `env:"EVENT_SERVICE_TIMEOUT" env-default:"5s"`
}

type User struct {
	BaseURL string        `env:"USER_SERVICE_BASE_URL"`
	APIKey  string        `env:"USER_SERVICE_API_KEY"`
	Timeout time.Duration `env:"USER_SERVICE_TIMEOUT" env-default:"5s"`
}

type Push struct {
	BaseURL string        `env:"PUSH_SERVICE_BASE_URL"`
	APIKey  string        `env:"PUSH_SERVICE_API_KEY"`
	Timeout time.Duration `env:"PUSH_SERVICE_TIMEOUT" env-default:"5s"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env config: %v", err)
	}
	return cfg
}
