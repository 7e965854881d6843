package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
	KeyUUID    = key("uuid")
)

type Config struct {
	Service   Service
	Postgres  Postgres
	Logger    Logger
	Metrics   Metrics
	Platform  Platform
	Kafka     Kafka
	Discord   Discord
	Reconcile Reconcile
	Auth      Auth
}

type Service struct {
	Name string `env:"SERVICE_NAME" env-default:"buffer-service"`
	Port string `env:"SERVICE_PORT" env-default:"8080"`
}

type Postgres struct {
	User     string `env:"POSTGRES_USER" env-required:"true"`
	Password string `env:"POSTGRES_PASSWORD" env-required:"true"`
	Database string `env:"POSTGRES_DB" env-required:"true"`
	Host     string `env:"POSTGRES_HOST" env-required:"true"`
	Port     string `env:"POSTGRES_PORT" env-default:"5432"`
}

type Logger struct {
	Host string `env:"LOGGER_HOST"`
	Port string `env:"LOGGER_PORT"`
}

type Metrics struct {
	Host string `env:"METRICS_HOST"`
	Port int    `env:"METRICS_PORT"`
}

type Platform struct {
	Env string `env:"PLATFORM_ENV" env-default:"dev"`
}

type Kafka struct {
	Host        string `env:"KAFKA_HOST"`
	Port        string `env:"KAFKA_PORT"`
	EventsTopic string `env:"KAFKA_MESSAGE_EVENTS_TOPIC" env-default:"discord.message.events"`
}

type Discord struct {
	Token string `env:"DISCORD_BOT_TOKEN" env-required:"true"`
}

type Reconcile struct {
	ChunkSize      int           `env:"RECONCILE_CHUNK_SIZE" env-default:"100"`
	ChannelDelay   time.Duration `env:"RECONCILE_CHANNEL_DELAY" env-default:"500ms"`
	ChannelTimeout time.Duration `env:"RECONCILE_CHANNEL_TIMEOUT" env-default:"30s"`
}

type Auth struct {
	JWTSecret string `env:"AUTH_JWT_SECRET" env-required:"true"`
}

func MustLoad() *Config {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env config: %v", err)
	}

	return cfg
}
