package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Service  ServiceConfig
	API      APIConfig
	Realtime RealtimeConfig
	Cache    CacheConfig
	Logger   LoggerConfig
}

type ServiceConfig struct {
	Name       string `env:"SERVICE_NAME" env-default:"huddle-client"`
	StatusPort string `env:"STATUS_PORT" env-default:"8087"`
}

type APIConfig struct {
	BaseURL     string        `env:"HUDDLE_API_BASE_URL" env-required:"true"`
	Timeout     time.Duration `env:"HUDDLE_API_TIMEOUT" env-default:"10s"`
	AccessToken string        `env:"HUDDLE_ACCESS_TOKEN" env-required:"true"`
}

type RealtimeConfig struct {
	URL              string        `env:"HUDDLE_REALTIME_URL" env-required:"true"`
	SendQueueSize    int           `env:"HUDDLE_REALTIME_SEND_QUEUE" env-default:"64"`
	EventQueueSize   int           `env:"HUDDLE_REALTIME_EVENT_QUEUE" env-default:"256"`
	Reconnect        bool          `env:"HUDDLE_REALTIME_RECONNECT" env-default:"true"`
	ReconnectMaxWait time.Duration `env:"HUDDLE_REALTIME_RECONNECT_MAX_WAIT" env-default:"30s"`
}

// CacheConfig points at the optional local history cache. An empty host
// disables caching entirely.
type CacheConfig struct {
	Host     string `env:"CACHE_POSTGRES_HOST"`
	Port     string `env:"CACHE_POSTGRES_PORT" env-default:"5432"`
	User     string `env:"CACHE_POSTGRES_USER"`
	Password string `env:"CACHE_POSTGRES_PASSWORD"`
	Database string `env:"CACHE_POSTGRES_DB"`
}

type LoggerConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"console"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}
	return cfg
}

func (c CacheConfig) Enabled() bool {
	return c.Host != ""
}
