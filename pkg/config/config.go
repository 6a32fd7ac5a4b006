package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Redis    RedisConfig
	Cart     CartConfig
	Search   SearchConfig
	WhatsApp WhatsAppConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MANNY_APP_ENV" default:"dev"`
	Port         string `envconfig:"MANNY_APP_PORT" default:"4000"`
	LogLevel     string `envconfig:"MANNY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MANNY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"MANNY_REDIS_URL"`
	Address      string        `envconfig:"MANNY_REDIS_ADDR"`
	Password     string        `envconfig:"MANNY_REDIS_PASSWORD"`
	DB           int           `envconfig:"MANNY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MANNY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MANNY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MANNY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MANNY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MANNY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Configured reports whether any Redis endpoint was provided. The cart
// degrades to in-memory storage when it was not.
func (r RedisConfig) Configured() bool {
	return r.URL != "" || r.Address != ""
}

type CartConfig struct {
	TTL         time.Duration `envconfig:"MANNY_CART_TTL" default:"720h"`
	MaxQuantity int           `envconfig:"MANNY_CART_MAX_QTY" default:"999"`
}

type SearchConfig struct {
	PageSize    int `envconfig:"MANNY_SEARCH_PAGE_SIZE" default:"12"`
	MaxPageSize int `envconfig:"MANNY_SEARCH_MAX_PAGE_SIZE" default:"50"`
}

type WhatsAppConfig struct {
	// Destination is phone-number-shaped; non-digits are stripped when the
	// deep link is built.
	Destination string `envconfig:"MANNY_WHATSAPP_DESTINATION" default:"+2349161536457"`
}
