package config

import (
	"reflect"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CLILogLevel is used by the cart command, which keeps stdout for views.
	CLILogLevel string `env:"CART_LOG_LEVEL" envDefault:"warn"`

	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// StorageDriver selects the cart slot backend: memory, file, sqlite or redis.
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"file"`
	CartKey       string `env:"CART_KEY" envDefault:"foodStoreCart"`
	DataDir       string `env:"DATA_DIR" envDefault:".storefront"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"storefront.db"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	CatalogFile         string `env:"CATALOG_FILE"`
	CheckoutConcurrency int    `env:"CHECKOUT_CONCURRENCY" envDefault:"10"`

	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads the configuration from the environment. A variable that fails to
// parse falls back to its own default; every other variable is kept. The
// returned error lists the variables that were ignored, and the config is
// usable either way.
func Load() (Config, error) {
	var cfg Config
	err := env.Parse(&cfg)
	if err != nil {
		fillZeroFromDefaults(&cfg)
	}
	return cfg, err
}

func Parse() (Config, error) {
	return env.ParseAs[Config]()
}

func defaults() Config {
	cfg, _ := env.ParseAsWithOptions[Config](env.Options{Environment: map[string]string{}})
	return cfg
}

// fillZeroFromDefaults restores the default for every field a failed parse
// left at its zero value.
func fillZeroFromDefaults(cfg *Config) {
	def := reflect.ValueOf(defaults())
	cur := reflect.ValueOf(cfg).Elem()
	for i := 0; i < cur.NumField(); i++ {
		if cur.Field(i).IsZero() {
			cur.Field(i).Set(def.Field(i))
		}
	}
}
