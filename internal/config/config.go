package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the application settings. Every field can be overridden by
// the environment variable of the same name.
type Config struct {
	AppPort                  string `mapstructure:"APP_PORT"`
	AppEnv                   string `mapstructure:"APP_ENV"`
	DBDriver                 string `mapstructure:"DB_DRIVER"`
	DatabaseDSN              string `mapstructure:"DATABASE_DSN"`
	DBAutoMigrate            bool   `mapstructure:"DB_AUTO_MIGRATE"`
	RefreshProductsProcedure string `mapstructure:"REFRESH_PRODUCTS_PROCEDURE"`
	RabbitMQURL              string `mapstructure:"RABBITMQ_URL"`
	RabbitMQExchange         string `mapstructure:"RABBITMQ_EXCHANGE"`
	JWTSecret                string `mapstructure:"JWT_SECRET"`
	MetricsEnabled           bool   `mapstructure:"METRICS_ENABLED"`
}

var defaultDSN = map[string]string{
	DriverPostgres: "host=127.0.0.1 user=postgres password=postgres dbname=fridges port=5432 sslmode=disable",
	DriverSQLite:   "file:fridges.db?_foreign_keys=1",
}

// Load reads the configuration from defaults, an optional .env file in path
// and the environment, in increasing order of precedence.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("REFRESH_PRODUCTS_PROCEDURE", "CALL usp_replenish_products()")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "fridge.events")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("METRICS_ENABLED", true)
	v.AutomaticEnv()

	if path != "" {
		v.AddConfigPath(path)
		v.SetConfigName(".env")
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	dsn, ok := defaultDSN[cfg.DBDriver]
	if !ok {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = dsn
	}
	return &cfg, nil
}

// IsProduction reports whether the app runs with production settings.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
