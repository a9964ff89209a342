package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreSQLite   = "sqlite"
)

// Config holds application configuration loaded from environment variables or config files.
type Config struct {
	AppEnv          string        `mapstructure:"APP_ENV" validate:"required,oneof=development staging production test"`
	HTTPAddr        string        `mapstructure:"HTTP_ADDR" validate:"required,hostname_port"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" validate:"required"`

	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"required,oneof=debug info warn error dpanic panic fatal"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"required,oneof=json console"`

	// StoreBackend selects where materials, labor rates and estimate snapshots live.
	// Projects and cost analyses always live in SQLite.
	StoreBackend string `mapstructure:"STORE_BACKEND" validate:"required,oneof=dynamodb sqlite"`
	SQLitePath   string `mapstructure:"SQLITE_PATH" validate:"required"`

	AWSRegion          string `mapstructure:"AWS_REGION" validate:"required_if=StoreBackend dynamodb"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT" validate:"omitempty,url"`
	DynamoDBAutoCreate bool   `mapstructure:"DYNAMODB_AUTO_CREATE"`

	MaterialsTable  string `mapstructure:"MATERIALS_TABLE" validate:"required"`
	LaborRatesTable string `mapstructure:"LABOR_RATES_TABLE" validate:"required"`
	EstimatesTable  string `mapstructure:"ESTIMATES_TABLE" validate:"required"`

	SeedDefaults bool `mapstructure:"SEED_DEFAULTS"`
}

var (
	cfg      *Config
	validate = validator.New(validator.WithRequiredStructEnabled())

	keys = []string{
		"APP_ENV",
		"HTTP_ADDR",
		"SHUTDOWN_TIMEOUT",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"STORE_BACKEND",
		"SQLITE_PATH",
		"AWS_REGION",
		"AWS_ACCESS_KEY_ID",
		"AWS_SECRET_ACCESS_KEY",
		"DYNAMODB_ENDPOINT",
		"DYNAMODB_AUTO_CREATE",
		"MATERIALS_TABLE",
		"LABOR_RATES_TABLE",
		"ESTIMATES_TABLE",
		"SEED_DEFAULTS",
	}
)

// Load initializes configuration using Viper. It loads from .env if present,
// applies defaults, binds env vars, and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_ADDR", "0.0.0.0:8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("STORE_BACKEND", StoreDynamoDB)
	v.SetDefault("SQLITE_PATH", "./brickonomics.db")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_AUTO_CREATE", false)
	v.SetDefault("MATERIALS_TABLE", "materials")
	v.SetDefault("LABOR_RATES_TABLE", "labor_rates")
	v.SetDefault("ESTIMATES_TABLE", "cost_estimates")
	v.SetDefault("SEED_DEFAULTS", true)

	// Optional config file
	_ = v.ReadInConfig()

	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}

	if s := v.GetString("SHUTDOWN_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		c.ShutdownTimeout = d
	}

	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg = &c
	return cfg, nil
}

// MustLoad loads configuration or exits the process on failure.
func MustLoad() *Config {
	c, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	return c
}

// Get returns the loaded configuration. Panics if not loaded.
func Get() *Config {
	if cfg == nil {
		panic("config not loaded: call config.Load or config.MustLoad first")
	}
	return cfg
}

// IsDev reports whether the service runs in a local environment.
func (c *Config) IsDev() bool {
	return c.AppEnv == "development" || c.AppEnv == "test"
}
