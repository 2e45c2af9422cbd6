package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite3  = "sqlite3"
)

type ServerConfig struct {
	Port                   int        `mapstructure:"port" validate:"min=1,max=65535"`
	Environment            string     `mapstructure:"environment" validate:"oneof=development production test"`
	CORS                   CORSConfig `mapstructure:"cors"`
	ShutdownTimeoutSeconds int        `mapstructure:"shutdown_timeout_seconds" validate:"min=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"dive,origin"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=mysql postgres sqlite3"`
	DSN             string            `mapstructure:"dsn"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port" validate:"min=0,max=65535"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	Path            string            `mapstructure:"path"`
	MaxOpenConns    int               `mapstructure:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds" validate:"min=0"`
	ConnectAttempts uint              `mapstructure:"connect_attempts" validate:"min=1"`
	AutoMigrate     bool              `mapstructure:"auto_migrate"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/english-companion")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

// Load reads the config file if present, applies defaults and environment overrides, and validates the result.
func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 3001)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("database.driver", DriverMySQL)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "companion")
	v.SetDefault("database.username", "companion")
	v.SetDefault("database.path", filepath.Join("data", "companion.db"))
	v.SetDefault("database.connect_attempts", 5)
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("logging.level", "info")

	envBindings := map[string]string{
		"server.port":                 "PORT",
		"server.environment":          "APP_ENV",
		"server.cors.allowed_origins": "CORS_ORIGIN",
		"database.dsn":                "DATABASE_URL",
		"database.password":           "DB_PASSWORD",
		"logging.level":               "LOG_LEVEL",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	cfg.Server.CORS.AllowedOrigins = normalizeOrigins(cfg.Server.CORS.AllowedOrigins)

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// Load is a shorthand for NewConfigLoader(configFile) followed by Load.
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

// CORS_ORIGIN arrives as a single comma separated value.
func normalizeOrigins(origins []string) []string {
	result := make([]string, 0, len(origins))
	for _, o := range origins {
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}
